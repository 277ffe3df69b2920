package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/parse", Method: "POST", Limit: 60, Window: time.Minute},
		{Path: "/portfolio/", Method: "GET", Limit: 120, Window: time.Minute},
		{Path: "/portfolio/jane/", Method: "GET", Limit: 5, Window: time.Minute},
		{Path: "/portfolio/", Method: "POST", Limit: 30, Window: time.Hour},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantPath  string
		wantLimit int
		wantNil   bool
	}{
		{name: "exact", path: "/parse", method: "POST", wantPath: "/parse", wantLimit: 60},
		{name: "method mismatch", path: "/parse", method: "GET", wantNil: true},
		{name: "prefix", path: "/portfolio/bob/page", method: "GET", wantPath: "/portfolio/", wantLimit: 120},
		{name: "longest prefix", path: "/portfolio/jane/download", method: "GET", wantPath: "/portfolio/jane/", wantLimit: 5},
		{name: "prefix by method", path: "/portfolio/bob", method: "POST", wantPath: "/portfolio/", wantLimit: 30},
		{name: "health unlimited", path: "/health", method: "GET", wantLimit: 0},
		{name: "preflight unlimited", path: "/parse", method: "OPTIONS", wantLimit: 0},
		{name: "no match", path: "/convert", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a match")
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}
