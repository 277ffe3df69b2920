package ratelimit

import "strings"

// unlimited is returned for requests that never consume tokens.
var unlimited = &EndpointConfig{}

// MatchEndpoint picks the endpoint configuration for a request.
//
// Health checks and CORS preflights are never limited. An exact path match
// wins; otherwise the longest configured prefix ending in "/" is used, so
// "/portfolio/" covers "/portfolio/jane/page". Returns nil when the default
// limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "OPTIONS" || (path == "/health" && method == "GET") {
		return unlimited
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
