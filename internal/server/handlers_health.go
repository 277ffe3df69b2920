package server

import (
	"context"
	"net/http"
	"time"

	"github.com/jonathan/resume-parser/internal/llm"
)

const healthPingTimeout = 3 * time.Second

// handleHealth reports store connectivity and LLM configuration.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	storeCheck := map[string]any{"kind": s.store.Kind(), "connected": true}
	storeErr := s.store.Ping(ctx)
	if storeErr != nil {
		storeCheck["connected"] = false
		storeCheck["error"] = storeErr.Error()
	}

	apiKeyConfigured := s.settings.APIKey != ""
	llmCheck := map[string]any{
		"apiKeyConfigured": apiKeyConfigured,
		"models":           llm.DefaultConfig().AvailableModels(),
	}

	status := "healthy"
	recommendations := []string{}
	if !apiKeyConfigured {
		status = "degraded"
		recommendations = append(recommendations, "Set GEMINI_API_KEY to enable resume conversion")
	}
	if storeErr != nil {
		status = "degraded"
		recommendations = append(recommendations, "Check the database connection (DATABASE_URL or store_path)")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "All systems operational! 🚀")
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]any{
			"store": storeCheck,
			"llm":   llmCheck,
		},
		"recommendations": recommendations,
	})
}
