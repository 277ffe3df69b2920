package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/rendering"
	"github.com/jonathan/resume-parser/internal/server/middleware"
	"github.com/jonathan/resume-parser/internal/server/ratelimit"
	"github.com/jonathan/resume-parser/internal/store"
)

// LLMFactory creates a model client for an API key.
type LLMFactory func(ctx context.Context, apiKey string) (llm.Client, error)

// PDFPrinter prints rendered HTML to PDF.
type PDFPrinter interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	store       store.Store
	settings    config.Config
	rateLimiter *ratelimit.Limiter
	newLLM      LLMFactory
	pdf         PDFPrinter
}

// Config holds server configuration
type Config struct {
	Settings config.Config
	Store    store.Store
	// NewLLM defaults to a Gemini client.
	NewLLM LLMFactory
	// PDF defaults to headless Chrome.
	PDF PDFPrinter
	// RateLimit defaults to ratelimit.LoadConfig().
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	settings := cfg.Settings.MergeWithDefaults(config.Defaults())
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(settings.UploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	s := &Server{
		store:    cfg.Store,
		settings: settings,
		newLLM:   cfg.NewLLM,
		pdf:      cfg.PDF,
	}
	if s.newLLM == nil {
		s.newLLM = func(ctx context.Context, apiKey string) (llm.Client, error) {
			return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		}
	}
	if s.pdf == nil {
		renderer := rendering.NewPDFRenderer(settings.ChromePath)
		renderer.Verbose = settings.Verbose
		s.pdf = renderer
	}

	rateConfig := cfg.RateLimit
	if rateConfig == nil {
		rateConfig = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rateConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Upload and parse
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /upload", s.handleUploadStatus)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("GET /parse", s.handleParseStatus)
	mux.HandleFunc("GET /parse/{fileId}/export.xlsx", s.handleParseExport)

	// Conversion
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("GET /convert", s.handleConvertInfo)
	mux.HandleFunc("POST /cold-mail", s.handleColdMail)

	// Portfolios
	mux.HandleFunc("GET /portfolio/{username}", s.handleGetPortfolio)
	mux.HandleFunc("POST /portfolio/{username}", s.handleSavePortfolio)
	mux.HandleFunc("DELETE /portfolio/{username}", s.handleDeletePortfolio)
	mux.HandleFunc("GET /portfolio/{username}/page", s.handlePortfolioPage)
	mux.HandleFunc("GET /portfolio/{username}/download", s.handlePortfolioDownload)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(middleware.APIKey(mux))))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", settings.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // model calls and PDF printing
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (store: %s)", s.httpServer.Addr, s.store.Kind())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close stops background work and closes the store.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if err := s.store.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.APIKeyHeader)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}

// writeError maps err to a status code and client-facing message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	s.errorResponse(w, status, publicMessage(err))
}

// decodeJSON reads a JSON request body into v.
func (s *Server) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "Invalid request body: " + err.Error()}
	}
	return nil
}

// resolveAPIKey prefers a header key, then a key in the request body, then the server's own.
func (s *Server) resolveAPIKey(r *http.Request, bodyKey string) string {
	if key := middleware.GetAPIKey(r); key != "" {
		return key
	}
	if bodyKey != "" {
		return bodyKey
	}
	return s.settings.APIKey
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"success":   false,
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		retry := int(info.RetryAfter.Seconds() + 0.999)
		response["retry_after"] = retry
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
