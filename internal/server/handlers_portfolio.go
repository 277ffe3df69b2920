package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/rendering"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/store"
	"github.com/jonathan/resume-parser/internal/types"
)

// portfolioUsername reads and normalizes the {username} path segment.
func portfolioUsername(r *http.Request) (string, error) {
	username := store.NormalizeUsername(r.PathValue("username"))
	if username == "" {
		return "", &ErrValidation{Field: "username", Message: "is required"}
	}
	return username, nil
}

// loadPortfolio fetches a portfolio, mapping a miss onto ErrNotFound.
func (s *Server) loadPortfolio(r *http.Request) (*types.PortfolioProfile, error) {
	username, err := portfolioUsername(r)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.GetPortfolio(r.Context(), username)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			return nil, &ErrNotFound{Resource: "portfolio", ID: username}
		}
		return nil, err
	}
	return profile, nil
}

func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	profile, err := s.loadPortfolio(r)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
			return
		}
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    profile,
	})
}

// handleSavePortfolio stores a converted resume and its generated page content.
func (s *Server) handleSavePortfolio(w http.ResponseWriter, r *http.Request) {
	username, err := portfolioUsername(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req types.SavePortfolioRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}
	if !roles.Valid(req.RoleKey) {
		s.writeError(w, &roles.UnknownRoleError{Key: req.RoleKey})
		return
	}
	req.ConvertedResume.EnsureArrays()

	var client llm.Client
	if apiKey := s.resolveAPIKey(r, req.APIKey); apiKey != "" {
		c, err := s.newLLM(r.Context(), apiKey)
		if err != nil {
			log.Printf("[portfolio] LLM client unavailable, using basic content: %v", err)
		} else {
			defer func() { _ = c.Close() }()
			client = c
		}
	}
	content := conversion.GeneratePortfolioContent(r.Context(), client, req.ConvertedResume, req.RoleKey, username)

	saved, err := s.store.SavePortfolio(r.Context(), &types.PortfolioProfile{
		Username:        username,
		ConvertedResume: *req.ConvertedResume,
		PortfolioData:   *content,
		RoleKey:         req.RoleKey,
	})
	if err != nil {
		s.writeError(w, fmt.Errorf("failed to save portfolio: %w", err))
		return
	}

	log.Printf("[portfolio] saved %s (%s)", saved.Username, saved.RoleKey)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Portfolio created successfully",
		"portfolioUrl":  "/" + saved.Username,
		"portfolioData": saved.PortfolioData,
	})
}

func (s *Server) handleDeletePortfolio(w http.ResponseWriter, r *http.Request) {
	username, err := portfolioUsername(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.DeletePortfolio(r.Context(), username); err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "Portfolio not found")
			return
		}
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Portfolio deleted successfully",
	})
}

// handlePortfolioPage serves the rendered HTML page.
func (s *Server) handlePortfolioPage(w http.ResponseWriter, r *http.Request) {
	profile, err := s.loadPortfolio(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	html, err := rendering.RenderHTML(profile)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handlePortfolioDownload prints the page to PDF. When the browser is
// unavailable the HTML page is sent as the attachment instead.
func (s *Server) handlePortfolioDownload(w http.ResponseWriter, r *http.Request) {
	profile, err := s.loadPortfolio(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	html, err := rendering.RenderHTML(profile)
	if err != nil {
		s.writeError(w, err)
		return
	}

	pdf, err := s.pdf.PDF(r.Context(), html)
	if err != nil {
		log.Printf("[portfolio] PDF rendering failed for %s, sending HTML: %v", profile.Username, err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-resume.html"`, profile.Username))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-resume.pdf"`, profile.Username))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF: %v", err)
	}
}
