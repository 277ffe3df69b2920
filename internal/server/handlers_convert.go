package server

import (
	"log"
	"net/http"
	"time"

	"github.com/jonathan/resume-parser/internal/conversion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/jonathan/resume-parser/internal/types"
)

// handleConvert rewrites a parsed resume for a themed role.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req types.ConvertRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}
	if _, err := roles.Get(req.RoleKey); err != nil {
		s.writeError(w, err)
		return
	}

	apiKey := s.resolveAPIKey(r, req.APIKey)
	if apiKey == "" {
		s.errorResponse(w, http.StatusUnauthorized, "Gemini API key not configured")
		return
	}

	client, err := s.newLLM(r.Context(), apiKey)
	if err != nil {
		s.writeError(w, &conversion.APICallError{Message: "failed to create LLM client", Kind: conversion.FailureOther, Cause: err})
		return
	}
	defer func() { _ = client.Close() }()

	req.ParsedResume.EnsureArrays()
	result, err := conversion.NewConverter(client).Convert(r.Context(), req.ParsedResume, req.RoleKey, req.Username, conversion.OptionsFrom(req.Options))
	if err != nil {
		log.Printf("[convert] conversion to %s failed: %v", req.RoleKey, err)
		s.writeError(w, err)
		return
	}

	response := map[string]any{
		"success":   true,
		"data":      result.Resume,
		"usage":     result.Usage,
		"model":     result.Model,
		"fallback":  result.Fallback,
		"roleKey":   req.RoleKey,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if result.Portfolio != nil {
		response["portfolio"] = result.Portfolio
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// handleConvertInfo serves ?action=roles and ?action=status.
func (s *Server) handleConvertInfo(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "roles":
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"success": true,
			"roles":   roles.Infos(),
		})
	case "status":
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"success": true,
			"status": map[string]any{
				"apiKeyConfigured": s.settings.APIKey != "",
				"availableModels":  llm.DefaultConfig().AvailableModels(),
				"maxTokens":        llm.DefaultMaxTokens,
			},
		})
	default:
		s.errorResponse(w, http.StatusBadRequest, "Invalid action parameter")
	}
}

// handleColdMail builds a cold email from a converted resume.
func (s *Server) handleColdMail(w http.ResponseWriter, r *http.Request) {
	var req types.ColdMailRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}

	req.ConvertedResume.EnsureArrays()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"coldMail": conversion.ColdMail(req.ConvertedResume, req.RoleKey, req.CompanyName, req.Position),
	})
}
