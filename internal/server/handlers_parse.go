package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// parseConfidence is reported for every successful parse.
const parseConfidence = 0.7

// handleParse extracts and segments a previously uploaded document.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := s.decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.FileID == "" || req.FileName == "" {
		s.errorResponse(w, http.StatusBadRequest, "File ID and file name required")
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, validationError(err))
		return
	}
	if ingestion.FormatFromFilename(req.FileName) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	rec, err := s.store.GetUpload(r.Context(), req.FileID)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			s.errorResponse(w, http.StatusNotFound, "File not found")
			return
		}
		s.writeError(w, err)
		return
	}
	if _, err := os.Stat(rec.Path); err != nil {
		s.errorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	stored, err := s.parseUpload(r.Context(), rec)
	if err != nil {
		if HTTPStatus(err) == http.StatusBadRequest {
			log.Printf("[parse] %s: %v", rec.FileID, err)
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"success":    false,
				"error":      publicMessage(err),
				"warnings":   []string{},
				"confidence": 0,
			})
			return
		}
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"data":       stored.Resume,
		"warnings":   parsing.Warnings(stored.Resume),
		"confidence": parseConfidence,
		"fileInfo": map[string]any{
			"fileId":   rec.FileID,
			"fileName": req.FileName,
			"fileSize": rec.FileSize,
		},
	})
}

// parseUpload runs extraction on an upload and persists the result.
func (s *Server) parseUpload(ctx context.Context, rec *types.UploadRecord) (*types.StoredResume, error) {
	result, err := ingestion.ExtractFile(ctx, rec.Path)
	if err != nil {
		return nil, err
	}

	stored := &types.StoredResume{
		FileID:   rec.FileID,
		Resume:   result.Parse(),
		Strategy: result.Strategy,
		Hash:     result.Metadata.Hash,
	}
	if err := s.store.SaveParsedResume(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save parsed resume: %w", err)
	}
	log.Printf("[parse] %s parsed with %s strategy", rec.FileID, result.Strategy)
	return stored, nil
}

// handleParseStatus returns a stored parse result.
func (s *Server) handleParseStatus(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	if fileID == "" {
		s.errorResponse(w, http.StatusBadRequest, "File ID required")
		return
	}

	stored, err := s.store.GetParsedResume(r.Context(), fileID)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			err = &ErrNotFound{Resource: "parsed resume", ID: fileID}
		}
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"data":     stored.Resume,
		"strategy": stored.Strategy,
		"parsedAt": stored.CreatedAt,
	})
}

// handleParseExport returns a stored parse result as an XLSX workbook.
func (s *Server) handleParseExport(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("fileId")
	stored, err := s.store.GetParsedResume(r.Context(), fileID)
	if err != nil {
		if HTTPStatus(err) == http.StatusNotFound {
			err = &ErrNotFound{Resource: "parsed resume", ID: fileID}
		}
		s.writeError(w, err)
		return
	}

	data, err := export.ResumeXLSX(stored.Resume)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, fileID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing workbook: %v", err)
	}
}
