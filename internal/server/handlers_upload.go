package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// handleUpload accepts a multipart "file" field and stores it under the uploads directory.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	limit := s.settings.MaxUploadBytes
	// Leave room for the multipart envelope; the file itself is checked below.
	r.Body = http.MaxBytesReader(w, r.Body, limit+1<<20)
	if err := r.ParseMultipartForm(limit); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, &ErrPayloadTooLarge{Limit: limit})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > limit {
		s.writeError(w, &ErrPayloadTooLarge{Limit: limit})
		return
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(file, limit+1)); err != nil {
		s.writeError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}
	if int64(buf.Len()) > limit {
		s.writeError(w, &ErrPayloadTooLarge{Limit: limit})
		return
	}

	format, err := ingestion.DetectFormat(buf.Bytes(), header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX files are allowed.")
		return
	}

	fileID := uuid.New().String()
	path := filepath.Join(s.settings.UploadsDir, fileID+format.Extension())
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		s.writeError(w, fmt.Errorf("failed to store upload: %w", err))
		return
	}

	rec := &types.UploadRecord{
		FileID:   fileID,
		FileName: header.Filename,
		FileSize: int64(buf.Len()),
		FileType: format.MIMEType(),
		Format:   string(format),
		Path:     path,
	}
	if err := s.store.SaveUpload(r.Context(), rec); err != nil {
		_ = os.Remove(path)
		s.writeError(w, fmt.Errorf("failed to record upload: %w", err))
		return
	}

	log.Printf("[upload] stored %s as %s (%d bytes)", header.Filename, fileID, rec.FileSize)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"fileId":   rec.FileID,
			"fileName": rec.FileName,
			"fileSize": rec.FileSize,
			"fileType": rec.FileType,
		},
	})
}

// handleUploadStatus reports whether an upload exists.
func (s *Server) handleUploadStatus(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimSpace(r.URL.Query().Get("fileId"))
	if fileID == "" {
		s.errorResponse(w, http.StatusBadRequest, "File ID required")
		return
	}

	exists := true
	rec, err := s.store.GetUpload(r.Context(), fileID)
	if err != nil {
		if HTTPStatus(err) != http.StatusNotFound {
			s.writeError(w, err)
			return
		}
		exists = false
	} else if _, statErr := os.Stat(rec.Path); statErr != nil {
		exists = false
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"exists":  exists,
		"fileId":  fileID,
	})
}
