package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-parser/internal/store"
	"github.com/jonathan/resume-parser/internal/types"
)

// SaveUpload inserts or replaces an upload record.
func (db *DB) SaveUpload(ctx context.Context, rec *types.UploadRecord) error {
	id, err := uuid.Parse(rec.FileID)
	if err != nil {
		return fmt.Errorf("invalid file id %q: %w", rec.FileID, err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO uploads (file_id, file_name, file_size, file_type, format, path)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (file_id) DO UPDATE SET
			file_name = $2, file_size = $3, file_type = $4, format = $5, path = $6
		 RETURNING created_at`,
		id, rec.FileName, rec.FileSize, rec.FileType, rec.Format, rec.Path,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save upload %s: %w", rec.FileID, err)
	}
	return nil
}

// GetUpload returns the upload record for fileID.
func (db *DB) GetUpload(ctx context.Context, fileID string) (*types.UploadRecord, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var rec types.UploadRecord
	var scanned uuid.UUID
	err = db.pool.QueryRow(ctx,
		`SELECT file_id, file_name, file_size, file_type, format, path, created_at
		 FROM uploads WHERE file_id = $1`,
		id,
	).Scan(&scanned, &rec.FileName, &rec.FileSize, &rec.FileType, &rec.Format, &rec.Path, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get upload %s: %w", fileID, err)
	}
	rec.FileID = scanned.String()
	return &rec, nil
}

// SaveParsedResume inserts or replaces the parsed resume for an upload.
func (db *DB) SaveParsedResume(ctx context.Context, rec *types.StoredResume) error {
	id, err := uuid.Parse(rec.FileID)
	if err != nil {
		return fmt.Errorf("invalid file id %q: %w", rec.FileID, err)
	}
	body, err := json.Marshal(rec.Resume)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO parsed_resumes (file_id, resume, strategy, hash)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (file_id) DO UPDATE SET resume = $2, strategy = $3, hash = $4, created_at = NOW()
		 RETURNING created_at`,
		id, body, rec.Strategy, rec.Hash,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save parsed resume %s: %w", rec.FileID, err)
	}
	return nil
}

// GetParsedResume returns the parsed resume stored for fileID.
func (db *DB) GetParsedResume(ctx context.Context, fileID string) (*types.StoredResume, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return nil, store.ErrNotFound
	}

	rec := types.StoredResume{FileID: id.String()}
	var body []byte
	err = db.pool.QueryRow(ctx,
		`SELECT resume, strategy, hash, created_at FROM parsed_resumes WHERE file_id = $1`,
		id,
	).Scan(&body, &rec.Strategy, &rec.Hash, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parsed resume %s: %w", fileID, err)
	}

	rec.Resume = &types.ParsedResume{}
	if err := json.Unmarshal(body, rec.Resume); err != nil {
		return nil, fmt.Errorf("failed to decode parsed resume %s: %w", fileID, err)
	}
	rec.Resume.EnsureArrays()
	return &rec, nil
}
