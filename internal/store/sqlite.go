package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS uploads (
	file_id    TEXT PRIMARY KEY,
	file_name  TEXT NOT NULL,
	file_size  INTEGER NOT NULL,
	file_type  TEXT NOT NULL,
	format     TEXT NOT NULL,
	path       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS parsed_resumes (
	file_id    TEXT PRIMARY KEY,
	resume     TEXT NOT NULL,
	strategy   TEXT NOT NULL,
	hash       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS portfolios (
	username         TEXT PRIMARY KEY,
	converted_resume TEXT NOT NULL,
	portfolio_data   TEXT NOT NULL,
	role_key         TEXT NOT NULL,
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);`

// SQLiteStore is a Store on an embedded SQLite file.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
// ":memory:" opens a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Kind returns "sqlite".
func (s *SQLiteStore) Kind() string { return "sqlite" }

// Ping checks the connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveUpload inserts or replaces an upload record.
func (s *SQLiteStore) SaveUpload(ctx context.Context, rec *types.UploadRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO uploads (file_id, file_name, file_size, file_type, format, path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.FileID, rec.FileName, rec.FileSize, rec.FileType, rec.Format, rec.Path, formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save upload %s: %w", rec.FileID, err)
	}
	return nil
}

// GetUpload returns the upload record for fileID.
func (s *SQLiteStore) GetUpload(ctx context.Context, fileID string) (*types.UploadRecord, error) {
	var rec types.UploadRecord
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT file_id, file_name, file_size, file_type, format, path, created_at FROM uploads WHERE file_id = ?`,
		fileID,
	).Scan(&rec.FileID, &rec.FileName, &rec.FileSize, &rec.FileType, &rec.Format, &rec.Path, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get upload %s: %w", fileID, err)
	}
	if rec.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SaveParsedResume inserts or replaces the parsed resume for an upload.
func (s *SQLiteStore) SaveParsedResume(ctx context.Context, rec *types.StoredResume) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}
	body, err := json.Marshal(rec.Resume)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO parsed_resumes (file_id, resume, strategy, hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.FileID, string(body), rec.Strategy, rec.Hash, formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save parsed resume %s: %w", rec.FileID, err)
	}
	return nil
}

// GetParsedResume returns the parsed resume stored for fileID.
func (s *SQLiteStore) GetParsedResume(ctx context.Context, fileID string) (*types.StoredResume, error) {
	var rec types.StoredResume
	var body, created string
	err := s.db.QueryRowContext(ctx,
		`SELECT file_id, resume, strategy, hash, created_at FROM parsed_resumes WHERE file_id = ?`,
		fileID,
	).Scan(&rec.FileID, &body, &rec.Strategy, &rec.Hash, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parsed resume %s: %w", fileID, err)
	}

	rec.Resume = &types.ParsedResume{}
	if err := json.Unmarshal([]byte(body), rec.Resume); err != nil {
		return nil, fmt.Errorf("failed to decode parsed resume %s: %w", fileID, err)
	}
	rec.Resume.EnsureArrays()
	if rec.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SavePortfolio upserts a portfolio profile.
func (s *SQLiteStore) SavePortfolio(ctx context.Context, profile *types.PortfolioProfile) (*types.PortfolioProfile, error) {
	username := NormalizeUsername(profile.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	converted, err := json.Marshal(profile.ConvertedResume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal converted resume: %w", err)
	}
	portfolio, err := json.Marshal(profile.PortfolioData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio data: %w", err)
	}

	now := formatTime(s.now().UTC())
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO portfolios (username, converted_resume, portfolio_data, role_key, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			converted_resume = excluded.converted_resume,
			portfolio_data = excluded.portfolio_data,
			role_key = excluded.role_key,
			updated_at = excluded.updated_at`,
		username, string(converted), string(portfolio), profile.RoleKey, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save portfolio %s: %w", username, err)
	}
	return s.GetPortfolio(ctx, username)
}

// GetPortfolio returns the portfolio for username.
func (s *SQLiteStore) GetPortfolio(ctx context.Context, username string) (*types.PortfolioProfile, error) {
	username = NormalizeUsername(username)

	var p types.PortfolioProfile
	var converted, portfolio, created, updated string
	err := s.db.QueryRowContext(ctx,
		`SELECT username, converted_resume, portfolio_data, role_key, created_at, updated_at
		 FROM portfolios WHERE username = ?`,
		username,
	).Scan(&p.Username, &converted, &portfolio, &p.RoleKey, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio %s: %w", username, err)
	}

	if err := json.Unmarshal([]byte(converted), &p.ConvertedResume); err != nil {
		return nil, fmt.Errorf("failed to decode converted resume: %w", err)
	}
	if err := json.Unmarshal([]byte(portfolio), &p.PortfolioData); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio data: %w", err)
	}
	p.ConvertedResume.EnsureArrays()
	if p.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePortfolio removes the portfolio for username.
func (s *SQLiteStore) DeletePortfolio(ctx context.Context, username string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM portfolios WHERE username = ?`, NormalizeUsername(username))
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
	}
	return t, nil
}
