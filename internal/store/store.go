// Package store persists uploads, parsed resumes and portfolio profiles.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence layer used by the server and CLI.
type Store interface {
	SaveUpload(ctx context.Context, rec *types.UploadRecord) error
	GetUpload(ctx context.Context, fileID string) (*types.UploadRecord, error)

	SaveParsedResume(ctx context.Context, rec *types.StoredResume) error
	GetParsedResume(ctx context.Context, fileID string) (*types.StoredResume, error)

	// SavePortfolio upserts on the normalized username and returns the stored
	// profile. CreatedAt survives updates.
	SavePortfolio(ctx context.Context, profile *types.PortfolioProfile) (*types.PortfolioProfile, error)
	GetPortfolio(ctx context.Context, username string) (*types.PortfolioProfile, error)
	DeletePortfolio(ctx context.Context, username string) error

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
	// Kind names the backend, e.g. "sqlite" or "postgres".
	Kind() string
	Close() error
}

// NormalizeUsername lowercases and trims a portfolio username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
