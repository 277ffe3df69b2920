package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-parser/internal/store"
	"github.com/jonathan/resume-parser/internal/types"
)

// SavePortfolio upserts a portfolio profile keyed by normalized username.
func (db *DB) SavePortfolio(ctx context.Context, profile *types.PortfolioProfile) (*types.PortfolioProfile, error) {
	username := store.NormalizeUsername(profile.Username)
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

	_, err = db.pool.Exec(ctx,
		`INSERT INTO portfolios (username, converted_resume, portfolio_data, role_key)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO UPDATE SET
			converted_resume = $2, portfolio_data = $3, role_key = $4, updated_at = NOW()`,
		username, converted, portfolio, profile.RoleKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save portfolio %s: %w", username, err)
	}
	return db.GetPortfolio(ctx, username)
}

// GetPortfolio returns the portfolio for username.
func (db *DB) GetPortfolio(ctx context.Context, username string) (*types.PortfolioProfile, error) {
	username = store.NormalizeUsername(username)

	var p types.PortfolioProfile
	var converted, portfolio []byte
	err := db.pool.QueryRow(ctx,
		`SELECT username, converted_resume, portfolio_data, role_key, created_at, updated_at
		 FROM portfolios WHERE username = $1`,
		username,
	).Scan(&p.Username, &converted, &portfolio, &p.RoleKey, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio %s: %w", username, err)
	}

	if err := json.Unmarshal(converted, &p.ConvertedResume); err != nil {
		return nil, fmt.Errorf("failed to decode converted resume: %w", err)
	}
	if err := json.Unmarshal(portfolio, &p.PortfolioData); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio data: %w", err)
	}
	p.ConvertedResume.EnsureArrays()
	return &p, nil
}

// DeletePortfolio removes the portfolio for username.
func (db *DB) DeletePortfolio(ctx context.Context, username string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM portfolios WHERE username = $1`, store.NormalizeUsername(username))
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
