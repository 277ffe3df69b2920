//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-parser/internal/store"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openIntegrationDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	database, err := Open(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestDB_UploadAndParsedResume(t *testing.T) {
	ctx := context.Background()
	database := openIntegrationDB(t)

	rec := &types.UploadRecord{
		FileID:   uuid.NewString(),
		FileName: "resume.pdf",
		FileSize: 2048,
		FileType: "application/pdf",
		Format:   "pdf",
		Path:     "/tmp/uploads/resume.pdf",
	}
	require.NoError(t, database.SaveUpload(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := database.GetUpload(ctx, rec.FileID)
	require.NoError(t, err)
	assert.Equal(t, rec.FileName, got.FileName)
	assert.Equal(t, rec.FileID, got.FileID)

	resume := &types.ParsedResume{Contact: types.ContactInfo{Name: "Jane Smith"}, Skills: []string{"Go"}}
	resume.EnsureArrays()
	require.NoError(t, database.SaveParsedResume(ctx, &types.StoredResume{FileID: rec.FileID, Resume: resume, Strategy: "text-layer", Hash: "h"}))

	stored, err := database.GetParsedResume(ctx, rec.FileID)
	require.NoError(t, err)
	assert.Equal(t, resume, stored.Resume)

	_, err = database.GetUpload(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = database.GetParsedResume(ctx, uuid.NewString())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDB_Portfolios(t *testing.T) {
	ctx := context.Background()
	database := openIntegrationDB(t)

	username := "it-" + uuid.NewString()[:8]
	converted := types.ConvertedResume{RoleTitle: "Toddy Shop Cook"}
	converted.EnsureArrays()

	saved, err := database.SavePortfolio(ctx, &types.PortfolioProfile{
		Username:        username,
		ConvertedResume: converted,
		PortfolioData:   types.PortfolioContent{Headline: "v1"},
		RoleKey:         "toddy-tapper",
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", saved.PortfolioData.Headline)

	updated, err := database.SavePortfolio(ctx, &types.PortfolioProfile{
		Username:        username,
		ConvertedResume: converted,
		PortfolioData:   types.PortfolioContent{Headline: "v2"},
		RoleKey:         "toddy-tapper",
	})
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.PortfolioData.Headline)
	assert.True(t, updated.CreatedAt.Equal(saved.CreatedAt))

	require.NoError(t, database.DeletePortfolio(ctx, username))
	assert.ErrorIs(t, database.DeletePortfolio(ctx, username), store.ErrNotFound)
}
