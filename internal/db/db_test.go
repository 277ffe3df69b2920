package db

import (
	"testing"

	"github.com/jonathan/resume-parser/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ store.Store = (*DB)(nil)

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (x INT);\n\n  CREATE TABLE b (y INT);\nCREATE INDEX i ON b(y);\n")
	assert.Equal(t, []string{
		"CREATE TABLE a (x INT)",
		"CREATE TABLE b (y INT)",
		"CREATE INDEX i ON b(y)",
	}, stmts)

	assert.Empty(t, splitStatements("  \n"))
}

func TestEmbeddedSchema(t *testing.T) {
	stmts := splitStatements(schemaSQL)
	require.Len(t, stmts, 4)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS uploads")
	assert.Contains(t, stmts[1], "REFERENCES uploads(file_id)")
	assert.Contains(t, stmts[2], "username         TEXT PRIMARY KEY")
	assert.Contains(t, stmts[3], "CREATE INDEX IF NOT EXISTS idx_portfolios_role_key")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "postgres", (&DB{}).Kind())
	assert.NoError(t, (&DB{}).Close())
}
