package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopdesk/shopdesk/database"

	"github.com/stretchr/testify/require"
)

// setup opens a fresh database for the test and closes it afterwards.
func setup(t *testing.T) context.Context {
	t.Helper()
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { _ = database.CloseDB() })
	return context.Background()
}
