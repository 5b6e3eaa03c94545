package job

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopdesk/shopdesk/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointJobWithoutDatabase(t *testing.T) {
	assert.NotPanics(t, NewCheckpointJob(context.Background()).Run)
}

func TestCheckpointJob(t *testing.T) {
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "job.db")))
	defer database.CloseDB()

	assert.NotPanics(t, NewCheckpointJob(context.Background()).Run)
}

func TestCheckpointJobStoppedContext(t *testing.T) {
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "job.db")))
	defer database.CloseDB()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, NewCheckpointJob(ctx).Run)
}
