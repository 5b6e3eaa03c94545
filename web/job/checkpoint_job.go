package job

import (
	"context"

	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/logger"
	"github.com/shopdesk/shopdesk/util/common"
)

// CheckpointJob flushes the SQLite write-ahead log into the database file.
// It stops running once ctx is done.
type CheckpointJob struct {
	ctx context.Context
}

func NewCheckpointJob(ctx context.Context) *CheckpointJob {
	return &CheckpointJob{ctx: ctx}
}

func (j *CheckpointJob) Run() {
	defer common.Recover("checkpoint job")
	if j.ctx.Err() != nil || database.GetDB() == nil {
		return
	}
	if err := database.Checkpoint(j.ctx); err != nil {
		logger.Warning("checkpoint job err:", err)
		return
	}
	logger.Debug("database checkpoint done")
}
