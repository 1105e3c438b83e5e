package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ExpiredSessionSweeper evicts idle sessions.
type ExpiredSessionSweeper interface {
	DeleteExpired()
}

// SessionExpiryJob unregisters idle sessions once a minute.
type SessionExpiryJob struct {
	sweeper ExpiredSessionSweeper
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionExpiryJob creates the job.
func NewSessionExpiryJob(sweeper ExpiredSessionSweeper, logger *slog.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		sweeper: sweeper,
		cron:    cron.New(),
		logger:  logger.With("component", "session_expiry_job"),
	}
}

// Start schedules the sweep at the start of every minute.
func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * *", j.sweeper.DeleteExpired); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started (running every minute)")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
