package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chapatis/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge every fifteen minutes.
const DefaultPurgeSchedule = "0 */15 * * * *"

// SessionPurger is satisfied by *commands.PurgeExpiredSessionsCommandHandler.
type SessionPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredSessionsCommand) (int, error)
}

// SessionPurgeJob deletes sessions that have been idle for longer than the
// session TTL. Order history lives in the session, so it expires with it.
type SessionPurgeJob struct {
	purger   SessionPurger
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionPurgeJob creates the job. The schedule is a six-field cron
// expression (seconds first); empty means DefaultPurgeSchedule.
func NewSessionPurgeJob(
	purger SessionPurger,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionPurgeJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionPurgeJob{
		purger:   purger,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_purge_job"),
	}
}

// Start schedules the purge. An invalid schedule or TTL is reported before
// anything runs.
func (j *SessionPurgeJob) Start() error {
	if _, err := commands.NewPurgeExpiredSessionsCommand(j.ttl); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started",
		"schedule", j.schedule,
		"ttl", j.ttl.String(),
	)
	return nil
}

// RunOnce purges idle sessions now and returns how many were removed.
func (j *SessionPurgeJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewPurgeExpiredSessionsCommand(j.ttl)
	if err != nil {
		return 0, err
	}

	removed, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session purge job failed", "error", err)
		return 0, err
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired sessions purged", "count", removed)
	}
	return removed, nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *SessionPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}
