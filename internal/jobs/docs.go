// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// SessionPurgeJob removes ordering sessions that were not touched for longer
// than SESSION_TTL. It runs on SESSION_PURGE_SCHEDULE, every fifteen minutes
// by default.
//
// # Usage
//
//	purge := jobs.NewSessionPurgeJob(&purgeHandler, cfg.SessionTTL, cfg.SessionPurgeSchedule, logger)
//	jobManager := jobs.NewJobManager(purge)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. Failed job starts
// stop any already running jobs.
package jobs
