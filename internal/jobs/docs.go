// Package jobs provides scheduled background tasks for the fleet core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the simulation aggregate.
//
// # Available Jobs
//
// 1. OrderAssignmentJob - Runs every second to retry scheduling of NEW orders
// 2. SnapshotJob - Periodically persists the state snapshot to the store
// 3. TickJob - Optionally advances the simulation on a fixed cadence
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignHandler, saveHandler, tickHandler, cfg, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" (every second)
// so freed robots pick up waiting orders promptly. The snapshot interval is
// configurable. The tick job is disabled by default: ticks are normally
// driven by the external caller, and the job exists for self-running demos.
//
// # Error Handling
//
//   - The assignment job treats "nothing to assign" as a normal outcome and
//     logs nothing for it
//   - Snapshot and tick failures are logged as errors; a tick failure means
//     a state invariant was broken and must not be silently retried
//   - Failed job starts stop any already running jobs
package jobs
