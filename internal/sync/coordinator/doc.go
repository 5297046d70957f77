// Package coordinator runs the sync pipeline on a schedule.
//
// When sync.interval and sync.regions are both configured, the coordinator
// runs a pass on startup and then once per interval, shifted by a random
// jitter of up to ten percent. A pass syncs every configured region in order,
// the directory phase first and the detail phase second, using the detail
// defaults of the sync section.
//
// Regions locked by another process are skipped for that pass. Failures are
// logged and never stop the loop; the next pass retries. Each sync records
// its own run through the manager's run store.
//
// # Usage
//
//	coord := coordinator.New(manager, cfg)
//	go func() {
//	    if err := coord.Start(ctx); err != nil {
//	        slog.Error("coordinator failed", "error", err)
//	    }
//	}()
//	defer coord.Stop()
//
// Without a schedule Start simply blocks until it is stopped, so callers do
// not need to branch on configuration.
package coordinator
