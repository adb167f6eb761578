// Package workers runs the application's background jobs.
//
// It defines the Worker interface and a Workers aggregate that runs every
// worker concurrently until the context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
