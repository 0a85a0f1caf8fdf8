// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker and returns immediately; Stop blocks until the
// worker's goroutine has fully exited.
//
// Implementations must tolerate Stop being called before Start and being
// called more than once.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing bound to ctx
//	}
//
//	func (w *MyWorker) Stop() {
//	    // signal the goroutine and wait for it
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
