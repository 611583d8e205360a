// Package workers runs background jobs that the owner can stop and await.
//
// A job receives a context that is cancelled when either the parent context
// ends or Stop is called. Stop blocks until the job has returned, so after it
// the job no longer touches any shared state.
package workers

import "context"

// Job is the body of a background worker. It must return promptly once ctx
// is done.
type Job func(ctx context.Context)

// Worker is one running Job.
type Worker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches job in its own goroutine and returns immediately.
func Start(ctx context.Context, job Job) *Worker {
	jobCtx, cancel := context.WithCancel(ctx)
	w := &Worker{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(w.done)
		defer cancel()
		job(jobCtx)
	}()

	return w
}

// Stop cancels the job and waits for it to exit. It is safe to call more
// than once and after the job has finished on its own.
func (w *Worker) Stop() {
	w.cancel()
	<-w.done
}

// Done is closed once the job has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}
