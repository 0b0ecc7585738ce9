package runloop

import (
	"errors"
	"sync"
)

// ErrStopped is returned by Post once the loop has been asked to stop.
var ErrStopped = errors.New("run loop stopped")

// Loop is a single-threaded event loop. Everything it runs, including the
// start and stop hooks, executes on one OS thread.
type Loop interface {
	// Run calls start on the loop thread and, if it succeeds, serves events
	// until Stop is called or the event source closes. stop is called on
	// every exit path once start has succeeded.
	Run(start func() error, stop func()) error
	// Post queues fn to run on the loop thread.
	Post(fn func()) error
	// Stop asks the loop to return after running already posted work.
	Stop()
}

// queue holds work posted from other goroutines until the loop thread
// picks it up.
type queue struct {
	mu      sync.Mutex
	pending []func()
	stopped bool
	wake    func()
}

func (q *queue) push(fn func()) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.pending = append(q.pending, fn)
	wake := q.wake
	q.mu.Unlock()

	if wake != nil {
		wake()
	}
	return nil
}

func (q *queue) stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	wake := q.wake
	q.mu.Unlock()

	if wake != nil {
		wake()
	}
}

func (q *queue) attach(wake func()) {
	q.mu.Lock()
	q.wake = wake
	q.mu.Unlock()
}

func (q *queue) detach() {
	q.attach(nil)
}

// runPending runs queued work in order and reports whether the loop
// should exit.
func (q *queue) runPending() bool {
	q.mu.Lock()
	fns := q.pending
	q.pending = nil
	stopped := q.stopped
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return stopped
}
