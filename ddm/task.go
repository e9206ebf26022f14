// SPDX-License-Identifier: MIT

package ddm

import (
	"context"

	"github.com/katalvlaran/crntk/sparse"
)

// Task is a run executing on its own goroutine.
//
// Progress delivers the remaining-constraint count of each outer pass. The
// channel holds at most one value and a newer value replaces an unread
// one, so a slow reader never stalls the engine. It is closed when the run
// ends, before Done is closed.
type Task struct {
	progress chan int
	done     chan struct{}
	cancel   context.CancelFunc

	res *Result
	err error
}

// Start copies and validates the input, then runs the enumeration in the
// background. Validation errors are reported through Result. Cancelling
// either ctx or the context passed with WithContext aborts the run, as does
// Cancel; Result then returns the context error and no rays.
func Start(ctx context.Context, constraints []sparse.Vector, n int, opts ...Option) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	o := buildOptions(opts)

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		progress: make(chan int, 1),
		done:     make(chan struct{}),
		cancel:   cancel,
	}

	A, err := prepare(constraints, n)
	if err != nil {
		t.finish(nil, err)
		return t
	}

	o.task = ctx
	hook := o.OnProgress
	o.OnProgress = func(remaining int) {
		hook(remaining)
		t.publish(remaining)
	}

	go func() {
		res, err := run(A, n, o)
		t.finish(res, err)
	}()

	return t
}

// Progress returns the latest-value progress channel.
func (t *Task) Progress() <-chan int { return t.progress }

// Done is closed when the run has finished, successfully or not.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel aborts the run. It is safe to call more than once and after
// completion.
func (t *Task) Cancel() { t.cancel() }

// Result blocks until the run ends and returns its outcome.
func (t *Task) Result() (*Result, error) {
	<-t.done
	return t.res, t.err
}

// publish performs a latest-wins send: drop the stale value, then offer the
// new one. Only the engine goroutine sends, so the second send cannot race.
func (t *Task) publish(remaining int) {
	select {
	case t.progress <- remaining:
		return
	default:
	}
	select {
	case <-t.progress:
	default:
	}
	select {
	case t.progress <- remaining:
	default:
	}
}

func (t *Task) finish(res *Result, err error) {
	t.res, t.err = res, err
	close(t.progress)
	close(t.done)
	t.cancel()
}
