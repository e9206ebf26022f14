// SPDX-License-Identifier: MIT

package ddm

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crntk/queue"
	"github.com/katalvlaran/crntk/sparse"
)

// constraint is a pending row together with its position in the input.
type constraint struct {
	row int
	a   sparse.Vector
}

// engine owns the constraint queue A and the ray set R for one run.
type engine struct {
	opts  Options
	ctx   context.Context
	task  context.Context
	A     *queue.Queue[constraint]
	R     *queue.Queue[sparse.Vector]
	stats Stats

	// partition scratch, reused across applications
	neg, pos []signedRay
}

// Enumerate computes the extreme rays of {x ≥ 0 : a·x = 0 for all a in
// constraints} over n coordinates. constraints is deep-copied; the caller's
// rows are never modified.
func Enumerate(constraints []sparse.Vector, n int, opts ...Option) (*Result, error) {
	A, err := prepare(constraints, n)
	if err != nil {
		return nil, err
	}

	return run(A, n, buildOptions(opts))
}

// Run is Enumerate with results delivered to sink: sink.Progress at the start
// of every outer pass and sink.Complete once on success. On error Complete is
// not called and the error is returned.
func Run(constraints []sparse.Vector, n int, sink Sink, opts ...Option) error {
	if sink == nil {
		return ErrNilSink
	}
	A, err := prepare(constraints, n)
	if err != nil {
		return err
	}

	o := buildOptions(opts)
	hook := o.OnProgress
	o.OnProgress = func(remaining int) {
		hook(remaining)
		sink.Progress(remaining)
	}

	res, err := run(A, n, o)
	if err != nil {
		return err
	}
	sink.Complete(res.Rays)

	return nil
}

// prepare validates the input and copies it into a constraint queue.
func prepare(constraints []sparse.Vector, n int) (*queue.Queue[constraint], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDimension, n)
	}
	A := queue.New[constraint]()
	for i, a := range constraints {
		if err := a.Validate(n); err != nil {
			return nil, fmt.Errorf("ddm: constraint %d: %w", i, err)
		}
		A.Enqueue(constraint{row: i, a: a.Clone()})
	}

	return A, nil
}

func run(A *queue.Queue[constraint], n int, o Options) (*Result, error) {
	e := &engine{
		opts: o,
		ctx:  o.Ctx,
		task: o.task,
		A:    A,
		R:    queue.New[sparse.Vector](),
	}
	if e.task == nil {
		e.task = context.Background()
	}
	for i := 0; i < n; i++ {
		e.R.Enqueue(sparse.Unit(i))
	}
	e.stats.PeakRays = n

	if err := e.loop(); err != nil {
		return nil, err
	}

	return &Result{Rays: e.R.Slice(), Stats: e.stats}, nil
}

// loop drives A to empty.
func (e *engine) loop() error {
	for e.A.Len() > 0 {
		e.stats.Passes++

		// 1. Capture the pass length; rotated constraints land behind it.
		maxIterations := e.A.Len()
		e.opts.OnProgress(maxIterations)

		// 2. A candidate is only worth tracking if it grows R by less than
		//    combining half of R against the other half would.
		nr := e.R.Len()
		bestDelta := ((nr>>1)+1)*((nr>>1)+1) - nr
		var best *constraint

		count := 0
		for ; count < maxIterations; count++ {
			if err := e.checkCancel(); err != nil {
				return err
			}
			c, _ := e.A.Dequeue()
			delta, trivial, err := e.process(c.a, false)
			if err != nil {
				return fmt.Errorf("ddm: constraint %d: %w", c.row, err)
			}
			if trivial {
				e.stats.Trivial++
				e.emit(Trivial, c.row, delta)
				continue
			}
			if delta <= 0 {
				e.stats.Applied++
				e.emit(Applied, c.row, delta)
				break
			}
			e.A.Enqueue(c)
			e.stats.Deferred++
			e.emit(Deferred, c.row, delta)
			if delta < bestDelta {
				bestDelta = delta
				best = &c
			}
		}

		// 3. Nothing cheap this pass: force the least-growth constraint. It
		//    stays in A and is dropped as trivial on the next pass.
		if count == maxIterations {
			if best == nil {
				if e.A.Len() > 0 {
					return ErrNoProgress
				}
				continue
			}
			if err := e.checkCancel(); err != nil {
				return err
			}
			delta, _, err := e.process(best.a, true)
			if err != nil {
				return fmt.Errorf("ddm: constraint %d: %w", best.row, err)
			}
			e.stats.Forced++
			e.emit(Forced, best.row, delta)
		}
	}

	return nil
}

func (e *engine) checkCancel() error {
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	case <-e.task.Done():
		return e.task.Err()
	default:
		return nil
	}
}

func (e *engine) emit(o Outcome, row, delta int) {
	if r := e.R.Len(); r > e.stats.PeakRays {
		e.stats.PeakRays = r
	}
	e.opts.OnApply(Event{Outcome: o, Constraint: row, Delta: delta, Rays: e.R.Len()})
}
