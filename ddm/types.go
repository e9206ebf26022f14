// SPDX-License-Identifier: MIT

package ddm

import (
	"context"
	"errors"

	"github.com/katalvlaran/crntk/sparse"
)

var (
	// ErrNegativeDimension is returned when n < 0.
	ErrNegativeDimension = errors.New("ddm: negative dimension")

	// ErrNoProgress signals that a full pass over pending constraints found
	// neither a cheap nor a forcible constraint. It cannot happen for valid
	// input and indicates a logic error.
	ErrNoProgress = errors.New("ddm: no constraint could be applied")

	// ErrNilSink is returned by Run when sink is nil.
	ErrNilSink = errors.New("ddm: sink is nil")
)

// Outcome classifies what happened to a constraint when it was examined.
type Outcome int

const (
	// Applied: the constraint did not grow the ray set and was applied.
	Applied Outcome = iota
	// Deferred: applying would grow the ray set; moved to the back.
	Deferred
	// Trivial: every ray already satisfies it; dropped.
	Trivial
	// Forced: least-growth constraint applied after a fruitless pass.
	Forced
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Deferred:
		return "deferred"
	case Trivial:
		return "trivial"
	case Forced:
		return "forced"
	default:
		return "unknown"
	}
}

// Event describes one constraint examination.
type Event struct {
	Outcome Outcome
	// Constraint is the row index in the caller's input.
	Constraint int
	// Delta is the ray-count change applying the constraint implies.
	Delta int
	// Rays is |R| after the examination.
	Rays int
}

// Stats collects counters over a run.
type Stats struct {
	Passes       int `json:"passes" yaml:"passes"`
	Applied      int `json:"applied" yaml:"applied"`
	Deferred     int `json:"deferred" yaml:"deferred"`
	Trivial      int `json:"trivial" yaml:"trivial"`
	Forced       int `json:"forced" yaml:"forced"`
	Combinations int `json:"combinations" yaml:"combinations"`
	Redundant    int `json:"redundant" yaml:"redundant"`
	PeakRays     int `json:"peak_rays" yaml:"peak_rays"`
}

// Result is the outcome of a successful run.
type Result struct {
	// Rays is the extreme-ray set, each ray with content gcd 1.
	Rays  []sparse.Vector `json:"rays" yaml:"rays"`
	Stats Stats           `json:"stats" yaml:"stats"`
}

// Sink receives the two messages a run produces. Progress is called at the
// start of every outer pass with the number of constraints that pass will
// examine. Complete is called exactly once, on success only.
type Sink interface {
	Progress(remaining int)
	Complete(rays []sparse.Vector)
}

// SinkFuncs adapts two functions to a Sink. Nil fields are ignored.
type SinkFuncs struct {
	OnProgress func(remaining int)
	OnComplete func(rays []sparse.Vector)
}

// Progress implements Sink.
func (s SinkFuncs) Progress(remaining int) {
	if s.OnProgress != nil {
		s.OnProgress(remaining)
	}
}

// Complete implements Sink.
func (s SinkFuncs) Complete(rays []sparse.Vector) {
	if s.OnComplete != nil {
		s.OnComplete(rays)
	}
}

// Option configures a run.
type Option func(*Options)

// Options holds the run configuration.
type Options struct {
	// Ctx is checked before every constraint examination. Cancelling it
	// aborts the run with ctx.Err() and no partial result.
	Ctx context.Context

	// OnProgress is called at the start of each outer pass.
	OnProgress func(remaining int)

	// OnApply is called after every constraint examination.
	OnApply func(Event)

	// task is the Start context, checked alongside Ctx.
	task context.Context
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnProgress: func(int) {},
		OnApply:    func(Event) {},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnProgress installs a progress hook. Hooks run on the engine's
// goroutine and must not block.
func WithOnProgress(fn func(remaining int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithOnApply installs a per-constraint event hook.
func WithOnApply(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnApply = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
