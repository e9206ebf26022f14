// SPDX-License-Identifier: MIT

package linkage

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount is returned when the complex count is negative.
	ErrNegativeCount = errors.New("linkage: negative complex count")

	// ErrComplexOutOfRange is returned when a reaction endpoint is not a
	// valid complex index.
	ErrComplexOutOfRange = errors.New("linkage: complex index out of range")

	// ErrReversibility is returned when decoding an unknown grade name.
	ErrReversibility = errors.New("linkage: unknown reversibility")
)

// Reversibility grades a linkage class. Values are ordered: the class grade
// is the minimum over its reactions.
type Reversibility int

const (
	None Reversibility = iota
	WeaklyReversible
	Reversible
)

func (r Reversibility) String() string {
	switch r {
	case None:
		return "none"
	case WeaklyReversible:
		return "weakly reversible"
	case Reversible:
		return "reversible"
	default:
		return "unknown"
	}
}

// MarshalText renders the grade for JSON and YAML output.
func (r Reversibility) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (r *Reversibility) UnmarshalText(b []byte) error {
	for _, g := range []Reversibility{None, WeaklyReversible, Reversible} {
		if string(b) == g.String() {
			*r = g
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrReversibility, b)
}

// Class is one linkage class. Complexes holds complex indices in increasing
// order; Reactions holds reaction indices in input order.
type Class struct {
	Complexes     []int         `json:"complexes" yaml:"complexes"`
	Reactions     []int         `json:"reactions" yaml:"reactions"`
	Reversibility Reversibility `json:"reversibility" yaml:"reversibility"`
}

// Option configures Classify.
type Option func(*Options)

// Options holds Classify settings.
type Options struct {
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options { return Options{Ctx: context.Background()} }

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// IsWeaklyReversible reports whether every class is at least weakly
// reversible.
func IsWeaklyReversible(classes []Class) bool {
	for _, c := range classes {
		if c.Reversibility < WeaklyReversible {
			return false
		}
	}

	return true
}
