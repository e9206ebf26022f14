// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"math/rand"
)

var (
	// ErrTooFewSpecies is returned when a size is below the shape's minimum.
	ErrTooFewSpecies = errors.New("generate: too few species")
	// ErrBadSize is returned for a negative or inconsistent size.
	ErrBadSize = errors.New("generate: invalid size")
	// ErrNeedRandSource is returned by stochastic constructors without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("generate: rng is required")
)

const (
	defaultPrefix  = "X"
	defaultMaxCoef = 2
)

// Option configures generation.
type Option func(*config)

type config struct {
	idFn    IDFn
	rng     *rand.Rand
	maxCoef int64
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: PrefixIDFn(defaultPrefix), maxCoef: defaultMaxCoef}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the species naming function.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("generate: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithPrefix names species prefix0, prefix1, ...
func WithPrefix(prefix string) Option { return WithIDScheme(PrefixIDFn(prefix)) }

// WithSymbolIDs names species A..Z; shapes with more species panic.
func WithSymbolIDs() Option { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs names species A..Z, AA, AB, ...
func WithExcelColumnIDs() Option { return WithIDScheme(ExcelColumnIDFn) }

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMaxCoefficient bounds random coefficients to [1, k].
func WithMaxCoefficient(k int64) Option {
	if k < 1 {
		panic("generate: WithMaxCoefficient(k<1)")
	}
	return func(c *config) { c.maxCoef = k }
}
