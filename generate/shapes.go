// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"strconv"
)

const (
	methodChain        = "Chain"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodEnzyme       = "Enzyme"
	methodRandomSparse = "RandomSparse"

	minChainSpecies    = 2
	minCycleSpecies    = 2
	minCompleteSpecies = 2
	minEnzymeSubstrate = 1
)

// Chain emits X0 -> X1 -> ... -> Xn-1.
func Chain(n int) Constructor {
	return func(e *Emitter, cfg config) error {
		if n < minChainSpecies {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSpecies, ErrTooFewSpecies)
		}
		for i := 0; i+1 < n; i++ {
			e.Reaction(cfg.idFn(i), "->", cfg.idFn(i+1))
		}
		return nil
	}
}

// Cycle emits Chain(n) closed by Xn-1 -> X0.
func Cycle(n int) Constructor {
	return func(e *Emitter, cfg config) error {
		if n < minCycleSpecies {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSpecies, ErrTooFewSpecies)
		}
		for i := 0; i < n; i++ {
			e.Reaction(cfg.idFn(i), "->", cfg.idFn((i+1)%n))
		}
		return nil
	}
}

// Complete emits Xi <-> Xj for every pair i < j.
func Complete(n int) Constructor {
	return func(e *Emitter, cfg config) error {
		if n < minCompleteSpecies {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSpecies, ErrTooFewSpecies)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				e.Reaction(cfg.idFn(i), "<->", cfg.idFn(j))
			}
		}
		return nil
	}
}

// Enzyme emits k binding reactions sharing one enzyme: species 0..k-1 are
// substrates, k..2k-1 the bound complexes and 2k the enzyme.
func Enzyme(k int) Constructor {
	return func(e *Emitter, cfg config) error {
		if k < minEnzymeSubstrate {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodEnzyme, k, minEnzymeSubstrate, ErrTooFewSpecies)
		}
		enzyme := cfg.idFn(2 * k)
		for i := 0; i < k; i++ {
			e.Reaction(cfg.idFn(i)+" + "+enzyme, "<->", cfg.idFn(k+i))
		}
		return nil
	}
}

// RandomSparse emits m reaction lines over n species; repeated lines collapse
// when parsed. Each side is one or two distinct species with coefficients in
// [1, max] and the two sides always differ. Requires WithSeed or WithRand.
func RandomSparse(n, m int) Constructor {
	return func(e *Emitter, cfg config) error {
		switch {
		case n < 2:
			return fmt.Errorf("%s: n=%d < min=2: %w", methodRandomSparse, n, ErrTooFewSpecies)
		case m < 0:
			return fmt.Errorf("%s: m=%d: %w", methodRandomSparse, m, ErrBadSize)
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for e.Len() < m {
			lhs, rhs := randomComplex(n, cfg), randomComplex(n, cfg)
			if lhs == rhs {
				continue
			}
			e.Reaction(lhs, "->", rhs)
		}
		return nil
	}
}

func randomComplex(n int, cfg config) string {
	term := func(i int) string {
		k := 1 + cfg.rng.Int63n(cfg.maxCoef)
		if k == 1 {
			return cfg.idFn(i)
		}
		return strconv.FormatInt(k, 10) + "*" + cfg.idFn(i)
	}

	a := cfg.rng.Intn(n)
	if cfg.rng.Intn(2) == 0 {
		return term(a)
	}
	b := cfg.rng.Intn(n - 1)
	if b >= a {
		b++
	}
	if b < a {
		a, b = b, a
	}

	return term(a) + " + " + term(b)
}
