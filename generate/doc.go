// SPDX-License-Identifier: MIT

// Package generate builds synthetic reaction networks of known shape for
// benchmarks, tests and demos.
//
// A Constructor writes reactions through a small emitter; Text renders them
// in the reaction notation and Network parses the result. Options follow the
// functional style:
//
//   - WithIDScheme / WithPrefix / WithSymbolIDs / WithExcelColumnIDs choose
//     species names (default "X0", "X1", ...),
//   - WithSeed / WithRand supply randomness to stochastic constructors,
//   - WithMaxCoefficient bounds random stoichiometric coefficients.
//
// Shapes and their conservation laws:
//
//	Chain(n)       X0 -> X1 -> ... -> Xn-1            one law, every species
//	Cycle(n)       X0 -> X1 -> ... -> Xn-1 -> X0      one law, weakly reversible
//	Complete(n)    Xi <-> Xj for every i < j          one law, reversible
//	Enzyme(k)      Si + E <-> Pi for i < k            k+1 laws
//	RandomSparse   m random reactions over n species  seed-determined
//
// Constructors never panic on bad sizes; they return ErrTooFewSpecies or
// ErrBadSize. Option constructors panic on nil arguments.
package generate
