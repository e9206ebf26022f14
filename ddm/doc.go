// SPDX-License-Identifier: MIT

// Package ddm enumerates the extreme rays of a pointed polyhedral cone with
// the Double Description Method.
//
// What:
//
// Given constraint rows a_1..a_m over n coordinates, ddm computes a minimal
// generating set of the cone
//
//	C = { x ∈ ℝⁿ : x ≥ 0, a_k·x = 0 for every k }
//
// For a chemical reaction network, with one row per reaction of the
// stoichiometry (rhs − lhs over the species), the rays of C are the
// network's semi-positive conservation laws.
//
// How:
//
// The ray set R starts as the unit vectors e_0..e_{n-1}, the extreme rays of
// the nonnegative orthant. Applying a constraint a splits R by the sign of
// r·a. Rays on the hyperplane stay; every positive/negative pair (x, y) is
// replaced by the combination
//
//	z = (−y·a)·x + (x·a)·y,   z·a = 0
//
// reduced by its content gcd and kept only when no ray already in R has a
// support contained in supp(z). The support test is a necessary condition
// for extremality, not a sufficient one; it is deliberately not upgraded to
// the exact rank test.
//
// Constraints are not applied in input order. Each outer pass walks the
// pending constraints once and applies the first one that does not grow R
// (delta = |R after| − |R before| ≤ 0). Constraints that would grow R are
// rotated to the back. If a full pass finds nothing cheap, the constraint with
// the smallest growth is force-applied. Constraints whose every ray lies on
// the hyperplane are dropped as trivial.
//
// Arithmetic is exact int64 through package sparse. Any overflow aborts the
// run with sparse.ErrOverflow; a result is never computed from wrapped
// values.
//
// Entry points:
//
//   - Enumerate(constraints, n, opts...) (*Result, error): synchronous.
//   - Run(constraints, n, sink, opts...) error: progress and completion
//     delivered to a Sink.
//   - Start(ctx, constraints, n, opts...) *Task: background run with a
//     latest-value progress channel and cancellation.
//
// Errors:
//
//   - ErrNegativeDimension   n < 0
//   - sparse.ErrIndexOutOfRange, ErrDuplicateIndex, ErrUnsorted,
//     ErrZeroEntry           malformed constraint row (wrapped with the row)
//   - sparse.ErrOverflow     an intermediate coefficient left int64
//   - ErrNoProgress          internal invariant violation; distinct from an
//     empty ray set
//   - context.Canceled       run aborted through WithContext or Task.Cancel
//
// Complexity: a single application costs O(|R|·nnz) for partitioning plus
// O(|R⁺|·|R⁻|·(n + |R|·n)) for combination and the redundancy scan. The
// number of passes is bounded by m² in the worst case.
package ddm
