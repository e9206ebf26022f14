// SPDX-License-Identifier: MIT

// Package nullspace computes an integer basis of the left null space of a
// sparse integer matrix by fraction-free Gaussian elimination.
//
// Given rows s_0..s_{m-1} over n columns (for a reaction network: one
// stoichiometry row per reaction, over the species), Basis returns integer
// vectors y over the row indices with Σ y_i·s_i = 0 that span every such
// relation. Rank returns m − |basis|.
//
// Method: each row is augmented with the identity block, s_i ↦ [s_i | e_i],
// indices n+i. Columns are eliminated left to right. The pivot at column j is
// the row with the smallest |leading coefficient| there (ties go to the
// shorter row); every other row r with a leading j becomes
//
//	r ← a·r − b·p       a = p_j, b = r_j
//
// reduced by its content gcd. When the elimination finishes, the rows whose
// first entry lies in the identity block are the relations.
//
// Arithmetic is exact int64; overflow returns sparse.ErrOverflow.
package nullspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crntk/sparse"
)

// ErrNegativeDimension is returned when n < 0.
var ErrNegativeDimension = errors.New("nullspace: negative dimension")

// Option configures an elimination.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets a cancellation context, checked once per column. A nil
// ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Basis returns a basis of {y : Σ y_i·rows[i] = 0}, each vector over the
// row indices [0, len(rows)), deflated and with a positive first entry.
// rows is not modified.
func Basis(rows []sparse.Vector, n int, opts ...Option) ([]sparse.Vector, error) {
	_, basis, err := reduce(rows, n, opts)
	return basis, err
}

// Rank returns the rank of the matrix formed by rows.
func Rank(rows []sparse.Vector, n int, opts ...Option) (int, error) {
	rank, _, err := reduce(rows, n, opts)
	return rank, err
}

// Decompose returns both the rank and the null-space basis from a single
// elimination.
func Decompose(rows []sparse.Vector, n int, opts ...Option) (rank int, basis []sparse.Vector, err error) {
	return reduce(rows, n, opts)
}

func reduce(rows []sparse.Vector, n int, opts []Option) (int, []sparse.Vector, error) {
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: %d", ErrNegativeDimension, n)
	}
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Augment with the identity block.
	m := len(rows)
	work := make([]sparse.Vector, m)
	for i, r := range rows {
		if err := r.Validate(n); err != nil {
			return 0, nil, fmt.Errorf("nullspace: row %d: %w", i, err)
		}
		aug := make(sparse.Vector, len(r), len(r)+1)
		copy(aug, r)
		work[i] = append(aug, sparse.Entry{Index: n + i, Value: 1})
	}

	// 2. Eliminate column by column.
	i := 0
	for j := 0; i < m && j < n; j++ {
		select {
		case <-o.ctx.Done():
			return 0, nil, o.ctx.Err()
		default:
		}

		p := pivot(work, i, j)
		if p < 0 {
			continue
		}
		work[i], work[p] = work[p], work[i]

		a := work[i][0].Value
		for k := i + 1; k < m; k++ {
			if work[k][0].Index != j {
				continue
			}
			b := work[k][0].Value
			r, err := sparse.Axpy(-b, work[i], a, work[k])
			if err != nil {
				return 0, nil, fmt.Errorf("nullspace: column %d: %w", j, err)
			}
			sparse.Deflate(r)
			work[k] = r
		}
		i++
	}

	// 3. Rows below the last pivot lead in the identity block.
	basis := make([]sparse.Vector, 0, m-i)
	for _, r := range work[i:] {
		y := make(sparse.Vector, len(r))
		for k, e := range r {
			y[k] = sparse.Entry{Index: e.Index - n, Value: e.Value}
		}
		if y[0].Value < 0 {
			for k := range y {
				y[k].Value = -y[k].Value
			}
		}
		basis = append(basis, y)
	}

	return i, basis, nil
}

// pivot picks, among rows[from:] leading at column j, the one with the
// smallest |leading coefficient|, shorter rows winning ties. Returns -1 when
// no row leads at j.
func pivot(rows []sparse.Vector, from, j int) int {
	best := -1
	var bestAbs uint64
	for k := from; k < len(rows); k++ {
		lead := rows[k][0]
		if lead.Index != j {
			continue
		}
		a := magnitude(lead.Value)
		if best < 0 || a < bestAbs || (a == bestAbs && len(rows[k]) < len(rows[best])) {
			best, bestAbs = k, a
		}
	}

	return best
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}
