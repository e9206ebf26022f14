// SPDX-License-Identifier: MIT

package ddm

import (
	"github.com/katalvlaran/crntk/queue"
	"github.com/katalvlaran/crntk/sparse"
)

// signedRay is a ray that strictly violates or strictly satisfies the
// constraint being applied, together with r·a.
type signedRay struct {
	r   sparse.Vector
	dot int64
}

// process partitions R by the sign of r·a and, when force is set or the
// application does not grow R, replaces the signed rays by their pairwise
// combinations. Otherwise R is restored with the signed rays moved behind
// the zero group.
//
// Returns delta = n1 − n0, where n1 = |zero| + |neg|·|pos|, and trivial when
// no ray was signed.
func (e *engine) process(a sparse.Vector, force bool) (delta int, trivial bool, err error) {
	e.neg, e.pos = e.neg[:0], e.pos[:0]

	// 1. Partition. Zero-group rays go straight back into R.
	n0 := e.R.Len()
	for i := 0; i < n0; i++ {
		r, _ := e.R.Dequeue()
		d, err := sparse.Dot(r, a)
		if err != nil {
			return 0, false, err
		}
		switch {
		case d < 0:
			e.neg = append(e.neg, signedRay{r: r, dot: d})
		case d > 0:
			e.pos = append(e.pos, signedRay{r: r, dot: d})
		default:
			e.R.Enqueue(r)
		}
	}

	n1 := e.R.Len() + len(e.neg)*len(e.pos)
	delta = n1 - n0
	trivial = len(e.neg)+len(e.pos) == 0

	// 2. Defer: signed rays return unchanged, negatives first.
	if !force && n1 > n0 {
		e.restore()
		return delta, trivial, nil
	}

	// 3. Apply: combine every positive ray with every negative ray.
	for _, x := range e.pos {
		for _, y := range e.neg {
			z, err := sparse.Axpy(-y.dot, x.r, x.dot, y.r)
			if err != nil {
				return 0, false, err
			}
			sparse.Deflate(z)
			e.stats.Combinations++
			if !nonRedundant(z, e.R) {
				e.stats.Redundant++
				continue
			}
			e.R.Enqueue(z)
		}
	}

	return delta, trivial, nil
}

// restore re-enqueues the partitioned signed rays, negatives then positives.
func (e *engine) restore() {
	for _, s := range e.neg {
		e.R.Enqueue(s.r)
	}
	for _, s := range e.pos {
		e.R.Enqueue(s.r)
	}
}

// nonRedundant reports whether no ray in R has a support contained in
// supp(z). This is the combinatorial necessary condition for z to be
// extreme; the rank condition is not checked.
func nonRedundant(z sparse.Vector, R *queue.Queue[sparse.Vector]) bool {
	for r := range R.All() {
		if sparse.SupportSubset(r, z) {
			return false
		}
	}

	return true
}
