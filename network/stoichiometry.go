// SPDX-License-Identifier: MIT

package network

import (
	"github.com/katalvlaran/crntk/sparse"
)

// Stoichiometry returns one row per reaction, rhs − lhs over the species in
// lexical order, together with that species order. Row i belongs to
// Reactions()[i]; column j to species[j].
func (n *Network) Stoichiometry() (rows []sparse.Vector, species []string) {
	vectors := n.complexVectors()

	rows = make([]sparse.Vector, len(n.reactions))
	for i, r := range n.reactions {
		// coefficients are positive, so rhs − lhs cannot overflow
		rows[i], _ = sparse.Axpy(-1, vectors[r.LHS], 1, vectors[r.RHS])
	}

	return rows, n.Species()
}

// ComplexVector returns complex i as a vector over the lexical species order.
func (n *Network) ComplexVector(i int) sparse.Vector {
	return n.complexVector(n.speciesLookup(), n.complexes[i])
}

func (n *Network) complexVectors() []sparse.Vector {
	lookup := n.speciesLookup()
	out := make([]sparse.Vector, len(n.complexes))
	for i, c := range n.complexes {
		out[i] = n.complexVector(lookup, c)
	}

	return out
}

func (n *Network) speciesLookup() map[string]int {
	lookup := make(map[string]int, len(n.species))
	for i, s := range n.species {
		lookup[s] = i
	}

	return lookup
}

func (n *Network) complexVector(lookup map[string]int, c Complex) sparse.Vector {
	v := make(sparse.Vector, 0, len(c.Terms))
	for _, t := range c.Terms {
		v = append(v, sparse.Entry{Index: lookup[t.Species], Value: t.Coef})
	}
	// terms are sorted by name, which is also the species order

	return v
}

// Law renders a ray over the species order as "A + 2*B".
func (n *Network) Law(ray sparse.Vector) string {
	c := Complex{Terms: make([]Term, 0, len(ray))}
	for _, e := range ray {
		if e.Index >= 0 && e.Index < len(n.species) {
			c.Terms = append(c.Terms, Term{Species: n.species[e.Index], Coef: e.Value})
		}
	}

	return c.String()
}
