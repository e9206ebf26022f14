// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrSyntax is wrapped by every parse error.
	ErrSyntax = errors.New("network: syntax error")

	// ErrEmptyTerm marks a missing term, e.g. "A + -> B".
	ErrEmptyTerm = errors.New("network: empty term")

	// ErrNumericSpecies marks a species name made only of digits.
	ErrNumericSpecies = errors.New("network: numeric species name")

	// ErrMalformedTerm marks a term whose species name contains whitespace.
	ErrMalformedTerm = errors.New("network: malformed term")

	// ErrCoefficient marks a coefficient that does not fit in int64.
	ErrCoefficient = errors.New("network: coefficient out of range")
)

// Term is one species of a complex with its stoichiometric coefficient.
type Term struct {
	Species string `json:"species" yaml:"species"`
	Coef    int64  `json:"coef" yaml:"coef"`
}

// Complex is a canonical multiset of species. Terms are sorted by species
// and carry positive coefficients; the zero complex has no terms.
type Complex struct {
	Index int    `json:"index" yaml:"index"`
	Terms []Term `json:"terms" yaml:"terms"`
}

// IsZero reports whether c is the zero complex.
func (c Complex) IsZero() bool { return len(c.Terms) == 0 }

// String renders c as "2*A + B", or "0" for the zero complex.
func (c Complex) String() string {
	if c.IsZero() {
		return "0"
	}
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		if t.Coef == 1 {
			parts[i] = t.Species
		} else {
			parts[i] = strconv.FormatInt(t.Coef, 10) + "*" + t.Species
		}
	}

	return strings.Join(parts, " + ")
}

// Reaction is a directed edge between two complexes.
type Reaction struct {
	LHS int `json:"lhs" yaml:"lhs"`
	RHS int `json:"rhs" yaml:"rhs"`
}

// Reverse returns the reaction with both sides swapped.
func (r Reaction) Reverse() Reaction { return Reaction{LHS: r.RHS, RHS: r.LHS} }

// Network is a parsed reaction network. It is immutable once returned by
// Parse.
type Network struct {
	species   []string
	complexes []Complex
	reactions []Reaction

	complexIndex  map[string]int
	reactionIndex map[Reaction]int
}

func newNetwork() *Network {
	return &Network{
		complexIndex:  make(map[string]int),
		reactionIndex: make(map[Reaction]int),
	}
}

// Species returns the species names in lexical order.
func (n *Network) Species() []string { return append([]string(nil), n.species...) }

// Complexes returns the complexes in first-seen order.
func (n *Network) Complexes() []Complex { return append([]Complex(nil), n.complexes...) }

// Reactions returns the reactions in first-seen order.
func (n *Network) Reactions() []Reaction { return append([]Reaction(nil), n.reactions...) }

// NumSpecies returns the number of distinct species.
func (n *Network) NumSpecies() int { return len(n.species) }

// NumComplexes returns the number of distinct complexes.
func (n *Network) NumComplexes() int { return len(n.complexes) }

// NumReactions returns the number of distinct reactions.
func (n *Network) NumReactions() int { return len(n.reactions) }

// Reversible reports whether the reverse of reaction i is also present.
func (n *Network) Reversible(i int) bool {
	if i < 0 || i >= len(n.reactions) {
		return false
	}
	_, ok := n.reactionIndex[n.reactions[i].Reverse()]

	return ok
}

// ReactionString renders reaction i as "A + B -> C".
func (n *Network) ReactionString(i int) string {
	r := n.reactions[i]
	return fmt.Sprintf("%s -> %s", n.complexes[r.LHS], n.complexes[r.RHS])
}

// String renders the network one reaction per line, folding reversible
// pairs into a single "<->" line at the position of the first direction.
func (n *Network) String() string {
	var sb strings.Builder
	for i, r := range n.reactions {
		if j, ok := n.reactionIndex[r.Reverse()]; ok {
			if j < i {
				continue
			}
			if j != i {
				fmt.Fprintf(&sb, "%s <-> %s\n", n.complexes[r.LHS], n.complexes[r.RHS])
				continue
			}
		}
		sb.WriteString(n.ReactionString(i))
		sb.WriteByte('\n')
	}

	return sb.String()
}
