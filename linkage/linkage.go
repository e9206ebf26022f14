// SPDX-License-Identifier: MIT

package linkage

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/crntk/network"
)

// tarjan holds the state of one strongly-connected-components search.
type tarjan struct {
	ctx   context.Context
	edges [][]int // out-neighbours per complex, reaction order

	pre   []int // preorder number, -1 when unvisited
	low   []int
	id    []int // component of each complex
	stack []int
	index int
	count int
}

// Classify computes the linkage classes of a network with the given number
// of complexes and reactions. Classes are ordered by their smallest complex.
func Classify(complexes int, reactions []network.Reaction, opts ...Option) ([]Class, error) {
	if complexes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, complexes)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Directed complex graph plus reaction lookup for reverse checks.
	edges := make([][]int, complexes)
	present := make(map[network.Reaction]struct{}, len(reactions))
	for i, r := range reactions {
		if r.LHS < 0 || r.LHS >= complexes || r.RHS < 0 || r.RHS >= complexes {
			return nil, fmt.Errorf("reaction %d (%d -> %d): %w", i, r.LHS, r.RHS, ErrComplexOutOfRange)
		}
		if _, dup := present[r]; !dup {
			edges[r.LHS] = append(edges[r.LHS], r.RHS)
		}
		present[r] = struct{}{}
	}

	// 2. Strongly connected components.
	t := &tarjan{
		ctx:   o.Ctx,
		edges: edges,
		pre:   filled(complexes, -1),
		low:   make([]int, complexes),
		id:    make([]int, complexes),
	}
	for v := 0; v < complexes; v++ {
		if t.pre[v] == -1 {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Undirected adjacency between components.
	adj := make([][]int, t.count)
	seen := make(map[[2]int]struct{})
	for _, r := range reactions {
		i, j := t.id[r.LHS], t.id[r.RHS]
		if i == j {
			continue
		}
		if _, ok := seen[[2]int{i, j}]; ok {
			continue
		}
		seen[[2]int{i, j}] = struct{}{}
		seen[[2]int{j, i}] = struct{}{}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}

	// 4. Connected components of the component graph.
	membership := filled(t.count, -1)
	nclasses := 0
	var stack []int
	for s := 0; s < t.count; s++ {
		if membership[s] != -1 {
			continue
		}
		stack = append(stack[:0], s)
		membership[s] = nclasses
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, k := range adj[j] {
				if membership[k] == -1 {
					membership[k] = nclasses
					stack = append(stack, k)
				}
			}
		}
		nclasses++
	}

	// 5. Bin complexes and reactions, grading each class.
	classes := make([]Class, nclasses)
	graded := make([]bool, nclasses)
	for c := 0; c < complexes; c++ {
		scc := t.id[c]
		k := membership[scc]
		classes[k].Complexes = append(classes[k].Complexes, c)
		if !graded[k] {
			graded[k] = true
			classes[k].Reversibility = None
			if len(adj[scc]) == 0 {
				classes[k].Reversibility = Reversible
			}
		}
	}
	for i, r := range reactions {
		k := membership[t.id[r.LHS]]
		classes[k].Reactions = append(classes[k].Reactions, i)
		grade := WeaklyReversible
		if _, ok := present[r.Reverse()]; ok {
			grade = Reversible
		}
		if grade < classes[k].Reversibility {
			classes[k].Reversibility = grade
		}
	}

	sort.SliceStable(classes, func(a, b int) bool {
		return classes[a].Complexes[0] < classes[b].Complexes[0]
	})

	return classes, nil
}

// visit is the recursive step of Tarjan's algorithm.
func (t *tarjan) visit(w int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}

	t.pre[w] = t.index
	t.low[w] = t.index
	t.index++
	lowest := t.low[w]
	t.stack = append(t.stack, w)

	for _, u := range t.edges[w] {
		if t.pre[u] == -1 {
			if err := t.visit(u); err != nil {
				return err
			}
		}
		if t.low[u] < lowest {
			lowest = t.low[u]
		}
	}
	if lowest < t.low[w] {
		t.low[w] = lowest
		return nil
	}

	// w is a root: pop its component
	for {
		u := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.id[u] = t.count
		t.low[u] = len(t.pre) // finished vertices never lower anyone
		if u == w {
			break
		}
	}
	t.count++

	return nil
}

func filled(n, x int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = x
	}

	return s
}
