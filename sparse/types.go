// SPDX-License-Identifier: MIT

// Package sparse: domain types, sentinel errors and constructors.
package sparse

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sentinel errors. Callers match them with errors.Is; producers may wrap them
// with positional context (row number, index) via fmt.Errorf("...: %w", ErrX).
var (
	// ErrOverflow indicates that a product or sum left the int64 range.
	ErrOverflow = errors.New("sparse: integer overflow")

	// ErrIndexOutOfRange indicates an entry index outside [0, n).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDuplicateIndex indicates that one index occurs more than once.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")

	// ErrUnsorted indicates that entry indices are not strictly increasing.
	ErrUnsorted = errors.New("sparse: indices not sorted")

	// ErrZeroEntry indicates an explicitly stored zero coefficient.
	ErrZeroEntry = errors.New("sparse: explicit zero entry")
)

// Entry is one stored coordinate of a Vector.
type Entry struct {
	Index int   `json:"i" yaml:"i"`
	Value int64 `json:"v" yaml:"v"`
}

// Vector is a sparse integer vector: entries sorted by strictly increasing
// Index, no zero Value. The zero value (nil) is the zero vector.
type Vector []Entry

// Unit returns the standard basis vector e_i.
func Unit(i int) Vector {
	return Vector{{Index: i, Value: 1}}
}

// FromDense builds a Vector from a dense coefficient slice, skipping zeros.
func FromDense(dense []int64) Vector {
	v := make(Vector, 0, len(dense))
	for i, x := range dense {
		if x != 0 {
			v = append(v, Entry{Index: i, Value: x})
		}
	}

	return v
}

// FromMap builds a Vector from an index→coefficient map. Zero coefficients
// are dropped; the result is sorted by index.
func FromMap(m map[int]int64) Vector {
	v := make(Vector, 0, len(m))
	for i, x := range m {
		if x != 0 {
			v = append(v, Entry{Index: i, Value: x})
		}
	}
	sort.Slice(v, func(a, b int) bool { return v[a].Index < v[b].Index })

	return v
}

// Dense expands v into a dense slice of length n. Entries with Index >= n
// are ignored.
func (v Vector) Dense(n int) []int64 {
	out := make([]int64, n)
	for _, e := range v {
		if e.Index >= 0 && e.Index < n {
			out[e.Index] = e.Value
		}
	}

	return out
}

// Clone returns a deep copy of v. Mutating the copy (e.g. by Deflate) never
// affects v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// At returns the coefficient at index i (zero when absent).
// Complexity: O(log |v|).
func (v Vector) At(i int) int64 {
	k := sort.Search(len(v), func(k int) bool { return v[k].Index >= i })
	if k < len(v) && v[k].Index == i {
		return v[k].Value
	}

	return 0
}

// IsZero reports whether v has no stored entries.
func (v Vector) IsZero() bool { return len(v) == 0 }

// Equal reports whether v and w hold exactly the same entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for k := range v {
		if v[k] != w[k] {
			return false
		}
	}

	return true
}

// Support returns the indices with a nonzero coefficient, in increasing order.
func (v Vector) Support() []int {
	out := make([]int, len(v))
	for k, e := range v {
		out[k] = e.Index
	}

	return out
}

// String renders v as "[(i,v) (j,w)]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, e := range v {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", e.Index, e.Value)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Validate checks the Vector invariants against dimension n:
// indices in [0, n), strictly increasing, no zero and no math.MinInt64
// coefficient. The first violation found is returned.
//
// Error priority: range -> duplicate -> order -> zero -> overflow, per entry.
func (v Vector) Validate(n int) error {
	prev := -1
	for k, e := range v {
		if e.Index < 0 || e.Index >= n {
			return fmt.Errorf("entry %d: index %d not in [0, %d): %w", k, e.Index, n, ErrIndexOutOfRange)
		}
		if k > 0 && e.Index == prev {
			return fmt.Errorf("entry %d: index %d: %w", k, e.Index, ErrDuplicateIndex)
		}
		if k > 0 && e.Index < prev {
			return fmt.Errorf("entry %d: index %d after %d: %w", k, e.Index, prev, ErrUnsorted)
		}
		if e.Value == 0 {
			return fmt.Errorf("entry %d: index %d: %w", k, e.Index, ErrZeroEntry)
		}
		if e.Value == math.MinInt64 {
			return fmt.Errorf("entry %d: index %d: %w", k, e.Index, ErrOverflow)
		}
		prev = e.Index
	}

	return nil
}
