// SPDX-License-Identifier: MIT

// Package sparse: merge-based arithmetic on sorted entry lists.
package sparse

import (
	"math"
	"math/bits"
)

// Dot returns Σ x_i·y_i over the indices present in both x and y.
// Indices present in only one operand contribute nothing.
//
// Returns ErrOverflow if any product or partial sum leaves the int64 range.
// Complexity: O(|x| + |y|).
func Dot(x, y Vector) (int64, error) {
	var (
		z    int64
		p    int64
		err  error
		i, j int
	)
	for i < len(x) && j < len(y) {
		switch xi, yj := x[i].Index, y[j].Index; {
		case xi < yj:
			i++
		case xi > yj:
			j++
		default:
			if p, err = mul(x[i].Value, y[j].Value); err != nil {
				return 0, err
			}
			if z, err = add(z, p); err != nil {
				return 0, err
			}
			i++
			j++
		}
	}

	return z, nil
}

// Axpy returns a·x + b·y as a freshly allocated Vector. Shared indices are
// summed, indices whose result is exactly zero are dropped, and the output
// stays sorted. Neither x nor y is modified.
//
// Returns ErrOverflow if any coefficient leaves the int64 range.
// Complexity: O(|x| + |y|).
func Axpy(a int64, x Vector, b int64, y Vector) (Vector, error) {
	z := make(Vector, 0, len(x)+len(y))

	var (
		i, j int
		idx  int
		val  int64
		err  error
	)
	for i < len(x) || j < len(y) {
		switch {
		case j >= len(y) || (i < len(x) && x[i].Index < y[j].Index):
			idx = x[i].Index
			val, err = mul(a, x[i].Value)
			i++
		case i >= len(x) || x[i].Index > y[j].Index:
			idx = y[j].Index
			val, err = mul(b, y[j].Value)
			j++
		default:
			idx = x[i].Index
			val, err = combine(a, x[i].Value, b, y[j].Value)
			i++
			j++
		}
		if err != nil {
			return nil, err
		}
		if val != 0 {
			z = append(z, Entry{Index: idx, Value: val})
		}
	}

	return z, nil
}

// Deflate divides every coefficient of v in place by g, the gcd of their
// absolute values, and returns g. The zero vector has g = 0 and is left
// untouched; g = 1 also leaves v untouched.
//
// Repeated combination steps multiply coefficients; deflating after each one
// keeps magnitudes bounded by the geometry instead of by the history.
func Deflate(v Vector) int64 {
	var g uint64
	for _, e := range v {
		g = gcd(g, abs(e.Value))
		if g == 1 {
			return 1
		}
	}
	if g > 1 {
		d := int64(g)
		for k := range v {
			v[k].Value /= d
		}
	}

	return int64(g)
}

// GCD returns the greatest common divisor of |u| and |v|.
// GCD(0, v) = |v|, GCD(0, 0) = 0.
func GCD(u, v int64) int64 {
	return int64(gcd(abs(u), abs(v)))
}

// SupportSubset reports whether support(x) ⊆ support(y). Both supports are
// strictly increasing, so this is a merge that stops as soon as the remaining
// entries of x outnumber the remaining entries of y.
//
// Complexity: O(|x| + |y|).
func SupportSubset(x, y Vector) bool {
	i, j := 0, 0
	for {
		rx, ry := len(x)-i, len(y)-j
		if rx == 0 {
			return true
		}
		if rx > ry {
			return false
		}
		xi, yj := x[i].Index, y[j].Index
		switch {
		case xi < yj:
			return false
		case xi > yj:
			j++
		default:
			i++
			j++
		}
	}
}

// gcd is Stein's binary gcd on magnitudes.
func gcd(u, v uint64) uint64 {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}
	shift := bits.TrailingZeros64(u | v)
	u >>= bits.TrailingZeros64(u)
	for v != 0 {
		v >>= bits.TrailingZeros64(v)
		if u > v {
			u, v = v, u
		}
		v -= u
	}

	return u << shift
}

// abs returns |x| as uint64; valid for every int64 including MinInt64.
func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

// mul returns a·b or ErrOverflow. MinInt64 counts as overflow.
func mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c == math.MinInt64 || c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}

	return c, nil
}

// add returns a+b or ErrOverflow. MinInt64 counts as overflow.
func add(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) || c == math.MinInt64 {
		return 0, ErrOverflow
	}

	return c, nil
}

// combine returns a·x + b·y or ErrOverflow.
func combine(a, x, b, y int64) (int64, error) {
	p, err := mul(a, x)
	if err != nil {
		return 0, err
	}
	q, err := mul(b, y)
	if err != nil {
		return 0, err
	}

	return add(p, q)
}
