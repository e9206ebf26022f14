// SPDX-License-Identifier: MIT

// Package sparse implements exact integer sparse vectors, the common currency
// of every crntk algorithm: stoichiometry rows, constraint rows, null-space
// basis rows and extreme rays are all sparse.Vector values.
//
// What:
//
//   - Vector: a slice of Entry{Index, Value}, strictly increasing by Index,
//     with no explicit zero Value. The invariant is preserved by every
//     producing function in this package.
//   - Dot:    Σ x_i·y_i over shared indices (two-pointer merge).
//   - Axpy:   a·x + b·y as a new Vector; exact zeros are dropped.
//   - Deflate: divide in place by the gcd of |coefficients|.
//   - Support / SupportSubset: index-set views used by the DDM redundancy test.
//
// Why:
//
//	Reaction networks are extremely sparse: a reaction touches a handful of
//	species out of possibly hundreds. Our operations are row-oriented, so a
//	sorted entry list is simpler than a CSR/CSC matrix and every binary
//	operation is a linear merge instead of a hashed lookup.
//
// Arithmetic policy:
//
//	Coefficients are int64. Dot and Axpy use checked arithmetic and return
//	ErrOverflow instead of wrapping around. math.MinInt64 is treated as
//	out of range so |v| is always representable.
//
// Complexity:
//
//   - Dot, Axpy, SupportSubset: O(|x| + |y|)
//   - Deflate:                  O(|v| · log max|v_i|)
//
// Errors:
//
//   - ErrOverflow         checked arithmetic left the int64 range
//   - ErrIndexOutOfRange  Validate: index outside [0, n)
//   - ErrDuplicateIndex   Validate: the same index appears twice
//   - ErrUnsorted         Validate: indices are not increasing
//   - ErrZeroEntry        Validate: an explicit zero coefficient
package sparse
