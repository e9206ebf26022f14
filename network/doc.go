// SPDX-License-Identifier: MIT

// Package network parses chemical reaction network notation and builds the
// stoichiometry consumed by the ray enumerator.
//
// Notation:
//
//	# comments run to the end of the line
//	A + B -> C          forward
//	C <- A + B          backward (same reaction as above)
//	A <-> 2*B           reversible; also <=>, <>, =, ==
//	0 -> X; X -> 0      several chains per line, split on ';'
//	E + S <-> ES -> E + P
//
// A chain is complex (arrow complex)+. Arrows are any run of '<', '=', '-',
// '>' that starts with '<' (backward), ends with '>' (forward), or both; a
// run of '=' alone is reversible. A segment with no arrow is ignored.
//
// A term is [coefficient][*]species. The coefficient defaults to 1, a zero
// coefficient drops the term, and repeated species are summed. The species
// name 0 denotes the zero complex. Purely numeric names and empty terms are
// rejected.
//
// Complexes are canonicalised by species (2*A + B, 0) and numbered in
// first-seen order. Reactions are (lhs, rhs) complex pairs numbered in
// first-seen order without duplicates. Species are ordered lexically.
//
// Every malformed term in a document is reported; Parse returns all of them
// combined with go.uber.org/multierr, each wrapping ErrSyntax and carrying its
// line number.
package network
