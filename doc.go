// SPDX-License-Identifier: MIT

// Package crntk is a toolkit for the structural analysis of chemical
// reaction networks.
//
// A network is written in a small reaction notation ("E + S <-> ES -> E + P")
// and analysed without rate constants:
//
//	sparse/     exact int64 sparse vectors with overflow checks
//	queue/      generic FIFO ring buffer
//	ddm/        Double Description Method: extreme rays of {x ≥ 0 : Ax = 0}
//	network/    notation parser, complexes, reactions, stoichiometry
//	linkage/    linkage classes and (weak) reversibility
//	nullspace/  fraction-free integer null space and rank
//	analysis/   full reports, conservation-law cache, background jobs
//	generate/   synthetic networks of known shape
//	cmd/crntk/  command line: analyze, claws, generate, serve
//
// The semi-positive conservation laws of a network are the extreme rays of
// {x ≥ 0 : xᵀS = 0}, where S has one column per reaction. They are enumerated
// by ddm, one stoichiometry row per constraint.
package crntk
