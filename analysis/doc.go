// SPDX-License-Identifier: MIT

// Package analysis ties the algorithm packages into one reaction-network
// analysis and runs analyses in the background.
//
// Service.Analyze parses a document and reports:
//
//   - species, complexes and reactions,
//   - linkage classes with their reversibility,
//   - the stoichiometric rank and the null space over reactions,
//   - the deficiency δ = complexes − linkage classes − rank,
//   - the semi-positive conservation laws, i.e. the extreme rays of
//     {x ≥ 0 : xᵀS = 0}.
//
// Conservation laws are the expensive part. They are memoised in a Cache keyed
// by a SHA-256 of the species order and stoichiometry rows; MemoryCache serves
// one process, internal/cache shares results through Redis.
//
// Manager runs analyses as jobs with an id, a status, progress and
// cancellation. A cancelled job keeps no partial result.
package analysis
