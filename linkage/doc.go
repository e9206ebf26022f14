// SPDX-License-Identifier: MIT

// Package linkage splits a reaction network's complex graph into linkage
// classes and classifies each class's reversibility.
//
// The complex graph has one vertex per complex and one directed edge per
// reaction. Strongly connected components are found with Tarjan's
// algorithm; linkage classes are the connected components of the undirected
// graph whose vertices are those SCCs.
//
// Reversibility of a class:
//
//   - Reversible: the class is one SCC and every reaction's reverse is
//     present.
//   - WeaklyReversible: the class is one SCC, some reverse is missing.
//   - None: the class spans more than one SCC.
//
// A network is weakly reversible when every class is at least
// WeaklyReversible. The number of classes feeds the deficiency
// δ = complexes − classes − rank.
//
// Complexity: O(V + E) time and memory.
package linkage
