// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/linkage"
	"github.com/katalvlaran/crntk/sparse"
)

// Reaction is a reaction as shown in a report.
type Reaction struct {
	Index      int    `json:"index" yaml:"index"`
	Text       string `json:"text" yaml:"text"`
	LHS        int    `json:"lhs" yaml:"lhs"`
	RHS        int    `json:"rhs" yaml:"rhs"`
	Reversible bool   `json:"reversible" yaml:"reversible"`
}

// Law is one conservation law: a ray over the species order and its text
// form, e.g. "E + ES".
type Law struct {
	Ray  sparse.Vector `json:"ray" yaml:"ray"`
	Text string        `json:"text" yaml:"text"`
}

// Report is the full analysis of one network.
type Report struct {
	Species          []string        `json:"species" yaml:"species"`
	Complexes        []string        `json:"complexes" yaml:"complexes"`
	Reactions        []Reaction      `json:"reactions" yaml:"reactions"`
	Stoichiometry    []sparse.Vector `json:"stoichiometry" yaml:"stoichiometry"`
	LinkageClasses   []linkage.Class `json:"linkage_classes" yaml:"linkage_classes"`
	Rank             int             `json:"rank" yaml:"rank"`
	Deficiency       int             `json:"deficiency" yaml:"deficiency"`
	WeaklyReversible bool            `json:"weakly_reversible" yaml:"weakly_reversible"`
	NullSpace        []sparse.Vector `json:"null_space" yaml:"null_space"`
	Laws             []Law           `json:"conservation_laws" yaml:"conservation_laws"`
	Stats            ddm.Stats       `json:"ddm_stats" yaml:"ddm_stats"`
	Cached           bool            `json:"cached" yaml:"cached"`
}
