// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crntk/network"
)

// Constructor emits the reactions of one shape.
type Constructor func(e *Emitter, cfg config) error

// Emitter collects reactions as text lines.
type Emitter struct {
	sb strings.Builder
	n  int
}

// Reaction appends "lhs arrow rhs".
func (e *Emitter) Reaction(lhs, arrow, rhs string) {
	fmt.Fprintf(&e.sb, "%s %s %s\n", lhs, arrow, rhs)
	e.n++
}

// Len returns the number of lines emitted.
func (e *Emitter) Len() int { return e.n }

// Text renders the network built by ctor.
func Text(ctor Constructor, opts ...Option) (string, error) {
	var e Emitter
	if err := ctor(&e, newConfig(opts...)); err != nil {
		return "", err
	}

	return e.sb.String(), nil
}

// Network builds and parses the network built by ctor.
func Network(ctor Constructor, opts ...Option) (*network.Network, error) {
	text, err := Text(ctor, opts...)
	if err != nil {
		return nil, err
	}
	net, err := network.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return net, nil
}
