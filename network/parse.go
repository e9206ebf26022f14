// SPDX-License-Identifier: MIT

package network

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// arrowPattern matches every arrow spelling: a run over '<', '=', '-', '>'
// anchored by '<' at the start and/or '>' at the end, or a run of '='.
var arrowPattern = regexp.MustCompile(`<[<=-]*[>=-]*>|<[<=-]*|[>=-]*>|=+`)

const maxLine = 1 << 20

// parser accumulates one document into a Network.
type parser struct {
	net     *Network
	species map[string]struct{}
	errs    error
	line    int
}

// ParseString parses a reaction document held in memory.
func ParseString(s string) (*Network, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a reaction document. On any syntax error it returns nil and the
// combined errors of the whole document; use multierr.Errors to list them.
func Parse(r io.Reader) (*Network, error) {
	p := &parser{net: newNetwork(), species: make(map[string]struct{})}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		p.line++
		p.parseLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("network: read: %w", err)
	}
	if p.errs != nil {
		return nil, p.errs
	}

	p.net.species = make([]string, 0, len(p.species))
	for s := range p.species {
		p.net.species = append(p.net.species, s)
	}
	sort.Strings(p.net.species)

	return p.net, nil
}

func (p *parser) parseLine(line string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	for _, chain := range strings.Split(line, ";") {
		p.parseChain(chain)
	}
}

// parseChain handles "c0 arrow c1 arrow c2 ...". Every complex is parsed even
// after an error so that all bad terms on the line are reported.
func (p *parser) parseChain(chain string) {
	arrows := arrowPattern.FindAllStringIndex(chain, -1)
	if len(arrows) == 0 {
		return
	}

	// 1. Split into complexes around the arrows.
	segments := make([]string, 0, len(arrows)+1)
	prev := 0
	for _, loc := range arrows {
		segments = append(segments, chain[prev:loc[0]])
		prev = loc[1]
	}
	segments = append(segments, chain[prev:])

	// 2. Resolve every complex.
	ids := make([]int, len(segments))
	ok := true
	for i, seg := range segments {
		id, good := p.parseComplex(seg)
		ids[i] = id
		ok = ok && good
	}
	if !ok {
		return
	}

	// 3. Emit reactions for each arrow.
	for i, loc := range arrows {
		arrow := chain[loc[0]:loc[1]]
		backward := arrow[0] == '<'
		forward := arrow[len(arrow)-1] == '>'
		lhs, rhs := ids[i], ids[i+1]
		if forward || !backward {
			p.addReaction(lhs, rhs)
		}
		if backward || !forward {
			p.addReaction(rhs, lhs)
		}
	}
}

// parseComplex parses "t1 + t2 + ..." and returns the complex index.
func (p *parser) parseComplex(text string) (int, bool) {
	counts := make(map[string]int64)
	ok := true
	for _, raw := range strings.Split(text, "+") {
		species, coef, err := parseTerm(raw)
		if err != nil {
			p.fail(raw, err)
			ok = false
			continue
		}
		if coef == 0 || species == "" {
			continue
		}
		if counts[species] > math.MaxInt64-coef {
			p.fail(raw, ErrCoefficient)
			ok = false
			continue
		}
		counts[species] += coef
	}
	if !ok {
		return -1, false
	}

	c := Complex{Terms: make([]Term, 0, len(counts))}
	for s, k := range counts {
		c.Terms = append(c.Terms, Term{Species: s, Coef: k})
		p.species[s] = struct{}{}
	}
	sort.Slice(c.Terms, func(i, j int) bool { return c.Terms[i].Species < c.Terms[j].Species })

	key := c.String()
	if id, seen := p.net.complexIndex[key]; seen {
		return id, true
	}
	c.Index = len(p.net.complexes)
	p.net.complexes = append(p.net.complexes, c)
	p.net.complexIndex[key] = c.Index

	return c.Index, true
}

func (p *parser) addReaction(lhs, rhs int) {
	r := Reaction{LHS: lhs, RHS: rhs}
	if _, seen := p.net.reactionIndex[r]; seen {
		return
	}
	p.net.reactionIndex[r] = len(p.net.reactions)
	p.net.reactions = append(p.net.reactions, r)
}

func (p *parser) fail(raw string, err error) {
	p.errs = multierr.Append(p.errs,
		fmt.Errorf("%w: line %d: term %q: %w", ErrSyntax, p.line, strings.TrimSpace(raw), err))
}

// parseTerm splits "[coef][*]species". An empty species with a nil error is
// the zero complex.
func parseTerm(raw string) (species string, coef int64, err error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", 0, ErrEmptyTerm
	}

	k := 0
	for k < len(t) && t[k] >= '0' && t[k] <= '9' {
		k++
	}
	digits := t[:k]
	rest := strings.TrimSpace(t[k:])
	if strings.HasPrefix(rest, "*") {
		rest = strings.TrimSpace(rest[1:])
	}

	coef = 1
	if digits != "" {
		coef, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return "", 0, ErrCoefficient
		}
	}

	switch {
	case rest == "" && digits == "":
		return "", 0, ErrEmptyTerm
	case rest == "":
		// a bare number: only 0 is meaningful
		if coef == 0 {
			return "", 0, nil
		}
		return "", 0, ErrNumericSpecies
	case strings.IndexFunc(rest, unicode.IsSpace) >= 0:
		return "", 0, ErrMalformedTerm
	case allDigits(rest):
		if n, perr := strconv.ParseInt(rest, 10, 64); perr == nil && n == 0 {
			return "", 0, nil
		}
		return "", 0, ErrNumericSpecies
	}

	return rest, coef, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}
