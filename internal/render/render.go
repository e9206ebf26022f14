// SPDX-License-Identifier: MIT

// Package render writes analysis results as text, JSON or YAML.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/sparse"
)

// ErrFormat is returned for an unknown output format or colour mode.
var ErrFormat = errors.New("render: unknown format")

// Renderer writes results to one destination in one format.
type Renderer struct {
	w      io.Writer
	format string

	head  *color.Color
	label *color.Color
	good  *color.Color
	bad   *color.Color
}

// New returns a Renderer. format is text, json or yaml; colorMode is auto,
// always or never. auto colours text only when w is a terminal and NO_COLOR
// is unset.
func New(w io.Writer, format, colorMode string) (*Renderer, error) {
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	var enabled bool
	switch colorMode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto", "":
		enabled = isTerminal(w) && os.Getenv("NO_COLOR") == ""
	default:
		return nil, fmt.Errorf("%w: color %q", ErrFormat, colorMode)
	}

	r := &Renderer{
		w:      w,
		format: format,
		head:   color.New(color.FgCyan, color.Bold),
		label:  color.New(color.Bold),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.head, r.label, r.good, r.bad} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Report writes a full analysis.
func (r *Renderer) Report(rep *analysis.Report) error {
	if r.format != "text" {
		return r.encode(rep)
	}

	var b strings.Builder
	r.section(&b, "species", len(rep.Species))
	fmt.Fprintf(&b, "  %s\n", strings.Join(rep.Species, " "))

	r.section(&b, "complexes", len(rep.Complexes))
	for i, c := range rep.Complexes {
		fmt.Fprintf(&b, "  %3d  %s\n", i, c)
	}

	r.section(&b, "reactions", len(rep.Reactions))
	for _, rx := range rep.Reactions {
		fmt.Fprintf(&b, "  %3d  %s", rx.Index, rx.Text)
		if rx.Reversible {
			b.WriteString("  " + r.good.Sprint("(reversible)"))
		}
		b.WriteByte('\n')
	}

	r.section(&b, "linkage classes", len(rep.LinkageClasses))
	for _, c := range rep.LinkageClasses {
		fmt.Fprintf(&b, "  complexes %v  reactions %v  %s\n", c.Complexes, c.Reactions, c.Reversibility)
	}

	fmt.Fprintf(&b, "%s %d\n", r.label.Sprint("rank:"), rep.Rank)
	deficiency := r.good
	if rep.Deficiency > 0 {
		deficiency = r.bad
	}
	fmt.Fprintf(&b, "%s %s\n", r.label.Sprint("deficiency:"), deficiency.Sprint(rep.Deficiency))
	fmt.Fprintf(&b, "%s %s\n", r.label.Sprint("weakly reversible:"), yesNo(rep.WeaklyReversible))

	r.section(&b, "null space", len(rep.NullSpace))
	writeVectors(&b, rep.NullSpace)

	r.writeLaws(&b, rep.Laws)
	r.writeStats(&b, rep.Stats, rep.Cached)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Laws writes conservation laws with their enumeration counters.
func (r *Renderer) Laws(laws []analysis.Law, stats ddm.Stats, cached bool) error {
	if r.format != "text" {
		return r.encode(struct {
			Laws   []analysis.Law `json:"conservation_laws" yaml:"conservation_laws"`
			Stats  ddm.Stats      `json:"ddm_stats" yaml:"ddm_stats"`
			Cached bool           `json:"cached" yaml:"cached"`
		}{laws, stats, cached})
	}

	var b strings.Builder
	r.writeLaws(&b, laws)
	r.writeStats(&b, stats, cached)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Value writes v as JSON or YAML. Text falls back to JSON.
func (r *Renderer) Value(v any) error {
	return r.encode(v)
}

func (r *Renderer) encode(v any) error {
	var (
		data []byte
		err  error
	)
	if r.format == "yaml" {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", r.format, err)
	}
	_, err = r.w.Write(data)

	return err
}

func (r *Renderer) section(b *strings.Builder, name string, n int) {
	fmt.Fprintf(b, "%s\n", r.head.Sprintf("%s (%d):", name, n))
}

func (r *Renderer) writeLaws(b *strings.Builder, laws []analysis.Law) {
	r.section(b, "conservation laws", len(laws))
	for _, l := range laws {
		fmt.Fprintf(b, "  %s\n", l.Text)
	}
}

func (r *Renderer) writeStats(b *strings.Builder, s ddm.Stats, cached bool) {
	fmt.Fprintf(b, "%s passes %d, applied %d, deferred %d, trivial %d, forced %d, combinations %d, redundant %d, peak rays %d",
		r.label.Sprint("ddm:"), s.Passes, s.Applied, s.Deferred, s.Trivial, s.Forced, s.Combinations, s.Redundant, s.PeakRays)
	if cached {
		b.WriteString(" (cached)")
	}
	b.WriteByte('\n')
}

func writeVectors(b *strings.Builder, vs []sparse.Vector) {
	for _, v := range vs {
		fmt.Fprintf(b, "  %s\n", v)
	}
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}

	return "no"
}
