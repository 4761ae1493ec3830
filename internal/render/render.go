// Package render formats runner output with lipgloss styles: one line per
// puzzle. Colours are dropped automatically when the writer is not a
// terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/aoc2021/internal/registry"
)

// Printer writes styled runner output to one writer.
type Printer struct {
	w io.Writer

	day     lipgloss.Style
	name    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	elapsed lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer for w, styled for whatever w supports.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		day:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Width(7),
		name:    r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Width(12),
		label:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		value:   r.NewStyle().Bold(true),
		elapsed: r.NewStyle().Faint(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Line renders one result without a trailing newline.
func (p *Printer) Line(res registry.Result) string {
	head := p.day.Render(fmt.Sprintf("Day %d", res.Day)) + p.name.Render(res.Name)
	if res.Failed() {
		return head + p.failure.Render("error: "+res.Err.Error())
	}

	parts := make([]string, len(res.Answers))
	for i, a := range res.Answers {
		parts[i] = p.label.Render(a.Part+":") + " " + p.value.Render(fmt.Sprint(a.Value))
	}

	return head + strings.Join(parts, "  ") + "  " + p.elapsed.Render(formatElapsed(res.Elapsed))
}

// Results writes one line per result and a closing summary.
func (p *Printer) Results(results []registry.Result) error {
	var (
		failed int
		total  time.Duration
	)
	for _, res := range results {
		if res.Failed() {
			failed++
		}
		total += res.Elapsed
		if _, err := fmt.Fprintln(p.w, p.Line(res)); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("%d solved, %d failed, %s solving", len(results)-failed, failed, formatElapsed(total))
	style := p.elapsed
	if failed > 0 {
		style = p.failure
	}
	_, err := fmt.Fprintln(p.w, style.Render(summary))

	return err
}

// Puzzles writes the registered puzzle table.
func (p *Printer) Puzzles(puzzles []registry.Puzzle) error {
	for _, pz := range puzzles {
		line := p.day.Render(fmt.Sprintf("Day %d", pz.Day)) + p.name.Render(pz.Name) + p.label.Render(pz.Title)
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}

	return nil
}

func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}
