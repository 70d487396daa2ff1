// Package display renders assignment results for humans. It only reads a
// hungarian.Result and has no influence on the solve.
//
//   - Grid: the plain layout (matched weights on an n×n grid, then potentials).
//   - Table: the same grid with row/column potentials in the margins, styled
//     with lipgloss (colors degrade to plain text without a terminal).
//   - Summary: one line with total and work counters.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/hungarian/hungarian"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_blankMark   = "·"
)

var (
	headStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	matchedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B"))
	blankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	dualStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#AAAAAA"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// format renders one value; decimal.Decimal goes through its String method.
func format[T any](v T) string {
	return fmt.Sprint(v)
}

// matchedCells returns the rendered weight per row and the widest rendering.
func matchedCells[T any](r *hungarian.Result[T]) ([]string, int) {
	cells := make([]string, len(r.Weights))
	width := 0
	for i, w := range r.Weights {
		cells[i] = format(w)
		width = max(width, len(cells[i]))
	}

	return cells, width
}

// Grid renders r as:
//
//	Matching:
//	[3,  ]
//	[ , 4]
//
//	Row Potentials: [3 4]
//	Column Potentials: [0 0]
//
// Matched cells hold the weight right-justified to the widest weight; other
// cells are blanks of that width. A nil result renders as "".
func Grid[T any](r *hungarian.Result[T]) string {
	if r == nil {
		return ""
	}
	var (
		sb           strings.Builder
		cells, width = matchedCells(r)
		n            = r.N()
		blank        = strings.Repeat(" ", width)
		i, j         int
	)
	sb.WriteString("Matching:\n")
	for i = 0; i < n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			if r.Match[i] == j {
				sb.WriteString(fmt.Sprintf("%*s", width, cells[i]))
			} else {
				sb.WriteString(blank)
			}
		}
		sb.WriteString(_fmtRowClose)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\nRow Potentials: %v\nColumn Potentials: %v", r.RowPotentials, r.ColPotentials)

	return sb.String()
}

// Table renders the matching as a boxed grid: one line per row ending with
// u[i], a last line with v[j], and labels on both axes (nil labels fall back
// to indices).
func Table[T any](r *hungarian.Result[T], rowLabels, colLabels []string) string {
	if r == nil {
		return ""
	}
	n := r.N()
	rowLabels = fallbackLabels(rowLabels, n)
	colLabels = fallbackLabels(colLabels, n)

	cells, width := matchedCells(r)
	for _, l := range colLabels {
		width = max(width, len(l))
	}
	for _, u := range r.RowPotentials {
		width = max(width, len(format(u)))
	}
	for _, v := range r.ColPotentials {
		width = max(width, len(format(v)))
	}
	labelWidth := len("v")
	for _, l := range rowLabels {
		labelWidth = max(labelWidth, len(l))
	}

	cell := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)
	label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Left)

	lines := make([]string, 0, n+2)
	head := []string{label.Render("")}
	for _, l := range colLabels {
		head = append(head, headStyle.Inherit(cell).Render(l))
	}
	head = append(head, headStyle.Inherit(cell).Render("u"))
	lines = append(lines, strings.Join(head, " "))

	var i, j int
	for i = 0; i < n; i++ {
		row := []string{headStyle.Inherit(label).Render(rowLabels[i])}
		for j = 0; j < n; j++ {
			if r.Match[i] == j {
				row = append(row, matchedStyle.Inherit(cell).Render(cells[i]))
			} else {
				row = append(row, blankStyle.Inherit(cell).Render(_blankMark))
			}
		}
		row = append(row, dualStyle.Inherit(cell).Render(format(r.RowPotentials[i])))
		lines = append(lines, strings.Join(row, " "))
	}

	foot := []string{headStyle.Inherit(label).Render("v")}
	for _, v := range r.ColPotentials {
		foot = append(foot, dualStyle.Inherit(cell).Render(format(v)))
	}
	lines = append(lines, strings.Join(foot, " "))

	title := headStyle.Render(fmt.Sprintf("Assignment · total %s", format(r.Total)))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...))
}

// Summary returns "n=<n> total=<total> phases=<p> updates=<u> growths=<g>".
func Summary[T any](r *hungarian.Result[T]) string {
	if r == nil {
		return ""
	}

	return fmt.Sprintf("n=%d total=%s phases=%d updates=%d growths=%d",
		r.N(), format(r.Total), r.Stats.Phases, r.Stats.PotentialUpdates, r.Stats.TreeGrowths)
}

func fallbackLabels(ls []string, n int) []string {
	if len(ls) == n {
		return ls
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprint(i)
	}

	return out
}
