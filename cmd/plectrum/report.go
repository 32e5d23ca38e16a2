package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/syssam/plectrum"
)

// reporter prints check results, in colour when writing to a terminal.
type reporter struct {
	w                      io.Writer
	ok, fail, name, detail lipgloss.Style
}

func newReporter(w io.Writer) *reporter {
	r := &reporter{
		w:      w,
		ok:     lipgloss.NewStyle(),
		fail:   lipgloss.NewStyle(),
		name:   lipgloss.NewStyle(),
		detail: lipgloss.NewStyle(),
	}
	if f, isFile := w.(*os.File); isFile && term.IsTerminal(int(f.Fd())) {
		r.ok = r.ok.Foreground(lipgloss.Color("#90EE90")).Bold(true)
		r.fail = r.fail.Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
		r.name = r.name.Bold(true)
		r.detail = r.detail.Foreground(lipgloss.Color("#666666"))
	}
	return r
}

// report prints one line per result, followed by the offending labels of
// the failed ones, and returns the number of failures.
func (r *reporter) report(results []result) int {
	width := 0
	for _, res := range results {
		width = max(width, len(res.Enum))
	}
	failed := 0
	for _, res := range results {
		name := r.name.Render(res.Enum + strings.Repeat(" ", width-len(res.Enum)))
		if res.Err == nil {
			fmt.Fprintf(r.w, "%s %s %s\n", r.ok.Render("ok  "), name, r.detail.Render(fmt.Sprintf("%s (%d rows)", res.Table, res.Rows)))
			continue
		}
		failed++
		fmt.Fprintf(r.w, "%s %s %s\n", r.fail.Render("FAIL"), name, r.detail.Render(res.Table))
		for _, line := range explain(res.Err) {
			fmt.Fprintf(r.w, "     %s\n", line)
		}
	}
	return failed
}

// explain describes a check failure.
func explain(err error) []string {
	var (
		notDefined *plectrum.NotDefinedInCodeError
		missing    *plectrum.MissingFromDataError
	)
	switch {
	case errors.As(err, &notDefined):
		return []string{"in table, not defined in code: " + quote(notDefined.Labels)}
	case errors.As(err, &missing):
		return []string{"defined in code, missing from table: " + quote(missing.Labels)}
	default:
		return []string{err.Error()}
	}
}

func quote(labels []string) string {
	q := make([]string, len(labels))
	for i, l := range labels {
		q[i] = fmt.Sprintf("%q", l)
	}
	return strings.Join(q, ", ")
}
