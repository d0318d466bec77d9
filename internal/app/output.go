package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/ui/output"
	"go.trai.ch/markcheck/internal/ui/style"
)

// outcome is the printable result of checking one file.
type outcome struct {
	name    string
	kind    domain.Kind
	verdict domain.Verdict
	cached  bool
	err     error
}

const detailIndent = "    "

// printOutcomes writes one status line per outcome, followed by indented diagnostics.
func printOutcomes(w io.Writer, outcomes []outcome) {
	out := output.New(w)
	green := termenv.RGBColor(string(style.Green))
	red := termenv.RGBColor(string(style.Red))
	slate := termenv.RGBColor(string(style.Slate))

	var b strings.Builder
	invalid, failed := 0, 0

	for _, o := range outcomes {
		switch {
		case o.err != nil:
			failed++
			b.WriteString(out.String(style.Cross+" "+o.name).Foreground(red).String())
			b.WriteString(out.String(" (error)").Foreground(slate).String() + "\n")
			writeDetails(&b, o.err.Error())
		case o.verdict.Valid:
			b.WriteString(out.String(style.Check+" "+o.name).Foreground(green).String())
			if o.cached {
				b.WriteString(out.String(" (cached)").Foreground(slate).String())
			}
			b.WriteString("\n")
		default:
			invalid++
			b.WriteString(out.String(style.Cross+" "+o.name).Foreground(red).String())
			if o.cached {
				b.WriteString(out.String(" (cached)").Foreground(slate).String())
			}
			b.WriteString("\n")
			writeDetails(&b, o.verdict.Failure(o.kind))
		}
	}

	summary := fmt.Sprintf("%d checked, %d invalid, %d failed", len(outcomes), invalid, failed)
	b.WriteString(out.String(summary).Foreground(slate).String() + "\n")

	_, _ = io.WriteString(w, b.String())
}

func writeDetails(b *strings.Builder, text string) {
	for line := range strings.SplitSeq(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(detailIndent + line + "\n")
	}
}
