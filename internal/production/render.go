// Package production provides production integrations: report output,
// baseline persistence, violation publishing.
// Implements core interfaces using stdlib where possible.
package production

import (
	"bytes"
	"fmt"
	"time"

	"github.com/comalice/immutalint/internal/primitives"
)

// TextRenderer renders reports in the conventional compiler-style line form.
type TextRenderer struct {
	// Snippets includes the offending source line under each finding.
	Snippets bool
}

// RenderViolation renders a single violation as one line.
func (r *TextRenderer) RenderViolation(v primitives.Violation) string {
	return v.String()
}

// Render renders every violation plus a summary line.
func (r *TextRenderer) Render(report primitives.Report) string {
	var buf bytes.Buffer
	for _, v := range report.Violations {
		buf.WriteString(r.RenderViolation(v))
		buf.WriteByte('\n')
		if r.Snippets && v.Snippet != "" {
			fmt.Fprintf(&buf, "\t%s\n", v.Snippet)
		}
	}
	buf.WriteString(r.Summary(report))
	buf.WriteByte('\n')
	return buf.String()
}

// Summary renders the one-line totals: files checked and counts per severity.
func (r *TextRenderer) Summary(report primitives.Report) string {
	counts := report.Counts()
	return fmt.Sprintf("%d files, %d violations (%d errors, %d warnings, %d info) in %v",
		report.Files,
		len(report.Violations),
		counts[primitives.Error],
		counts[primitives.Warning],
		counts[primitives.Info],
		report.Duration.Round(roundTo(report)),
	)
}

// roundTo picks a display resolution so short runs do not render as 0s.
func roundTo(report primitives.Report) time.Duration {
	if report.Duration < time.Millisecond {
		return time.Microsecond
	}
	return time.Millisecond
}
