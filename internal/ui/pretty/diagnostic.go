package pretty

import (
	"fmt"
	"strings"

	"github.com/udonlang/udon/pkg/analysis"
	"github.com/udonlang/udon/pkg/runner"
)

// FormatDiagnostic renders one document error with its file and byte span.
func (s *Styles) FormatDiagnostic(path string, d analysis.Diagnostic) string {
	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(path),
		s.Location.Render(fmt.Sprintf("%d-%d", d.Span.Start, d.Span.End)),
	)
	return fmt.Sprintf("  %s  %s  %s (%s)",
		location,
		s.Error.Render("error"),
		d.Code.Message(),
		s.Code.Render(d.Code.String()),
	)
}

// FormatRunSummary renders the aggregate line for a multi-file run.
func (s *Styles) FormatRunSummary(result *runner.Result) string {
	var b strings.Builder
	st := result.Stats

	b.WriteString(s.SummaryTitle.Render("Parsed") + " ")
	b.WriteString(s.SummaryValue.Render(fmt.Sprintf(
		"%d/%d files, %d elements, %d events, %d bytes",
		st.FilesParsed, st.FilesDiscovered, st.ElementsTotal, st.EventsTotal, st.BytesTotal,
	)))

	switch {
	case st.FilesErrored > 0:
		b.WriteString("  " + s.Failure.Render(fmt.Sprintf("%d file(s) failed", st.FilesErrored)))
	case st.DiagnosticsTotal > 0:
		b.WriteString("  " + s.Failure.Render(fmt.Sprintf(
			"%d error(s) in %d file(s)", st.DiagnosticsTotal, st.FilesWithDiagnostics)))
	default:
		b.WriteString("  " + s.Success.Render("ok"))
	}
	return b.String()
}

// FormatFileSummary renders the per-file stats line for the stats command.
func (s *Styles) FormatFileSummary(path string, sum *analysis.Summary) string {
	line := fmt.Sprintf("%s  %s",
		s.FilePath.Render(path),
		s.SummaryValue.Render(fmt.Sprintf(
			"%d events, %d elements, %d attributes, depth %d",
			sum.Events, sum.Elements, sum.Attributes, sum.MaxDepth,
		)),
	)
	if n := len(sum.Diagnostics); n > 0 {
		line += "  " + s.Failure.Render(fmt.Sprintf("%d error(s)", n))
	}
	return line
}
