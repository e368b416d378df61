package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nbtutor/nbtutor/internal/session"
	"github.com/nbtutor/nbtutor/internal/teaching"
)

const (
	defaultWidth = 80
	maxWidth     = 100
)

// Renderer writes companion output to a terminal. The core never depends on
// rendering succeeding; all methods are best-effort display glue.
type Renderer struct {
	writer    io.Writer
	termWidth func() int // Function to get current terminal width
}

// New creates a new Renderer instance.
func New(writer io.Writer, termWidth func() int) *Renderer {
	return &Renderer{
		writer:    writer,
		termWidth: termWidth,
	}
}

func (r *Renderer) width() int {
	width := defaultWidth
	if r.termWidth != nil {
		if w := r.termWidth(); w > 0 {
			width = w
		}
	}
	if width > maxWidth {
		width = maxWidth
	}
	return width
}

func (r *Renderer) rule() string {
	return RuleStyle.Render(strings.Repeat("─", r.width()))
}

// RenderReport displays a combined analysis report. Informational and
// warning reports render as a single styled line; full reports render the
// subject code followed by both generated artifacts.
func (r *Renderer) RenderReport(report *teaching.Report) {
	switch report.Status {
	case teaching.StatusInfo:
		fmt.Fprintf(r.writer, "%s %s\n", InfoStyle.Render(SymbolInfo), report.Message)
		return
	case teaching.StatusWarning:
		fmt.Fprintf(r.writer, "%s %s\n", WarningStyle.Render(SymbolWarning), report.Message)
		return
	}

	width := r.width()

	header := fmt.Sprintf("  Learning Companion — cell %d", report.CellIndex)
	if report.Snippet {
		header = "  Learning Companion — snippet"
	}

	fmt.Fprintln(r.writer, r.rule())
	fmt.Fprintln(r.writer, HeaderStyle.Render(header))
	fmt.Fprintln(r.writer, r.rule())

	fmt.Fprintln(r.writer)
	fmt.Fprintln(r.writer, SectionStyle.Render("Your Code"))
	fmt.Fprintln(r.writer)
	fmt.Fprintln(r.writer, report.Subject)

	if report.Explanation != "" {
		fmt.Fprintln(r.writer)
		fmt.Fprintln(r.writer, r.rule())
		fmt.Fprintln(r.writer, SectionStyle.Render("Concept Explanation"))
		fmt.Fprintln(r.writer)
		fmt.Fprintln(r.writer, wordwrap.String(report.Explanation, width))
	}

	if report.Experiments != "" {
		fmt.Fprintln(r.writer)
		fmt.Fprintln(r.writer, r.rule())
		fmt.Fprintln(r.writer, SectionStyle.Render("Hands-On Experiments"))
		fmt.Fprintln(r.writer)
		fmt.Fprintln(r.writer, wordwrap.String(report.Experiments, width))
	}

	fmt.Fprintln(r.writer)
	fmt.Fprintf(r.writer, "%s %s\n",
		DimStyle.Render(SymbolDone),
		DimStyle.Render(fmt.Sprintf("generated in %s", report.Elapsed.Round(100*time.Millisecond))),
	)
}

// RenderError displays a failure to the user.
func (r *Renderer) RenderError(err error) {
	fmt.Fprintf(r.writer, "%s %s\n", ErrorStyle.Render(SymbolError), err)
}

// RenderHistory lists recorded live-session executions, most recent last.
func (r *Renderer) RenderHistory(entries []session.ExecutionEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(r.writer, "%s no executions recorded yet\n", InfoStyle.Render(SymbolInfo))
		return
	}

	for _, entry := range entries {
		firstLine, _, _ := strings.Cut(strings.TrimSpace(entry.Source), "\n")
		fmt.Fprintf(r.writer, "%s  %s  %s\n",
			DimStyle.Render(fmt.Sprintf("[%d]", entry.Ordinal())),
			firstLine,
			DimStyle.Render(humanize.Time(entry.CreatedAt)),
		)
	}
}
