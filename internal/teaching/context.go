// Package teaching turns a code fragment plus trailing session history into
// bounded, well-formed requests to a generation backend, and orchestrates
// the public analyses: explain a stored notebook cell, explain whatever
// code was just run live, or explain a snippet supplied directly.
package teaching

import (
	"github.com/samber/lo"

	"github.com/nbtutor/nbtutor/internal/notebook"
)

const (
	// MaxContextSnippets bounds how many preceding code cells a context
	// window retains.
	MaxContextSnippets = 3

	// SnippetPrefixLength is the number of leading characters kept from
	// each context snippet.
	SnippetPrefixLength = 100

	// TruncationMarker is appended to a snippet whose source exceeded
	// SnippetPrefixLength.
	TruncationMarker = "..."
)

// Snippet is one preceding code cell retained in a context window.
type Snippet struct {
	// Position is the snippet's cell index within the document.
	Position int

	// Text is the snippet source, cut to its first SnippetPrefixLength
	// characters. It equals the source verbatim when no cut was needed.
	Text string

	// Truncated reports whether Text was cut short.
	Truncated bool
}

// ContextWindow is the bounded slice of preceding code cells supplied to the
// generation backend for continuity. Windows are built fresh per request and
// never persisted.
type ContextWindow struct {
	Snippets []Snippet
}

// Empty reports whether the window contains no snippets.
func (w ContextWindow) Empty() bool {
	return len(w.Snippets) == 0
}

// BuildContext builds a context window from the cells preceding the target.
// Only the last MaxContextSnippets code cells are retained, oldest first.
// Pure function: no side effects, empty window when no code cells precede
// the target.
func BuildContext(prior []notebook.Cell) ContextWindow {
	codeCells := lo.Filter(prior, func(cell notebook.Cell, _ int) bool {
		return cell.Kind == notebook.CellCode
	})

	if len(codeCells) > MaxContextSnippets {
		codeCells = codeCells[len(codeCells)-MaxContextSnippets:]
	}

	snippets := make([]Snippet, 0, len(codeCells))
	for _, cell := range codeCells {
		text := cell.Source
		truncated := false
		if runes := []rune(text); len(runes) > SnippetPrefixLength {
			text = string(runes[:SnippetPrefixLength])
			truncated = true
		}

		snippets = append(snippets, Snippet{
			Position:  cell.Index,
			Text:      text,
			Truncated: truncated,
		})
	}

	return ContextWindow{Snippets: snippets}
}
