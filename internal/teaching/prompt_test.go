package teaching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nbtutor/nbtutor/internal/notebook"
)

func TestRender_ExplanationSections(t *testing.T) {
	rendered := Render(Compose(PromptExplanation, "x = 1", ContextWindow{}))

	assert.Contains(t, rendered, "x = 1")
	assert.Contains(t, rendered, "**What it does**")
	assert.Contains(t, rendered, "**Key concepts**")
	assert.Contains(t, rendered, "**Why it matters**")
	assert.Contains(t, rendered, "**Connection**")
	assert.Contains(t, rendered, "Format your response in markdown.")
}

func TestRender_ExperimentsFields(t *testing.T) {
	rendered := Render(Compose(PromptExperiments, "x = 1", ContextWindow{}))

	assert.Contains(t, rendered, "x = 1")
	assert.Contains(t, rendered, "3-5 specific experiments")
	assert.Contains(t, rendered, "**What to do:**")
	assert.Contains(t, rendered, "**Prediction:**")
	assert.Contains(t, rendered, "**Why it matters:**")
	assert.Contains(t, rendered, "**Code snippet:**")
	assert.Contains(t, rendered, "progressively more challenging")
}

func TestRender_EmbedsContextWithPositionMarkers(t *testing.T) {
	window := BuildContext([]notebook.Cell{
		{Index: 0, Kind: notebook.CellCode, Source: "a = 0"},
		{Index: 2, Kind: notebook.CellCode, Source: "b = 1"},
	})

	for _, kind := range []PromptKind{PromptExplanation, PromptExperiments} {
		rendered := Render(Compose(kind, "c = 2", window))

		assert.Contains(t, rendered, "Previous cells executed:")
		assert.Contains(t, rendered, "Cell 0: a = 0")
		assert.Contains(t, rendered, "Cell 2: b = 1")
		assert.Less(t,
			strings.Index(rendered, "Cell 0:"),
			strings.Index(rendered, "Cell 2:"),
			"snippets must keep document order",
		)
	}
}

func TestRender_TruncatedSnippetCarriesMarker(t *testing.T) {
	long := strings.Repeat("y", SnippetPrefixLength+20)
	window := BuildContext([]notebook.Cell{
		{Index: 0, Kind: notebook.CellCode, Source: long},
	})

	rendered := Render(Compose(PromptExplanation, "x = 1", window))

	assert.Contains(t, rendered, long[:SnippetPrefixLength]+TruncationMarker)
	assert.NotContains(t, rendered, long)
}

func TestRender_NoContextSectionForEmptyWindow(t *testing.T) {
	rendered := Render(Compose(PromptExplanation, "x = 1", ContextWindow{}))

	assert.NotContains(t, rendered, "Previous cells executed:")
}

func TestRender_Idempotent(t *testing.T) {
	window := BuildContext([]notebook.Cell{
		{Index: 0, Kind: notebook.CellCode, Source: "a = 0"},
	})

	for _, kind := range []PromptKind{PromptExplanation, PromptExperiments} {
		first := Render(Compose(kind, "x = 1", window))
		second := Render(Compose(kind, "x = 1", window))
		assert.Equal(t, first, second)
	}
}

func TestRender_MalformedCodePassedThrough(t *testing.T) {
	subject := "def broken(:\n  ???"
	rendered := Render(Compose(PromptExplanation, subject, ContextWindow{}))

	assert.Contains(t, rendered, subject)
}
