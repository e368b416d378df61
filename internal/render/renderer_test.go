package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nbtutor/nbtutor/internal/session"
	"github.com/nbtutor/nbtutor/internal/teaching"
)

func TestRenderReport_Info(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderReport(&teaching.Report{
		Status:  teaching.StatusInfo,
		Message: "Cell 1 is a markdown cell, not code.",
	})

	output := buf.String()
	assert.Contains(t, output, "Cell 1 is a markdown cell, not code.")
	assert.NotContains(t, output, "Concept Explanation")
}

func TestRenderReport_Warning(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderReport(&teaching.Report{
		Status:  teaching.StatusWarning,
		Message: "Previous cell appears to be empty.",
	})

	assert.Contains(t, buf.String(), "Previous cell appears to be empty.")
}

func TestRenderReport_Full(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderReport(&teaching.Report{
		Status:      teaching.StatusOK,
		CellIndex:   2,
		Subject:     "c = a + b",
		Explanation: "This adds two numbers.",
		Experiments: "Try changing b to a string.",
		Elapsed:     1200 * time.Millisecond,
	})

	output := buf.String()
	assert.Contains(t, output, "cell 2")
	assert.Contains(t, output, "c = a + b")
	assert.Contains(t, output, "Concept Explanation")
	assert.Contains(t, output, "This adds two numbers.")
	assert.Contains(t, output, "Hands-On Experiments")
	assert.Contains(t, output, "Try changing b to a string.")
	assert.Contains(t, output, "generated in 1.2s")
}

func TestRenderReport_SnippetHeader(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderReport(&teaching.Report{
		Status:      teaching.StatusOK,
		Snippet:     true,
		Subject:     "x = 1",
		Explanation: "Just an assignment.",
	})

	output := buf.String()
	assert.Contains(t, output, "Learning Companion — snippet")
	assert.NotContains(t, output, "cell 0")
}

func TestRenderReport_SkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderReport(&teaching.Report{
		Status:      teaching.StatusOK,
		Subject:     "x = 1",
		Explanation: "Just an assignment.",
	})

	output := buf.String()
	assert.Contains(t, output, "Concept Explanation")
	assert.NotContains(t, output, "Hands-On Experiments")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderError(errors.New("generation backend unavailable"))

	assert.Contains(t, buf.String(), "generation backend unavailable")
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderHistory([]session.ExecutionEntry{
		{ID: 1, CreatedAt: time.Now().Add(-time.Hour), Source: "x = 1\ny = 2"},
		{ID: 2, CreatedAt: time.Now(), Source: "print(x)"},
	})

	output := buf.String()
	assert.Contains(t, output, "[1]")
	assert.Contains(t, output, "x = 1")
	assert.NotContains(t, output, "y = 2", "only the first line of an entry is listed")
	assert.Contains(t, output, "[2]")
	assert.Contains(t, output, "print(x)")
}

func TestRenderHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderer := New(&buf, func() int { return 80 })

	renderer.RenderHistory(nil)

	assert.Contains(t, buf.String(), "no executions recorded yet")
}

func TestWidth_FallsBackToDefault(t *testing.T) {
	renderer := New(&bytes.Buffer{}, nil)
	assert.Equal(t, defaultWidth, renderer.width())

	renderer = New(&bytes.Buffer{}, func() int { return -1 })
	assert.Equal(t, defaultWidth, renderer.width())

	renderer = New(&bytes.Buffer{}, func() int { return 500 })
	assert.Equal(t, maxWidth, renderer.width())
}

func TestRenderHelp(t *testing.T) {
	var buf bytes.Buffer

	RenderHelp(&buf)

	output := buf.String()
	assert.Contains(t, output, "Learning Companion")
	assert.Contains(t, output, "nbtutor -live")
	assert.Contains(t, output, "nbtutor -record")
	assert.Contains(t, output, "nbtutor -code")
}
