package teaching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nbtutor/nbtutor/internal/llm"
	"github.com/nbtutor/nbtutor/internal/notebook"
	"github.com/nbtutor/nbtutor/internal/session"
)

// ErrIndexOutOfRange indicates the requested cell index does not exist in
// the document.
var ErrIndexOutOfRange = errors.New("cell index out of range")

// Status classifies a Report.
type Status string

const (
	// StatusOK means both artifacts were generated.
	StatusOK Status = "ok"

	// StatusInfo means the target was valid but not analyzable, e.g. a
	// markdown cell. No generation request was made.
	StatusInfo Status = "info"

	// StatusWarning means no analyzable code was found, e.g. an empty cell
	// or no prior live execution. No generation request was made.
	StatusWarning Status = "warning"
)

// Report is the combined result of one analysis.
type Report struct {
	Status  Status
	Message string

	// CellIndex is the analyzed cell's document index, or the previous
	// execution ordinal in live mode. Meaningless when Snippet is set.
	CellIndex int

	// Snippet reports that the analysis targeted ad-hoc code supplied
	// directly rather than a numbered cell.
	Snippet     bool
	Subject     string
	Explanation string
	Experiments string
	Elapsed     time.Duration
}

// Mode selects which artifacts an analysis generates.
type Mode string

const (
	// ModeTeach generates both the explanation and the experiments.
	ModeTeach Mode = "teach"

	// ModeExplain generates only the concept explanation.
	ModeExplain Mode = "explain"

	// ModeExperiments generates only the experiment suggestions.
	ModeExperiments Mode = "experiments"
)

// OrdinalSource reports the execution ordinal the host session assigns to
// the cell invoking the companion.
type OrdinalSource interface {
	CurrentOrdinal() (int, error)
}

// Tutor orchestrates parsing, session-state resolution, prompt assembly and
// generation into the public use cases. The generation client is injected;
// there is no process-global state.
type Tutor struct {
	client   llm.Client
	resolver *session.Resolver
	ordinals OrdinalSource
	mode     Mode
	logger   *zap.Logger
}

// NewTutor creates a Tutor. resolver and ordinals are only needed for live
// analysis and may be nil when the Tutor is used solely against stored
// documents.
func NewTutor(client llm.Client, resolver *session.Resolver, ordinals OrdinalSource, logger *zap.Logger) *Tutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tutor{
		client:   client,
		resolver: resolver,
		ordinals: ordinals,
		mode:     ModeTeach,
		logger:   logger,
	}
}

// SetMode restricts which artifacts are generated. The default is ModeTeach.
func (t *Tutor) SetMode(mode Mode) {
	t.mode = mode
}

// AnalyzeStoredCell analyzes one cell of a stored notebook document,
// building context from the cells preceding it.
func (t *Tutor) AnalyzeStoredCell(ctx context.Context, path string, cellIndex int) (*Report, error) {
	cells, err := notebook.Parse(path)
	if err != nil {
		return nil, err
	}

	if cellIndex < 0 || cellIndex >= len(cells) {
		return nil, fmt.Errorf(
			"%w: cell %d requested, notebook has %d cells",
			ErrIndexOutOfRange, cellIndex, len(cells),
		)
	}

	target := cells[cellIndex]
	if target.Kind != notebook.CellCode {
		return &Report{
			Status:    StatusInfo,
			Message:   fmt.Sprintf("Cell %d is a %s cell, not code.", cellIndex, target.Kind),
			CellIndex: cellIndex,
		}, nil
	}

	subject := strings.TrimSpace(target.Source)
	if subject == "" {
		return &Report{
			Status:    StatusWarning,
			Message:   fmt.Sprintf("Cell %d appears to be empty.", cellIndex),
			CellIndex: cellIndex,
		}, nil
	}

	window := BuildContext(cells[:cellIndex])

	t.logger.Info(
		"analyzing stored cell",
		zap.String("notebook", path),
		zap.Int("cellIndex", cellIndex),
		zap.Int("contextSnippets", len(window.Snippets)),
	)

	return t.generate(ctx, cellIndex, subject, window)
}

// AnalyzeSnippet analyzes an ad-hoc code snippet supplied directly, without
// a notebook document or a recorded session. No surrounding cells exist, so
// both prompts carry an empty context window.
func (t *Tutor) AnalyzeSnippet(ctx context.Context, code string) (*Report, error) {
	subject := strings.TrimSpace(code)
	if subject == "" {
		return &Report{
			Status:  StatusWarning,
			Message: "No code provided to analyze.",
		}, nil
	}

	t.logger.Info("analyzing snippet", zap.Int("length", len(subject)))

	report, err := t.generate(ctx, 0, subject, ContextWindow{})
	if err != nil {
		return nil, err
	}
	report.Snippet = true
	return report, nil
}

// AnalyzeLiveCell analyzes whatever code was just run in the live session:
// the execution entry immediately preceding the one invoking the companion.
// Live mode never looks further back than one cell, so both prompts carry an
// empty context window.
func (t *Tutor) AnalyzeLiveCell(ctx context.Context) (*Report, error) {
	ordinal, err := t.ordinals.CurrentOrdinal()
	if err != nil {
		return nil, fmt.Errorf("failed to read session execution counter: %w", err)
	}

	subject, err := t.resolver.ResolvePrevious(ordinal)
	if errors.Is(err, session.ErrNoPriorEntry) {
		return &Report{
			Status:  StatusWarning,
			Message: "Need at least one previous cell to explain.",
		}, nil
	}
	if errors.Is(err, session.ErrEmptyEntry) {
		return &Report{
			Status:  StatusWarning,
			Message: "Previous cell appears to be empty.",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	t.logger.Info(
		"analyzing live cell",
		zap.Int("currentOrdinal", ordinal),
	)

	return t.generate(ctx, ordinal-1, subject, ContextWindow{})
}

// generate issues the prompt kinds the mode calls for, sequentially, and
// combines the results.
func (t *Tutor) generate(ctx context.Context, position int, subject string, window ContextWindow) (*Report, error) {
	start := time.Now()

	var explanation, experiments string
	var err error

	if t.mode != ModeExperiments {
		explanation, err = t.client.Generate(ctx, Render(Compose(PromptExplanation, subject, window)))
		if err != nil {
			return nil, fmt.Errorf("explanation request failed: %w", err)
		}
	}

	if t.mode != ModeExplain {
		experiments, err = t.client.Generate(ctx, Render(Compose(PromptExperiments, subject, window)))
		if err != nil {
			return nil, fmt.Errorf("experiments request failed: %w", err)
		}
	}

	return &Report{
		Status:      StatusOK,
		CellIndex:   position,
		Subject:     subject,
		Explanation: explanation,
		Experiments: experiments,
		Elapsed:     time.Since(start),
	}, nil
}
