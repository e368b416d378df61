package session

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNoPriorEntry indicates the current execution ordinal has no
	// predecessor: the companion was invoked as the first cell of the
	// session, or the ordinal is unknown.
	ErrNoPriorEntry = errors.New("no prior execution entry")

	// ErrEmptyEntry indicates the previous execution entry is missing from
	// the history or contains only whitespace.
	ErrEmptyEntry = errors.New("previous execution entry is empty")
)

// Resolver retrieves the text of the execution entry immediately preceding
// the current one. The only signal available for "which code is this about"
// is the session's own execution counter, so resolution assumes an accurate,
// monotonically increasing ordinal over a never-rewritten history.
//
// Known limitation: "current ordinal minus one" identifies the previous
// execution in time, not necessarily the pedagogically relevant cell. If the
// learner re-runs an earlier cell out of order, or runs unrelated cells
// between their code and the companion invocation, the resolver will pick up
// whatever ran last.
type Resolver struct {
	source HistorySource
	logger *zap.Logger
}

// NewResolver creates a Resolver over the given history source. The source
// is typically a FallbackSource chaining the host session's dense indexed
// log ahead of its sparse keyed one.
func NewResolver(source HistorySource, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		source: source,
		logger: logger,
	}
}

// ResolvePrevious returns the trimmed source text of execution ordinal
// currentOrdinal-1.
//
// A currentOrdinal of 1 or below returns ErrNoPriorEntry without consulting
// the history at all. A lookup miss or an all-whitespace entry returns
// ErrEmptyEntry; neither is fatal.
func (r *Resolver) ResolvePrevious(currentOrdinal int) (string, error) {
	if currentOrdinal <= 1 {
		return "", ErrNoPriorEntry
	}

	previous := currentOrdinal - 1
	text, ok := r.source.Lookup(previous)
	if !ok {
		r.logger.Debug(
			"previous execution entry not found in history",
			zap.Int("ordinal", previous),
		)
		return "", ErrEmptyEntry
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyEntry
	}

	return trimmed, nil
}
