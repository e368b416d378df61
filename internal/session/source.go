// Package session locates "the code the learner just ran" inside a stateful,
// append-only execution history owned by the host interactive session. The
// history is 1-indexed and monotonically increasing; this package only ever
// reads a prefix of it.
package session

// HistorySource is the narrow, read-only contract a host session exposes
// over its execution history. A source supports nothing beyond simple
// indexed or keyed lookup by execution ordinal.
type HistorySource interface {
	// Lookup returns the source text recorded at the given execution
	// ordinal. The second return value is false when the ordinal has no
	// entry; a miss is never an error.
	Lookup(ordinal int) (string, bool)
}

// IndexedLog is a dense, ordinal-indexed view of the execution history.
// Element i of the backing slice holds the entry for ordinal i+1, since
// execution ordinals start at 1.
type IndexedLog []string

func (l IndexedLog) Lookup(ordinal int) (string, bool) {
	if ordinal < 1 || ordinal > len(l) {
		return "", false
	}
	return l[ordinal-1], true
}

// KeyedLog is a sparse, ordinal-keyed view of the execution history.
type KeyedLog map[int]string

func (l KeyedLog) Lookup(ordinal int) (string, bool) {
	text, ok := l[ordinal]
	return text, ok
}

// FallbackSource chains history sources in priority order. Lookups consult
// the richer source first and fall through on a miss. The chain is resolved
// once at session start rather than re-branched at every lookup.
type FallbackSource []HistorySource

func (s FallbackSource) Lookup(ordinal int) (string, bool) {
	for _, source := range s {
		if source == nil {
			continue
		}
		if text, ok := source.Lookup(ordinal); ok {
			return text, ok
		}
	}
	return "", false
}
