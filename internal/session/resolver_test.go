package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// spySource records whether a lookup was ever attempted.
type spySource struct {
	entries KeyedLog
	calls   int
}

func (s *spySource) Lookup(ordinal int) (string, bool) {
	s.calls++
	return s.entries.Lookup(ordinal)
}

func TestResolvePrevious_OutOfRangeSkipsLookup(t *testing.T) {
	for _, ordinal := range []int{-1, 0, 1} {
		source := &spySource{entries: KeyedLog{1: "x = 1"}}
		resolver := NewResolver(source, nil)

		_, err := resolver.ResolvePrevious(ordinal)

		assert.ErrorIs(t, err, ErrNoPriorEntry, "ordinal %d", ordinal)
		assert.Zero(t, source.calls, "ordinal %d must not trigger a history lookup", ordinal)
	}
}

func TestResolvePrevious_MissingEntry(t *testing.T) {
	resolver := NewResolver(KeyedLog{}, nil)

	_, err := resolver.ResolvePrevious(3)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestResolvePrevious_WhitespaceEntry(t *testing.T) {
	resolver := NewResolver(KeyedLog{4: "  \n\t  "}, nil)

	_, err := resolver.ResolvePrevious(5)
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestResolvePrevious_ReturnsTrimmedPreviousEntry(t *testing.T) {
	resolver := NewResolver(KeyedLog{4: "\nx = 1\n"}, nil)

	text, err := resolver.ResolvePrevious(5)
	assert.NoError(t, err)
	assert.Equal(t, "x = 1", text)
}

func TestResolvePrevious_UsesFallbackChain(t *testing.T) {
	chain := FallbackSource{
		IndexedLog{"a", "b"},
		KeyedLog{3: "from keyed"},
	}
	resolver := NewResolver(chain, nil)

	text, err := resolver.ResolvePrevious(3)
	assert.NoError(t, err)
	assert.Equal(t, "b", text)

	text, err = resolver.ResolvePrevious(4)
	assert.NoError(t, err)
	assert.Equal(t, "from keyed", text)
}
