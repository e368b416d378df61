// Package llm abstracts the remote text-generation backend behind a narrow
// single-turn request/response contract. The rest of the system depends only
// on the Client interface, so the backend is swappable.
package llm

import "context"

// Client issues a single-turn completion request against a generation
// backend. No streaming, no retry; a caller wanting retry or timeout wraps
// Generate with its own policy.
//
// This interface allows for mocking in tests.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
