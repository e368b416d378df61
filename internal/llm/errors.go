package llm

import "errors"

// Failure taxonomy for generation requests. Callers match with errors.Is;
// anything that does not map onto one of these is returned wrapped but
// unclassified.
var (
	// ErrAuth indicates a missing or rejected credential.
	ErrAuth = errors.New("generation backend rejected credentials")

	// ErrRateLimited indicates the backend throttled the request.
	ErrRateLimited = errors.New("generation backend rate limited the request")

	// ErrUnavailable indicates the backend is unreachable or failing.
	ErrUnavailable = errors.New("generation backend unavailable")

	// ErrInvalidRequest indicates a malformed request, including an empty
	// prompt rejected before any network call.
	ErrInvalidRequest = errors.New("invalid generation request")
)
