package generator

import "errors"

// Errors returned by the generation boundary.
var (
	// ErrMissingAPIKey is returned when the provider credential is not
	// configured. It blocks the request before any network call.
	ErrMissingAPIKey = errors.New("generation API key is not configured")

	// ErrUnknownProvider is returned for a provider name the factory
	// does not recognize.
	ErrUnknownProvider = errors.New("unknown generation provider")

	// ErrGenerationFailed wraps transport, auth, and quota failures
	// from the backend.
	ErrGenerationFailed = errors.New("failed to generate flashcards")

	// ErrInvalidResponse is returned when the backend replies with no
	// usable content at all (no choices, empty message). A payload
	// without a recognizable card list is not an error; ParseCards
	// yields an empty deck for that.
	ErrInvalidResponse = errors.New("invalid response from language model")
)
