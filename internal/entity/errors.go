package entity

import "errors"

// Domain errors
var (
	// Credential errors
	ErrCredentialMissing = errors.New("api credential not configured")

	// Idea errors
	ErrIdeaNotFound = errors.New("idea not found")
	ErrMissingField = errors.New("missing required field")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrUnknownFormat    = errors.New("unsupported export format")

	// Generation errors
	ErrEmptyCandidates = errors.New("no candidates in generative response")

	// Chat errors
	ErrBlankMessage   = errors.New("message must not be blank")
	ErrTurnInProgress = errors.New("a turn is already in progress for this conversation")
)
