package lidprep

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMissingLanguage indicates no input path was given for a language.
	ErrMissingLanguage = errors.New("lidprep: missing language input")

	// ErrInvalidWindow indicates the loader length window keeps nothing.
	ErrInvalidWindow = errors.New("lidprep: invalid length window")
)
