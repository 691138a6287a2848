package config

import "github.com/dbalogun/pulse/internal/apperr"

var (
	errReadingInput = &apperr.Error{
		Message: "an error occurred while reading input, please try again",
	}

	errExpectedInteger = &apperr.Error{
		Message: "expected an integer greater than zero",
	}

	errInitFailed = &apperr.Error{
		Message: "unable to initialise pulse settings from the configuration file",
	}

	errInvalidDuration = &apperr.Error{
		Message: "invalid duration: use values like 45, 90s, or 1m30s",
	}
)
