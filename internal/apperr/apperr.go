// Package apperr defines application errors with user-facing messages.
package apperr

// Error is an application error. Message is shown to the user while Err
// carries the underlying cause, if any.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of e with the underlying error set.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
	}
}
