package prompt

import "errors"

var (
	// ErrAborted signals the user interrupted a prompt (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when a form is still invalid after the
	// configured number of rounds.
	ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
)
