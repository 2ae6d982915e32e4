package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined to
	// submit.
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoOptions is returned by select prompts given nothing to choose.
	ErrNoOptions = errors.New("prompt: no options to select")
)
