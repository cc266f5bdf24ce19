package task

import "errors"

var (
	// ErrResumedAfterCompletion is the panic value raised when a computation
	// is resumed after it already reported Ready.
	ErrResumedAfterCompletion = errors.New("task: resumed after completion")
)
