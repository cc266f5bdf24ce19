package executor

import "errors"

var (
	// ErrAlreadyDriving is the panic value raised when Drive is entered while
	// another Drive call on the same executor is still running.
	ErrAlreadyDriving = errors.New("executor: already driving")
	// ErrNilTask is the panic value raised when Submit receives a nil task.
	ErrNilTask = errors.New("executor: nil task")
)
