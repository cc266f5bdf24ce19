package idgen

import "github.com/google/uuid"

// NewFunc produces task identifiers. Tests replace it to get stable IDs.
var NewFunc = uuid.NewString

// New returns a new task identifier.
func New() string { return NewFunc() }
