package executor

// Kind identifies a scheduling event.
type Kind int

const (
	// RootResumed follows every resume of the root computation.
	RootResumed Kind = iota
	// PassStarted precedes a drain pass.
	PassStarted
	// TaskResumed follows every resume of a background task.
	TaskResumed
	// PassCompleted follows a drain pass.
	PassCompleted
	// TaskAbandoned is emitted for each task dropped when the root completes.
	TaskAbandoned
)

func (k Kind) String() string {
	switch k {
	case RootResumed:
		return "rootResumed"
	case PassStarted:
		return "passStarted"
	case TaskResumed:
		return "taskResumed"
	case PassCompleted:
		return "passCompleted"
	case TaskAbandoned:
		return "taskAbandoned"
	}
	return "unknown"
}

// Event describes one step of a drive call.
//
// For RootResumed, Pass is the number of drain passes completed so far; for
// every other kind it is the 1-based index of the pass in progress.  Queued
// is the queue length observed by PassStarted and PassCompleted.
type Event struct {
	Kind    Kind
	Pass    int
	TaskID  string
	Name    string
	Pending bool
	Queued  int
}

// Listener is invoked synchronously for every Event, on the driving
// goroutine.  It must not call Drive.
type Listener func(event Event)
