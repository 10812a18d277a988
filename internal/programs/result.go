package programs

import "errors"

// Action is the batch operation a Report describes.
type Action string

const (
	ActionOpen  Action = "open"
	ActionClose Action = "close"
	ActionKill  Action = "kill"
)

// Status is the outcome for one program or process.
type Status string

const (
	StatusStarted    Status = "started"
	StatusClosed     Status = "closed"
	StatusNotRunning Status = "not-running"
	StatusTimedOut   Status = "timed-out"
	StatusFailed     Status = "failed"
)

// Termination is the outcome of killing one matched process.
type Termination struct {
	PID    int32
	Status Status
	Err    error
}

// Result is the outcome for one configured program.
type Result struct {
	// Path is the configured program entry.
	Path string
	// Target is what was acted on: the spawned executable for open, the
	// derived process name for close.
	Target string
	Status Status
	// PID is set for started programs.
	PID int
	// Terminations lists every process killed for a close.
	Terminations []Termination
	Err          error
}

// Report is the outcome of a batch operation.
type Report struct {
	Action Action
	// Source is the program list file the batch was loaded from.
	Source string
	// LoadErr explains an empty list; it is informational only.
	LoadErr error
	Results []Result
}

// Empty reports whether the batch had nothing to do.
func (r *Report) Empty() bool {
	return len(r.Results) == 0
}

// Count returns how many results have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failures returns the number of results that did not reach their goal.
func (r *Report) Failures() int {
	return r.Count(StatusFailed) + r.Count(StatusTimedOut)
}

// summarize folds per-process terminations into one status and error.
func summarize(terms []Termination) (Status, error) {
	if len(terms) == 0 {
		return StatusNotRunning, nil
	}

	status := StatusClosed
	var errs []error
	for _, t := range terms {
		switch t.Status {
		case StatusFailed:
			status = StatusFailed
		case StatusTimedOut:
			if status != StatusFailed {
				status = StatusTimedOut
			}
		}
		if t.Err != nil {
			errs = append(errs, t.Err)
		}
	}
	return status, errors.Join(errs...)
}
