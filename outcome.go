package usecase

// Outcome is the tri-state result of a use case invocation. It starts as
// OutcomeNotRun and becomes terminal exactly once, when Perform returns or
// is unwound by FailNow.
type Outcome int

const (
	OutcomeNotRun Outcome = iota
	OutcomeSucceeded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotRun:
		return "not_run"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the invocation has finished.
func (o Outcome) Terminal() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}
