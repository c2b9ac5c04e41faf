package usecase

import (
	"github.com/stevehodgkiss/use-case/validate"
)

// Reporter is anything that exposes a field-keyed error collection. Every
// use case is a Reporter through its embedded State, as are validated forms.
type Reporter interface {
	Errors() *validate.Errors
}

// State carries the per-invocation outcome and error collection. Embed it in
// a concrete use case; embedding also satisfies the unexported part of
// Performer. The zero value is ready to use.
type State struct {
	outcome Outcome
	running bool
	errs    validate.Errors
}

func (s *State) state() *State { return s }

// Outcome returns the current outcome, including OutcomeNotRun.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Succeeded reports whether the invocation reached OutcomeSucceeded.
// Querying before the instance is terminal is a usage error and panics.
func (s *State) Succeeded() bool {
	if !s.outcome.Terminal() {
		panic("usecase: Succeeded queried before Perform completed")
	}
	return s.outcome == OutcomeSucceeded
}

// Failed reports whether the invocation reached OutcomeFailed. Same usage
// rules as Succeeded.
func (s *State) Failed() bool {
	return !s.Succeeded()
}

// Errors returns the instance's error collection. It may be read or added to
// at any point in the lifecycle; note that a populated collection does not by
// itself make the outcome a failure.
func (s *State) Errors() *validate.Errors {
	return &s.errs
}

// FailNow marks the invocation failed and unwinds execution back to the
// Invoke boundary of this instance, from any call depth. Code positioned
// after the call never runs. Outside a running Perform it is a usage error
// and panics through to the caller.
func (s *State) FailNow() {
	panic(&abortSignal{owner: s})
}

// RequireValid evaluates the validator rules declared on subject. On failure
// it merges the resulting messages into the error collection and calls
// FailNow; on success it does nothing.
func (s *State) RequireValid(subject any) {
	errs := validate.Struct(subject)
	if errs.Empty() {
		return
	}
	s.errs.Merge(errs)
	s.FailNow()
}

// MergeErrors appends every message from src's collection into this
// instance's collection. Existing entries survive and no deduplication is
// applied.
func (s *State) MergeErrors(src Reporter) {
	if src == nil {
		return
	}
	s.errs.Merge(src.Errors())
}

// abortSignal is the escape token FailNow panics with. It carries the owning
// State so the Invoke boundary of one instance never catches another
// instance's unwind.
type abortSignal struct {
	owner *State
}
