package usecase

import (
	"context"
)

// Performer is the contract of a concrete use case: domain logic in Perform
// plus the per-invocation state, supplied by embedding State.
type Performer interface {
	Perform(ctx context.Context)
	state() *State
}

// Invoke constructs-and-runs in one step: it executes Perform on u inside an
// unwind boundary scoped to this instance and returns u in a terminal state.
// It is the sole entry point; calling it twice on the same instance is a
// usage error and panics.
//
// A panic raised inside Perform that is not this instance's FailNow escapes
// Invoke unchanged, leaving the instance non-terminal.
func Invoke[U Performer](ctx context.Context, u U) U {
	s := u.state()
	if s.outcome.Terminal() || s.running {
		panic("usecase: Invoke called twice on the same instance")
	}
	s.running = true
	defer func() { s.running = false }()
	perform(ctx, u, s)
	return u
}

// Must panics when err is non-nil. It is the channel for unexpected
// infrastructure errors inside Perform: the panic escapes Invoke unchanged
// and the instance stays non-terminal, leaving the caller to handle it.
// It never marks the use case failed.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func perform(ctx context.Context, u Performer, s *State) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(*abortSignal)
		if !ok || sig.owner != s {
			// Not ours: an unexpected panic or a nested instance's
			// escape that was misused outside its own boundary.
			panic(r)
		}
		s.outcome = OutcomeFailed
	}()
	u.Perform(ctx)
	s.outcome = OutcomeSucceeded
}
