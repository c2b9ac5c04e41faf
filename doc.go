// Package usecase is a thin convention for structuring user actions: small
// types that take input, validate it, perform side effects, and report
// success or failure to the caller.
//
// A concrete use case embeds State, implements Perform, and is run through
// Invoke, which returns the instance in a terminal state:
//
//	type SignUp struct {
//		usecase.State
//		form *Form
//		user *User
//	}
//
//	func (uc *SignUp) Perform(ctx context.Context) {
//		if !uc.form.Valid() {
//			uc.MergeErrors(uc.form)
//			uc.FailNow()
//		}
//		// ... side effects ...
//	}
//
//	uc := usecase.Invoke(ctx, &SignUp{form: form})
//	if uc.Succeeded() { ... }
//
// FailNow unwinds execution from any call depth back to the Invoke boundary
// of the same instance and marks the use case failed. It is a control-flow
// escape, not an error value: intermediate callers cannot observe it, and a
// nested use case's escape never crosses into the enclosing invocation.
//
// Expected business failures are reported only through Succeeded and the
// Errors collection. Anything unexpected panics through Invoke unchanged and
// leaves the instance non-terminal.
package usecase
