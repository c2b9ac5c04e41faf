package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingUseCase drives the protocol from tests: each step runs in order
// and can abort, so tests can observe exactly which steps executed.
type recordingUseCase struct {
	State
	steps []func(uc *recordingUseCase)
	trace []string
}

func (uc *recordingUseCase) Perform(_ context.Context) {
	for i, step := range uc.steps {
		uc.trace = append(uc.trace, string(rune('a'+i)))
		step(uc)
	}
}

func TestInvoke(t *testing.T) {
	t.Run("Should return a terminal succeeded instance when Perform completes", func(t *testing.T) {
		uc := Invoke(context.Background(), &recordingUseCase{})
		assert.True(t, uc.Outcome().Terminal())
		assert.True(t, uc.Succeeded())
		assert.True(t, uc.Errors().Empty())
	})
	t.Run("Should panic when invoked twice on the same instance", func(t *testing.T) {
		uc := Invoke(context.Background(), &recordingUseCase{})
		assert.Panics(t, func() { Invoke(context.Background(), uc) })
	})
	t.Run("Should let an unexpected panic escape and leave the instance non-terminal", func(t *testing.T) {
		uc := &recordingUseCase{steps: []func(*recordingUseCase){
			func(*recordingUseCase) { panic("database gone") },
		}}
		assert.PanicsWithValue(t, "database gone", func() { Invoke(context.Background(), uc) })
		assert.Equal(t, OutcomeNotRun, uc.Outcome())
	})
}

func TestState_FailNow(t *testing.T) {
	t.Run("Should mark the instance failed and skip the rest of Perform", func(t *testing.T) {
		uc := &recordingUseCase{steps: []func(*recordingUseCase){
			func(*recordingUseCase) {},
			func(u *recordingUseCase) { u.FailNow() },
			func(*recordingUseCase) {},
		}}
		Invoke(context.Background(), uc)
		assert.False(t, uc.Succeeded())
		assert.Equal(t, []string{"a", "b"}, uc.trace)
	})
	t.Run("Should unwind from a deeply nested call", func(t *testing.T) {
		var afterNested bool
		uc := &recordingUseCase{}
		uc.steps = []func(*recordingUseCase){
			func(u *recordingUseCase) {
				deep := func() {
					deeper := func() { u.FailNow() }
					deeper()
					afterNested = true
				}
				deep()
			},
			func(*recordingUseCase) {},
		}
		Invoke(context.Background(), uc)
		assert.False(t, uc.Succeeded())
		assert.False(t, afterNested)
		assert.Equal(t, []string{"a"}, uc.trace)
	})
	t.Run("Should not let a nested use case's abort unwind the outer Perform", func(t *testing.T) {
		outer := &recordingUseCase{}
		var inner *recordingUseCase
		outer.steps = []func(*recordingUseCase){
			func(u *recordingUseCase) {
				inner = Invoke(context.Background(), &recordingUseCase{steps: []func(*recordingUseCase){
					func(iu *recordingUseCase) { iu.FailNow() },
				}})
			},
			func(*recordingUseCase) {},
		}
		Invoke(context.Background(), outer)
		require.NotNil(t, inner)
		assert.False(t, inner.Succeeded())
		assert.True(t, outer.Succeeded())
		assert.Equal(t, []string{"a", "b"}, outer.trace)
	})
	t.Run("Should re-panic an abort that escaped its own invocation", func(t *testing.T) {
		stray := &recordingUseCase{}
		uc := &recordingUseCase{steps: []func(*recordingUseCase){
			func(*recordingUseCase) { stray.FailNow() },
		}}
		assert.Panics(t, func() { Invoke(context.Background(), uc) })
		assert.Equal(t, OutcomeNotRun, uc.Outcome())
	})
}

func TestState_Succeeded(t *testing.T) {
	t.Run("Should panic when queried before Perform completed", func(t *testing.T) {
		uc := &recordingUseCase{}
		assert.Panics(t, func() { uc.Succeeded() })
	})
	t.Run("Should stay true even when the error collection is populated", func(t *testing.T) {
		uc := &recordingUseCase{steps: []func(*recordingUseCase){
			func(u *recordingUseCase) { u.Errors().Add("email", "domain looks disposable") },
		}}
		Invoke(context.Background(), uc)
		assert.True(t, uc.Succeeded())
		assert.False(t, uc.Errors().Empty())
	})
}

type ratedInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
}

type ratedUseCase struct {
	State
	input      ratedInput
	afterValid bool
}

func (uc *ratedUseCase) Perform(_ context.Context) {
	uc.RequireValid(&uc.input)
	uc.afterValid = true
}

func TestState_RequireValid(t *testing.T) {
	t.Run("Should abort before any code after the check", func(t *testing.T) {
		uc := Invoke(context.Background(), &ratedUseCase{input: ratedInput{Username: "al"}})
		assert.False(t, uc.Succeeded())
		assert.False(t, uc.afterValid)
		assert.Equal(t, []string{"is too short (minimum is 3 characters)"}, uc.Errors().On("username"))
		assert.Equal(t, []string{"can't be blank"}, uc.Errors().On("email"))
	})
	t.Run("Should do nothing when the rules pass", func(t *testing.T) {
		uc := Invoke(context.Background(), &ratedUseCase{input: ratedInput{Username: "alice", Email: "alice@example.com"}})
		assert.True(t, uc.Succeeded())
		assert.True(t, uc.afterValid)
	})
}

func TestState_MergeErrors(t *testing.T) {
	t.Run("Should append without discarding existing messages", func(t *testing.T) {
		src := &recordingUseCase{}
		src.Errors().Add("username", "is already taken")
		dst := &recordingUseCase{}
		dst.Errors().Add("username", "can't be blank")
		dst.MergeErrors(src)
		assert.Equal(t, []string{"can't be blank", "is already taken"}, dst.Errors().On("username"))
	})
	t.Run("Should duplicate messages when merged twice", func(t *testing.T) {
		src := &recordingUseCase{}
		src.Errors().Add("email", "can't be blank")
		dst := &recordingUseCase{}
		dst.MergeErrors(src)
		dst.MergeErrors(src)
		assert.Equal(t, 2, dst.Errors().Len())
	})
	t.Run("Should tolerate a nil reporter", func(t *testing.T) {
		dst := &recordingUseCase{}
		dst.MergeErrors(nil)
		assert.True(t, dst.Errors().Empty())
	})
}
