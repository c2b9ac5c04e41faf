package attrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signUpSchema() *Schema {
	return NewSchema().
		Attribute("username", KindString).
		Attribute("age", KindInt).
		Attribute("newsletter", KindBool).
		Attribute("trial_length", KindDuration)
}

func TestSchema_Attribute(t *testing.T) {
	t.Run("Should keep declaration order", func(t *testing.T) {
		s := signUpSchema()
		assert.Equal(t, []string{"username", "age", "newsletter", "trial_length"}, s.Names())
	})
	t.Run("Should keep position when a name is redeclared", func(t *testing.T) {
		s := NewSchema().Attribute("a", KindString).Attribute("b", KindInt).Attribute("a", KindBool)
		assert.Equal(t, []string{"a", "b"}, s.Names())
	})
}

func TestSchema_Bind(t *testing.T) {
	t.Run("Should coerce declared attributes from raw input", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{
			"username":     "alice",
			"age":          "30",
			"newsletter":   "true",
			"trial_length": "2 weeks",
		})
		username, ok := bag.String("username")
		assert.True(t, ok)
		assert.Equal(t, "alice", username)
		age, ok := bag.Int("age")
		assert.True(t, ok)
		assert.Equal(t, 30, age)
		newsletter, ok := bag.Bool("newsletter")
		assert.True(t, ok)
		assert.True(t, newsletter)
		trial, ok := bag.Duration("trial_length")
		assert.True(t, ok)
		assert.Equal(t, 14*24*time.Hour, trial)
	})
	t.Run("Should leave non-coercible input absent instead of raising", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{
			"age": map[string]any{"not": "a number"},
		})
		_, ok := bag.Int("age")
		assert.False(t, ok)
		assert.False(t, bag.Present("age"))
	})
	t.Run("Should never retain the raw invalid value", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{"age": "thirty"})
		v, ok := bag.Get("age")
		assert.False(t, ok)
		assert.Nil(t, v)
	})
	t.Run("Should ignore undeclared keys in raw input", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{"username": "alice", "admin": true})
		assert.True(t, bag.Present("username"))
	})
	t.Run("Should leave missing attributes absent", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{})
		_, ok := bag.String("username")
		assert.False(t, ok)
	})
}

func TestBag_Set(t *testing.T) {
	t.Run("Should clear the attribute when assigned nil", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{"username": "alice"})
		bag.Set("username", nil)
		assert.False(t, bag.Present("username"))
	})
	t.Run("Should clear a previously present attribute on bad reassignment", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{"age": 21})
		bag.Set("age", []string{"nope"})
		assert.False(t, bag.Present("age"))
	})
	t.Run("Should panic on an undeclared name", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{})
		assert.Panics(t, func() { bag.Set("admin", true) })
	})
}

func TestBag_Get(t *testing.T) {
	t.Run("Should panic when reading an undeclared attribute", func(t *testing.T) {
		bag := signUpSchema().Bind(map[string]any{})
		assert.Panics(t, func() { bag.Get("admin") })
	})
}
