package attrs

import (
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Kind
// -----------------------------------------------------------------------------

// Kind identifies the declared type of an attribute.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindInt64
	KindFloat
	KindBool
	KindTime
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

func (k Kind) coerce(raw any) (any, bool) {
	switch k {
	case KindString:
		return firstOK(CoerceString(raw))
	case KindInt:
		return firstOK(CoerceInt(raw))
	case KindInt64:
		return firstOK(CoerceInt64(raw))
	case KindFloat:
		return firstOK(CoerceFloat(raw))
	case KindBool:
		return firstOK(CoerceBool(raw))
	case KindTime:
		return firstOK(CoerceTime(raw))
	case KindDuration:
		return firstOK(CoerceDuration(raw))
	default:
		return nil, false
	}
}

func firstOK[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

// Schema holds the attribute declarations for a class of inputs. It is built
// once at definition time and shared by every Bag bound from it.
type Schema struct {
	order []string
	kinds map[string]Kind
}

// NewSchema returns an empty declaration set.
func NewSchema() *Schema {
	return &Schema{kinds: make(map[string]Kind)}
}

// Attribute declares a named, typed attribute. Redeclaring a name replaces
// its kind but keeps its position. Returns the schema for chaining.
func (s *Schema) Attribute(name string, kind Kind) *Schema {
	if _, seen := s.kinds[name]; !seen {
		s.order = append(s.order, name)
	}
	s.kinds[name] = kind
	return s
}

// Names returns the declared attribute names in declaration order.
func (s *Schema) Names() []string {
	return s.order
}

// Bind builds a Bag from raw input: every declared attribute present in raw
// is coerced to its declared kind, and anything that cannot be coerced is
// left absent. Keys in raw that were never declared are ignored.
func (s *Schema) Bind(raw map[string]any) *Bag {
	bag := &Bag{schema: s, values: make(map[string]any, len(s.order))}
	for name, value := range raw {
		if _, declared := s.kinds[name]; !declared {
			continue
		}
		bag.Set(name, value)
	}
	return bag
}

// -----------------------------------------------------------------------------
// Bag
// -----------------------------------------------------------------------------

// Bag holds the coerced attribute values of one instance. A value is either
// of its declared kind or absent; raw uncoercible input never survives
// assignment.
type Bag struct {
	schema *Schema
	values map[string]any
}

// Set assigns one attribute from a raw value, coercing it to the declared
// kind. An uncoercible value clears the attribute to absent. Assigning an
// undeclared name is a usage error and panics.
func (b *Bag) Set(name string, raw any) {
	kind, declared := b.schema.kinds[name]
	if !declared {
		panic(fmt.Sprintf("attrs: attribute %q is not declared", name))
	}
	if raw == nil {
		delete(b.values, name)
		return
	}
	coerced, ok := kind.coerce(raw)
	if !ok {
		delete(b.values, name)
		return
	}
	b.values[name] = coerced
}

// Get returns the coerced value of a declared attribute and whether it is
// present. Reading an undeclared name is a usage error and panics.
func (b *Bag) Get(name string) (any, bool) {
	if _, declared := b.schema.kinds[name]; !declared {
		panic(fmt.Sprintf("attrs: attribute %q is not declared", name))
	}
	v, ok := b.values[name]
	return v, ok
}

// Present reports whether a declared attribute holds a value.
func (b *Bag) Present(name string) bool {
	_, ok := b.Get(name)
	return ok
}

// String reads a KindString attribute.
func (b *Bag) String(name string) (string, bool) {
	v, ok := b.Get(name)
	if !ok {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

// Int reads a KindInt attribute.
func (b *Bag) Int(name string) (int, bool) {
	v, ok := b.Get(name)
	if !ok {
		return 0, false
	}
	i, isInt := v.(int)
	return i, isInt
}

// Int64 reads a KindInt64 attribute.
func (b *Bag) Int64(name string) (int64, bool) {
	v, ok := b.Get(name)
	if !ok {
		return 0, false
	}
	i, isInt := v.(int64)
	return i, isInt
}

// Float reads a KindFloat attribute.
func (b *Bag) Float(name string) (float64, bool) {
	v, ok := b.Get(name)
	if !ok {
		return 0, false
	}
	f, isFloat := v.(float64)
	return f, isFloat
}

// Bool reads a KindBool attribute.
func (b *Bag) Bool(name string) (bool, bool) {
	v, ok := b.Get(name)
	if !ok {
		return false, false
	}
	bv, isBool := v.(bool)
	return bv, isBool
}

// Time reads a KindTime attribute.
func (b *Bag) Time(name string) (time.Time, bool) {
	v, ok := b.Get(name)
	if !ok {
		return time.Time{}, false
	}
	t, isTime := v.(time.Time)
	return t, isTime
}

// Duration reads a KindDuration attribute.
func (b *Bag) Duration(name string) (time.Duration, bool) {
	v, ok := b.Get(name)
	if !ok {
		return 0, false
	}
	d, isDur := v.(time.Duration)
	return d, isDur
}
