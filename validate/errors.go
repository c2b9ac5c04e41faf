package validate

import (
	"fmt"
	"strings"
)

// Base is the pseudo-field for messages that concern the whole object
// rather than a single attribute.
const Base = "base"

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

// Errors is an ordered multimap from field name to human-readable messages.
// Fields keep first-seen order and messages keep insertion order, so merging
// another collection appends without reshuffling what is already there.
// The zero value is ready to use.
type Errors struct {
	order  []string
	fields map[string][]string
}

// NewErrors returns an empty collection.
func NewErrors() *Errors {
	return &Errors{fields: make(map[string][]string)}
}

// Add appends a message under the given field.
func (e *Errors) Add(field, message string) {
	if e.fields == nil {
		e.fields = make(map[string][]string)
	}
	if _, seen := e.fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// AddBase appends a whole-object message.
func (e *Errors) AddBase(message string) {
	e.Add(Base, message)
}

// On returns the messages recorded for a field, in insertion order.
func (e *Errors) On(field string) []string {
	return e.fields[field]
}

// Fields returns the field names in first-seen order.
func (e *Errors) Fields() []string {
	return e.order
}

// Merge appends every message from other into this collection. Existing
// entries are kept, other's messages for an already-present field go after
// them, and no deduplication is applied: merging the same collection twice
// records its messages twice.
func (e *Errors) Merge(other *Errors) {
	if other == nil {
		return
	}
	for _, field := range other.order {
		for _, msg := range other.fields[field] {
			e.Add(field, msg)
		}
	}
}

// Len returns the total number of messages across all fields.
func (e *Errors) Len() int {
	n := 0
	for _, msgs := range e.fields {
		n += len(msgs)
	}
	return n
}

// Empty reports whether no messages have been recorded.
func (e *Errors) Empty() bool {
	return e.Len() == 0
}

// Messages flattens the collection into "field message" strings, in field
// order. Base messages are emitted without the field prefix.
func (e *Errors) Messages() []string {
	out := make([]string, 0, e.Len())
	for _, field := range e.order {
		for _, msg := range e.fields[field] {
			if field == Base {
				out = append(out, msg)
				continue
			}
			out = append(out, fmt.Sprintf("%s %s", field, msg))
		}
	}
	return out
}

// Error implements the error interface by joining all messages.
func (e *Errors) Error() string {
	return strings.Join(e.Messages(), "; ")
}
