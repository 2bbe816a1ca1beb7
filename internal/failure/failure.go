package failure

import (
	"errors"
	"strings"
)

/* Kind classifies an error the way the API reports it.
 * Anything that is not a *Error is treated as a persistence failure.
 */
type Kind int

const (
	Validation Kind = iota + 1
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// Error is a classified business error
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(":")
	for field, msgs := range e.Fields {
		b.WriteString(" ")
		b.WriteString(field)
		b.WriteString("=")
		b.WriteString(strings.Join(msgs, "; "))
	}
	return b.String()
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// NewValidation builds a validation error from a field map. Nil or empty maps are allowed.
func NewValidation(fields map[string][]string) *Error {
	if fields == nil {
		fields = map[string][]string{}
	}
	return &Error{Kind: Validation, Message: "Validation error", Fields: fields}
}

// Field is a shortcut for a validation error on a single field
func Field(field, message string) *Error {
	return NewValidation(map[string][]string{field: {message}})
}

// Add appends a message to a field of a validation error
func (e *Error) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether a validation error carries no field messages
func (e *Error) Empty() bool {
	return len(e.Fields) == 0
}

// As extracts the classified error from a wrapped chain
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// KindOf returns the kind of err, or 0 when err is not classified
func KindOf(err error) Kind {
	if fe, ok := As(err); ok {
		return fe.Kind
	}
	return 0
}
