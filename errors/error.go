package errors

import "strings"

// Error is the single error type of this module. Every builder method
// returns a modified copy so the package level definitions stay untouched.
type Error struct {
	inner    error // details
	kinds    []string
	label    string
	message  string // log message
	synopsis string // caller message
}

// LogError is implemented by errors which carry more details
// than their Error() representation.
type LogError interface {
	error
	LogError() string
}

var _ LogError = &Error{}

func (e *Error) Label(lbl string) *Error {
	err := *e
	err.label = lbl
	return &err
}

func (e *Error) Message(msg string) *Error {
	err := *e
	err.message = msg
	return &err
}

func (e *Error) With(inner error) *Error {
	err := *e
	err.inner = inner
	return &err
}

// Kind prepends the given name to the kinds of a copied error.
// The first kind is the most specific one.
func (e *Error) Kind(name string) *Error {
	err := *e
	err.kinds = append([]string{name}, e.kinds...)
	return &err
}

func (e *Error) Kinds() []string {
	kinds := make([]string, len(e.kinds))
	copy(kinds, e.kinds)
	return kinds
}

// Error returns the synopsis and, if set, the message.
func (e *Error) Error() string {
	msg := e.synopsis
	if e.message != "" {
		msg += ": " + e.message
	}
	return msg
}

// LogError returns the label prefixed message and the inner error.
func (e *Error) LogError() string {
	var parts []string
	if e.label != "" {
		parts = append(parts, e.label)
	}
	if e.message != "" {
		parts = append(parts, e.message)
	} else {
		parts = append(parts, e.synopsis)
	}
	if e.inner != nil {
		parts = append(parts, e.inner.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.inner
}

// Is reports whether the most specific kind of target is one of
// the kinds of e. A target without kinds never matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || len(t.kinds) == 0 {
		return false
	}
	for _, k := range e.kinds {
		if k == t.kinds[0] {
			return true
		}
	}
	return false
}
