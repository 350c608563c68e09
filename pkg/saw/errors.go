package saw

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per Kind. Every *Error unwraps to the sentinel of its
// kind so callers can match with errors.Is.
var (
	ErrType            = errors.New("saw: invalid input type")
	ErrShape           = errors.New("saw: invalid matrix shape")
	ErrCardinality     = errors.New("saw: cardinality mismatch")
	ErrInvalidCriteria = errors.New("saw: invalid criteria")
	ErrInvalidWeight   = errors.New("saw: invalid weight")
)

// Kind classifies a validation failure.
type Kind uint8

// Error kinds.
const (
	KindType Kind = iota + 1
	KindShape
	KindCardinality
	KindInvalidCriteria
	KindInvalidWeight
)

// String returns the snake_case name of the kind, used as a metrics label.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindShape:
		return "shape"
	case KindCardinality:
		return "cardinality"
	case KindInvalidCriteria:
		return "invalid_criteria"
	case KindInvalidWeight:
		return "invalid_weight"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindType:
		return ErrType
	case KindShape:
		return ErrShape
	case KindCardinality:
		return ErrCardinality
	case KindInvalidCriteria:
		return ErrInvalidCriteria
	case KindInvalidWeight:
		return ErrInvalidWeight
	default:
		return nil
	}
}

// Error is the structured failure returned by every operation in this package.
// Row and Column locate the offending cell or criterion; they are -1 when the
// failure is not tied to one.
type Error struct {
	Kind   Kind
	Row    int
	Column int
	// Value is the offending input rendered as text, if any.
	Value string
	Msg   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString("saw: error")
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Row >= 0 {
		fmt.Fprintf(&b, " (row %d", e.Row)
		if e.Column >= 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
		b.WriteString(")")
	} else if e.Column >= 0 {
		fmt.Fprintf(&b, " (column %d)", e.Column)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, ": %q", e.Value)
	}
	return b.String()
}

// Unwrap returns the sentinel for the error's kind.
func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// KindOf reports the Kind carried by err, or zero if err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Row: -1, Column: -1, Msg: msg}
}

func (e *Error) at(row, col int) *Error {
	e.Row, e.Column = row, col
	return e
}

func (e *Error) with(value string) *Error {
	e.Value = value
	return e
}
