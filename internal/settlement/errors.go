package settlement

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteLine = errors.New("incomplete data")
	ErrNotANumber     = errors.New("not a number")
)

// ErrorKind tells which of the two parse failures happened.
type ErrorKind int

const (
	IncompleteLine ErrorKind = iota + 1
	NotANumber
)

func (k ErrorKind) String() string {
	switch k {
	case IncompleteLine:
		return "incomplete_line"
	case NotANumber:
		return "not_a_number"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseError aborts a whole batch. Line is the 0-based index of the offending
// line in the raw input, blank lines included.
type ParseError struct {
	Kind ErrorKind
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v on line %d: %q", e.Unwrap(), e.Line+1, e.Text)
}

func (e *ParseError) Unwrap() error {
	if e.Kind == NotANumber {
		return ErrNotANumber
	}
	return ErrIncompleteLine
}
