package httpdate

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why a date string was rejected.
type ErrorKind uint8

const (
	// ErrStructural: a separator is missing or the input ended early.
	ErrStructural ErrorKind = iota + 1
	// ErrLexical: the character at the cursor is not of the expected class.
	ErrLexical
	// ErrRange: a numeric field is outside its accepted bound.
	ErrRange
	// ErrCalendar: the date is well formed but not a real Gregorian date.
	ErrCalendar
	// ErrUnknownToken: the month abbreviation is not one of Jan..Dec.
	ErrUnknownToken
)

func (k ErrorKind) String() string {
	switch k {
	case ErrStructural:
		return "structural"
	case ErrLexical:
		return "lexical"
	case ErrRange:
		return "range"
	case ErrCalendar:
		return "calendar"
	case ErrUnknownToken:
		return "unknown token"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError is returned by Parse for any input it can not accept. Field
// names the part being scanned ("weekday", "year", "hour", "zone", ...)
// and Pos is the byte offset of the cursor when scanning stopped.
type ParseError struct {
	Kind   ErrorKind
	Field  string
	Reason string
	Pos    int
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("httpdate: %s error in %s at offset %d of %q: %s",
		e.Kind, e.Field, e.Pos, e.Input, e.Reason)
}

// KindOf returns the ErrorKind carried by err, looking through wrapping
// done by this package's adapters. It returns 0 if err does not hold a
// *ParseError.
func KindOf(err error) ErrorKind {
	if pe, ok := errors.Cause(err).(*ParseError); ok {
		return pe.Kind
	}
	var pe *ParseError
	if stderrors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}
