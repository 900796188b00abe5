package cli

import (
	"errors"
	"fmt"
)

var (
	// Definition-time errors. These abort tree construction.
	ErrDuplicateName     = errors.New("duplicate name")
	ErrInvalidDefinition = errors.New("invalid definition")

	// Parse-time errors, wrapped in a [ParseError] with the offending token index.
	ErrUnknownOption    = errors.New("unknown option")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
)

// ParseError is the error type returned from parsing.
// It wraps a sentinel error from this package or from [typespec], so [errors.Is] can
// classify the failure, and it carries the index of the raw token where parsing stopped.
type ParseError struct {
	index   int
	token   string
	wrapped error
}

func parseErrorf(index int, token string, sentinel error, format string, args ...any) error {
	return &ParseError{
		index:   index,
		token:   token,
		wrapped: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (token %d: %q)", e.wrapped.Error(), e.index, e.token)
}

func (e *ParseError) Is(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

func (e *ParseError) Unwrap() error {
	return e.wrapped
}

// Index returns the position of the offending token within the parsed token sequence.
func (e *ParseError) Index() int {
	return e.index
}

// Token returns the offending token text.
func (e *ParseError) Token() string {
	return e.token
}
