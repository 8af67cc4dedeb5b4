package sqltpl

import "errors"

var (
	// ErrInsufficientArguments is returned when a template contains more
	// placeholders than there are arguments.
	ErrInsufficientArguments = errors.New("insufficient arguments")

	// ErrInvalidArgumentType is returned when a placeholder receives an
	// argument of the wrong shape, e.g. ?a with a plain scalar.
	ErrInvalidArgumentType = errors.New("invalid argument type")

	// ErrUnsupportedType is returned when an argument's type has no SQL
	// literal representation.
	ErrUnsupportedType = errors.New("unsupported argument type")

	// ErrSkipOutsideBlock is returned when a skip marker is bound to a
	// placeholder that is not inside a conditional block.
	ErrSkipOutsideBlock = errors.New("skip marker outside conditional block")
)
