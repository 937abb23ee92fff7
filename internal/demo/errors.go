package demo

import "errors"

// Error kinds. Match with errors.Is.
var (
	// ErrInvalidArgument is the kind of every argument validation failure.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is the kind reported when an operand cannot be
	// interpreted as a value the arithmetic operations accept.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Arg     string
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Is reports ArgumentError as an ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
