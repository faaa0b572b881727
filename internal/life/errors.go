package life

import "errors"

var (
	// ErrMaxGenerations signals that the generation ceiling has been reached.
	// It is terminal: the simulation has to be reinitialized to continue.
	ErrMaxGenerations = errors.New("life: max generations reached")

	// ErrInvalidSize indicates a negative grid size.
	ErrInvalidSize = errors.New("life: grid size must not be negative")

	// ErrUnknownPattern indicates a pattern name that is not registered.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
