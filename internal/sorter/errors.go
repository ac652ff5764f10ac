package sorter

import "errors"

var (
	// ErrUnknownEngine indicates a sort engine name that is not registered.
	ErrUnknownEngine = errors.New("sorter: unknown engine")

	// ErrMalformedAction indicates an action with an unknown kind or payload.
	ErrMalformedAction = errors.New("sorter: malformed action")

	// ErrIndexOutOfRange indicates an action addressing a position outside the sequence.
	ErrIndexOutOfRange = errors.New("sorter: index out of range")
)
