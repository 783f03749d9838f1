package identicon

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when the hash is too short to derive a colour, or when a cell
	// index falls outside the grid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRenderFailure is returned when the canvas cannot be allocated, drawn or encoded.
	ErrRenderFailure = errors.New("render failure")
	// ErrPersistenceFailure is returned when the encoded image cannot be stored.
	ErrPersistenceFailure = errors.New("persistence failure")
)
