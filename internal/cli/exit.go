package cli

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/identicon"
)

const (
	ExitSuccess            = 0
	ExitInvalidInput       = 1
	ExitRenderFailure      = 2
	ExitPersistenceFailure = 3
	ExitInternalError      = 4
)

// ExitCode maps an error to the exit code of the command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, identicon.ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, identicon.ErrRenderFailure):
		return ExitRenderFailure
	case errors.Is(err, identicon.ErrPersistenceFailure):
		return ExitPersistenceFailure
	default:
		return ExitInternalError
	}
}
