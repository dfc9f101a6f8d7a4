package cli

import (
	"fmt"
	"os"

	"worklog/internal/errors"
	"worklog/internal/logging"
)

// HandleCommandError reports a command failure to the user and returns the
// process exit code. User errors (validation, not found, bad input) read as
// plain messages; anything else keeps its full detail under WL_DEBUG.
func HandleCommandError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
	logging.Debugf("error detail: %v\n", err)

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return 2
		case errors.ErrorTypeNotFound:
			return 3
		}
	}
	return 1
}
