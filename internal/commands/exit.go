package commands

import "fmt"

// Process exit codes, one per error class.
const (
	ExitUsage      = 1
	ExitExtension  = 2
	ExitMissing    = 3
	ExitPermission = 4
	ExitOther      = 5
)

// ExitError carries a user-facing message and the process exit code for it.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}
