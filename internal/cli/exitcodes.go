package cli

import "errors"

// Exit codes follow the BSD sysexits convention where one applies.
const (
	ExitSuccess       = 0
	ExitParseErrors   = 1
	ExitInvalidUsage  = 64
	ExitConfigError   = 65
	ExitInternalError = 70
	ExitIOError       = 74
)

// ErrDocumentErrors is returned by check when documents parsed but
// contained errors. The caller maps it to ExitParseErrors without
// logging it as a failure.
var ErrDocumentErrors = errors.New("documents contained errors")

// ErrRunFailed is returned when one or more files could not be read or
// parsed at all.
var ErrRunFailed = errors.New("run failed")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDocumentErrors):
		return ExitParseErrors
	case errors.Is(err, ErrRunFailed):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
