// Package exitcode defines named exit codes for the retry CLI.
//
// Apart from these, retry exits with whatever code the wrapped command
// reported on its final attempt.
package exitcode

const (
	Success     = 0   // Command eventually exited 0
	Error       = 1   // Invalid arguments
	Interrupted = 130 // SIGINT/SIGTERM received
)

// DefaultErrorCode is the candidate exit code for an attempt that produced
// no exit status of its own: the command could not be started, or it was
// terminated by a signal.
const DefaultErrorCode = Error

// Name returns the human-readable name for the given exit code.
// Codes owned by the wrapped command return "command".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Interrupted:
		return "Interrupted"
	default:
		return "command"
	}
}
