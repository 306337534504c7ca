package retry

import (
	"fmt"

	"github.com/CodexForgeBR/retry/internal/exitcode"
)

// OutcomeKind classifies how a single attempt ended.
type OutcomeKind int

const (
	// Exited means the command ran and reported an exit status.
	Exited OutcomeKind = iota
	// Terminated means the command ran but ended without an exit status,
	// typically because a signal killed it.
	Terminated
	// SpawnFailed means the command could not be started at all.
	SpawnFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Terminated:
		return "terminated"
	case SpawnFailed:
		return "spawn failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one attempt. It is consumed immediately by the
// retry loop and never stored.
type Outcome struct {
	Kind OutcomeKind
	Code int   // exit status, only meaningful when Kind == Exited
	Err  error // cause for Terminated and SpawnFailed
}

// ExitedWith returns the outcome of a command that exited with code.
func ExitedWith(code int) Outcome {
	return Outcome{Kind: Exited, Code: code}
}

// Succeeded reports whether the attempt exited with status 0. A spawn
// failure never succeeds.
func (o Outcome) Succeeded() bool {
	return o.Kind == Exited && o.Code == exitcode.Success
}

// CandidateCode is the exit code retry reports if this attempt is the last.
func (o Outcome) CandidateCode() int {
	if o.Kind == Exited {
		return o.Code
	}
	return exitcode.DefaultErrorCode
}

func (o Outcome) String() string {
	switch o.Kind {
	case Exited:
		return fmt.Sprintf("exited with code %d", o.Code)
	default:
		if o.Err != nil {
			return fmt.Sprintf("%s: %v", o.Kind, o.Err)
		}
		return o.Kind.String()
	}
}
