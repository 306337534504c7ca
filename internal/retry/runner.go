// Package retry runs a command repeatedly until it exits 0 or its attempt
// budget runs out.
//
// The loop never terminates the process itself. Runner.Run returns a Result
// and the caller decides what to do with Result.Code.
package retry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/retry/internal/exitcode"
)

// Attempt describes one finished attempt. It is passed to Runner.OnAttempt.
type Attempt struct {
	RunID       string
	Number      int // 1-based
	RetriesLeft int // budget when the attempt started
	Outcome     Outcome
	Elapsed     time.Duration
}

// Result is the terminal state of a run.
type Result struct {
	Code     int
	Attempts int
}

// Runner owns the retry budget for a single command invocation.
type Runner struct {
	Spawner    Spawner
	MaxRetries int

	// RunID tags every Attempt of this run.
	RunID string

	// OnAttempt, when set, is called after every attempt.
	OnAttempt func(Attempt)
}

// NewRunner returns a Runner with a fresh RunID.
func NewRunner(spawner Spawner, maxRetries int) *Runner {
	return &Runner{
		Spawner:    spawner,
		MaxRetries: maxRetries,
		RunID:      uuid.New().String(),
	}
}

// Decide applies the retry-or-exit rule after a failed attempt. With more
// than one attempt left it returns the decremented budget and true;
// otherwise it returns the budget unchanged and false.
func Decide(retriesLeft int) (next int, again bool) {
	if retriesLeft > 1 {
		return retriesLeft - 1, true
	}
	return retriesLeft, false
}

// Run attempts command until it exits 0 or the budget is exhausted.
//
// MaxRetries is the total number of attempts; values of 1 or less still
// make exactly one. A failed final attempt yields its own exit code, or
// exitcode.DefaultErrorCode when it had none. If ctx is cancelled no further
// attempt starts and the result is exitcode.Interrupted.
func (r *Runner) Run(ctx context.Context, command []string) Result {
	retriesLeft := r.MaxRetries

	for n := 1; ; n++ {
		if ctx.Err() != nil {
			return Result{Code: exitcode.Interrupted, Attempts: n - 1}
		}

		start := time.Now()
		outcome := r.Spawner.Spawn(ctx, command)

		if r.OnAttempt != nil {
			r.OnAttempt(Attempt{
				RunID:       r.RunID,
				Number:      n,
				RetriesLeft: retriesLeft,
				Outcome:     outcome,
				Elapsed:     time.Since(start),
			})
		}

		if outcome.Succeeded() {
			return Result{Code: exitcode.Success, Attempts: n}
		}
		if ctx.Err() != nil {
			return Result{Code: exitcode.Interrupted, Attempts: n}
		}

		var again bool
		retriesLeft, again = Decide(retriesLeft)
		if !again {
			return Result{Code: outcome.CandidateCode(), Attempts: n}
		}
	}
}
