package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrEmptyCommand is reported when there is nothing to execute.
var ErrEmptyCommand = errors.New("empty command")

// Spawner runs one attempt of a command and waits for it to finish.
type Spawner interface {
	Spawn(ctx context.Context, command []string) Outcome
}

// SpawnFunc adapts an ordinary function to the Spawner interface.
type SpawnFunc func(ctx context.Context, command []string) Outcome

// Spawn calls f(ctx, command).
func (f SpawnFunc) Spawn(ctx context.Context, command []string) Outcome {
	return f(ctx, command)
}

// ExecSpawner starts real processes. Nil streams are inherited from the
// current process, so the child talks to the user's terminal directly.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Spawner = (*ExecSpawner)(nil)

// Spawn executes command[0] with command[1:] as arguments and blocks until
// the child has been reaped. Cancelling ctx kills the child.
func (s *ExecSpawner) Spawn(ctx context.Context, command []string) Outcome {
	if len(command) == 0 {
		return Outcome{Kind: SpawnFailed, Err: ErrEmptyCommand}
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Stdin = orReader(s.Stdin, os.Stdin)
	cmd.Stdout = orWriter(s.Stdout, os.Stdout)
	cmd.Stderr = orWriter(s.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return Outcome{Kind: SpawnFailed, Err: fmt.Errorf("start %s: %w", command[0], err)}
	}

	waitErr := cmd.Wait()
	if waitErr == nil {
		return ExitedWith(0)
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return ExitedWith(code)
		}
		return Outcome{Kind: Terminated, Err: waitErr}
	}

	// Wait can also fail while copying a non-file stream after the
	// process has exited; the exit status is still authoritative.
	if cmd.ProcessState != nil {
		if code := cmd.ProcessState.ExitCode(); code >= 0 {
			return ExitedWith(code)
		}
	}
	return Outcome{Kind: Terminated, Err: waitErr}
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
