package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/retry/internal/cli"
	"github.com/CodexForgeBR/retry/internal/config"
	"github.com/CodexForgeBR/retry/internal/exitcode"
	"github.com/CodexForgeBR/retry/internal/logging"
	"github.com/CodexForgeBR/retry/internal/retry"
	sighandler "github.com/CodexForgeBR/retry/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute parses args, runs the retry loop and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.NewDefaultConfig()
	code := exitcode.Success

	rootCmd := &cobra.Command{
		Use:     "retry [flags] [--] command [args...]",
		Short:   "Runs a command until it succeeds or has failed a specified number of times",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cfg, args); err != nil {
				return err
			}
			code = runRetry(cmd, cfg)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)

	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}
	return code
}

func runRetry(cmd *cobra.Command, cfg *config.Config) int {
	logging.SetVerbose(cfg.Verbose)

	ctx, stop := sighandler.NotifyContext(cmd.Context(), func(sig os.Signal) {
		logging.Debug(fmt.Sprintf("Received %s, no further attempts", sig))
	})
	defer stop()

	runner := retry.NewRunner(&retry.ExecSpawner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}, cfg.MaxRetries)

	if logging.Verbose() {
		runner.OnAttempt = reportAttempt
		logging.Debug(fmt.Sprintf("Run %s: %q, up to %d attempt(s)", runner.RunID, cfg.Command, max(cfg.MaxRetries, 1)))
	}

	result := runner.Run(ctx, cfg.Command)

	logging.Debug(fmt.Sprintf("Run %s finished after %d attempt(s) with exit code %d (%s)",
		runner.RunID, result.Attempts, result.Code, exitcode.Name(result.Code)))
	return result.Code
}

func reportAttempt(a retry.Attempt) {
	logging.Debug(fmt.Sprintf("Attempt %d %s in %s (%d left)",
		a.Number, a.Outcome, logging.FormatDuration(a.Elapsed), max(a.RetriesLeft-1, 0)))
}
