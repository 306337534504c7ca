package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `retry - Runs a command until it succeeds or has failed a given number of times

USAGE
  retry [flags] [--] <command> [args...]

FLAGS
  -r, --retries <int>    Total number of attempts (default: 3). Values of 1 or
                         less run the command exactly once.
  -v, --verbose          Report each attempt on stderr
  -h, --help             Show this help text
      --version          Show version, commit, build date

  Flags are only recognised before the command. Everything from the command
  name onwards, including tokens that look like flags, is passed to it.

EXIT CODES
  0     The command exited 0 on some attempt
  N     Exit code of the final failed attempt
  1     The final attempt could not start or was killed by a signal,
        or the arguments were invalid
  130   Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Try up to three times
  retry -- make test

  # Try up to five times
  retry --retries 5 curl -fsS https://example.com/health

  # Flags after the command belong to the command
  retry -r 2 ls -la
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
