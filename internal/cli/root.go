// Package cli implements the cyclecheck command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Results
// are printed to stdout with lipgloss styling; logs go to stderr.
//
// # Commands
//
//   - check: Read edge lists from files or stdin and report cycles
//   - demo: Run the detector over the built-in sample graphs
//   - serve: Start the HTTP API
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Defaults come from a TOML file at $XDG_CONFIG_HOME/cyclecheck/config.toml,
// or the file named by --config. Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context so commands can time their work.
package cli

import (
	"context"
	"io"
)

// Execute builds the command tree and runs it with args. Logs are written to
// stderr and command output to stdout.
func Execute(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	c := New(stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
