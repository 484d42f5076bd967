package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclecheck/pkg/cycle"
	"github.com/matzehuels/cyclecheck/pkg/edgelist"
	"github.com/matzehuels/cyclecheck/pkg/errors"
	"github.com/matzehuels/cyclecheck/pkg/observability"
)

// stdinSource is the argument that selects standard input.
const stdinSource = "-"

// checkOptions holds the check command flags.
type checkOptions struct {
	Format      string
	FailOnCycle bool
	JSON        bool
}

// checkResult is the outcome for one input, also the --json output shape.
type checkResult struct {
	Source     string `json:"source"`
	Name       string `json:"name,omitempty"`
	HasCycle   bool   `json:"has_cycle"`
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	Components int    `json:"components"`

	took time.Duration
}

func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report whether edge lists contain a cycle",
		Long: `Check reads one or more undirected edge lists and reports whether each
contains a cycle. With no arguments, or with "-", the list is read from stdin.

--format applies to every input. Otherwise files are read by extension
(.json, .toml, .dot/.gv, .txt). Stdin and files with other extensions use the
config file's format, or integer pairs when none is set.`,
		Example: `  cyclecheck check graph.json
  echo "0 1 1 2 2 0" | cyclecheck check
  cyclecheck check --fail-on-cycle --json a.toml b.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "input format: json, toml, dot, text (default: by extension)")
	cmd.Flags().BoolVar(&opts.FailOnCycle, "fail-on-cycle", false, "exit non-zero when any input contains a cycle")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print results as JSON")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return edgelist.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, stdin io.Reader, w io.Writer, args []string, opts checkOptions) error {
	if opts.Format != "" {
		if err := edgelist.ValidateFormat(opts.Format); err != nil {
			return err
		}
	}
	if len(args) == 0 {
		args = []string{stdinSource}
	}

	results := make([]checkResult, 0, len(args))
	usedStdin := false
	for _, src := range args {
		if src == stdinSource {
			if usedStdin {
				return errors.New(errors.ErrCodeInvalidInput, "stdin can only be read once")
			}
			usedStdin = true
		}
		l, err := c.load(ctx, stdin, src, opts.Format)
		if err != nil {
			return err
		}
		results = append(results, c.check(ctx, src, l))
	}

	if opts.JSON {
		if err := writeResultsJSON(w, results); err != nil {
			return err
		}
	} else {
		printResults(w, results)
	}

	if opts.FailOnCycle {
		for _, r := range results {
			if r.HasCycle {
				return ErrCycleFound
			}
		}
	}
	return nil
}

// load reads one source, emitting load events around it.
func (c *CLI) load(ctx context.Context, stdin io.Reader, src, format string) (*edgelist.List, error) {
	logger := loggerFromContext(ctx)
	hooks := observability.Detection()

	if format == "" {
		format = c.formatFor(src)
	}
	hooks.OnLoadStart(ctx, src, format)
	prog := newProgress(logger)

	var (
		l   *edgelist.List
		err error
	)
	if src == stdinSource {
		l, err = edgelist.Read(stdin, format)
		if err != nil {
			err = fmt.Errorf("stdin: %w", err)
		}
	} else {
		l, err = edgelist.ImportFormat(src, format)
	}

	edges := 0
	if l != nil {
		edges = len(l.Edges)
	}
	hooks.OnLoadComplete(ctx, src, format, edges, prog.elapsed(), err)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d edges from %s", edges, src))
	return l, nil
}

// formatFor picks the format of src when --format is not given. A known file
// extension wins over the configured default.
func (c *CLI) formatFor(src string) string {
	if src != stdinSource {
		if format, ok := edgelist.LookupFormat(src); ok {
			return format
		}
	}
	if c.Config.Format != "" {
		return c.Config.Format
	}
	return edgelist.FormatText
}

// check runs the detector over one loaded list.
func (c *CLI) check(ctx context.Context, src string, l *edgelist.List) checkResult {
	prog := newProgress(loggerFromContext(ctx))
	hasCycle := cycle.HasCycle(l.Edges)
	took := prog.elapsed()
	observability.Detection().OnDetectComplete(ctx, src, hasCycle, len(l.Edges), took)

	s := cycle.Summarize(l.Edges)
	return checkResult{
		Source:     src,
		Name:       l.Name,
		HasCycle:   hasCycle,
		Vertices:   s.Vertices,
		Edges:      s.Edges,
		Components: s.Components,
		took:       took,
	}
}

func printResults(w io.Writer, results []checkResult) {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			title := r.Source
			if r.Name != "" && r.Name != r.Source {
				title = fmt.Sprintf("%s (%s)", r.Source, r.Name)
			}
			printTitle(w, title)
		}
		printVerdict(w, r.HasCycle)
		printStats(w, cycle.Summary{Vertices: r.Vertices, Edges: r.Edges, Components: r.Components}, r.took)
	}
}

func writeResultsJSON(w io.Writer, results []checkResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
