package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclecheck/pkg/cycle"
	"github.com/matzehuels/cyclecheck/pkg/edgelist"
	"github.com/matzehuels/cyclecheck/pkg/errors"
)

func (c *CLI) demoCommand() *cobra.Command {
	var printEdges bool

	cmd := &cobra.Command{
		Use:   "demo [sample...]",
		Short: "Run the detector over the built-in sample graphs",
		Long: `Demo checks each built-in sample graph and compares the result with the
known answer. Name samples to run a subset. With --edges, the sample edge lists
are printed in the text format instead, ready to pipe into check.`,
		Example: `  cyclecheck demo
  cyclecheck demo branching-tree branching-tree-closed
  cyclecheck demo --edges hexagon | cyclecheck check`,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return sampleNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := selectSamples(args)
			if err != nil {
				return err
			}
			if printEdges {
				return writeSamples(cmd.OutOrStdout(), samples)
			}
			return runDemo(cmd.OutOrStdout(), samples)
		},
	}

	cmd.Flags().BoolVar(&printEdges, "edges", false, "print sample edge lists instead of checking them")
	return cmd
}

func sampleNames() []string {
	var names []string
	for _, s := range edgelist.Samples() {
		names = append(names, s.Name)
	}
	return names
}

// selectSamples returns the named samples in argument order, or all of them.
func selectSamples(names []string) ([]edgelist.Sample, error) {
	all := edgelist.Samples()
	if len(names) == 0 {
		return all, nil
	}
	out := make([]edgelist.Sample, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(s edgelist.Sample) bool { return s.Name == name })
		if i < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown sample %q (valid: %s)", name, strings.Join(sampleNames(), ", "))
		}
		out = append(out, all[i])
	}
	return out, nil
}

func writeSamples(w io.Writer, samples []edgelist.Sample) error {
	for _, s := range samples {
		if err := edgelist.WriteText(w, s.List()); err != nil {
			return err
		}
	}
	return nil
}

// runDemo checks every sample and fails if any result differs from the
// expected one.
func runDemo(w io.Writer, samples []edgelist.Sample) error {
	var mismatched []string
	for _, s := range samples {
		got := cycle.HasCycle(s.Edges)
		verdict := msgNoCycle
		if got {
			verdict = msgCycle
		}
		if got != s.HasCycle {
			mismatched = append(mismatched, s.Name)
			printError(w, "%s: %s (expected %t)", StyleValue.Render(s.Name), verdict, s.HasCycle)
			continue
		}
		printSuccess(w, "%s: %s", StyleValue.Render(s.Name), verdict)
	}

	fmt.Fprintln(w)
	if len(mismatched) > 0 {
		return errors.New(errors.ErrCodeInternal, "%d of %d samples gave the wrong answer: %s",
			len(mismatched), len(samples), strings.Join(mismatched, ", "))
	}
	printInfo(w, "%d samples checked", len(samples))
	return nil
}
