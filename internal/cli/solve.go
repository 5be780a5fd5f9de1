package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/history"
	"github.com/matzehuels/wayfinder/pkg/search"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// solveOpts holds the command-line flags shared by solve and compare.
type solveOpts struct {
	strategy      string        // search strategy name or alias
	maxDepth      int           // depth bound; zero means unbounded
	iterative     bool          // iterative deepening up to ceiling
	ceiling       int           // iterative deepening ceiling
	tree          bool          // tree search: no explored set
	arena         bool          // allocate nodes from an arena
	maxIterations int           // dequeue cap per episode
	timeout       time.Duration // wall-clock budget per search
	noCache       bool          // bypass the report cache entirely
	refresh       bool          // recompute and overwrite cached reports
	noHistory     bool          // do not record the run
	interactive   bool          // pick the strategy in a TUI
	json          bool          // print the report as JSON
}

func (o *solveOpts) addFlags(cmd *cobra.Command, withStrategy bool) {
	if withStrategy {
		cmd.Flags().StringVarP(&o.strategy, "strategy", "s", "", "search strategy: bfs, dfs, ucs, greedy, astar (default from config)")
	}
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "do not expand nodes at this depth (0 = unbounded)")
	cmd.Flags().BoolVar(&o.iterative, "iterative", false, "iterative deepening: retry with depth limits 1, 2, ... up to --ceiling")
	cmd.Flags().IntVar(&o.ceiling, "ceiling", 0, "deepest limit tried by --iterative (default from config)")
	cmd.Flags().BoolVar(&o.tree, "tree", false, "tree search: revisit states, no duplicate detection")
	cmd.Flags().BoolVar(&o.arena, "arena", false, "allocate search nodes from an arena")
	cmd.Flags().IntVar(&o.maxIterations, "max-iterations", 0, "stop after this many dequeues (0 = no limit)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "stop the search after this long (0 = no limit)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "ignore cached reports and overwrite them")
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON instead of formatted output")
}

// options converts the flags to solve options, filling unset values from
// the config file.
func (c *CLI) options(o *solveOpts) solve.Options {
	opts := solve.Options{
		Strategy:      o.strategy,
		MaxDepth:      o.maxDepth,
		Iterative:     o.iterative,
		Ceiling:       o.ceiling,
		Tree:          o.tree,
		Arena:         o.arena,
		MaxIterations: o.maxIterations,
		Timeout:       o.timeout,
		Refresh:       o.refresh,
		Logger:        c.Logger,
	}
	if opts.Strategy == "" {
		opts.Strategy = c.Config.Search.DefaultStrategy
	}
	if opts.Iterative && opts.Ceiling == 0 {
		opts.Ceiling = c.Config.Search.Ceiling
	}
	return opts
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <file|builtin>",
		Short: "Search a problem and print the plan",
		Long: `Search a problem definition file (.toml or .json) or a built-in problem.

Examples:
  wayfinder solve exercise --strategy ucs
  wayfinder solve 8-puzzle
  wayfinder solve detour.toml --iterative --tree -s dfs
  wayfinder solve hp-fold --tree --arena --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBuiltins,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	opts.addFlags(cmd, true)
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the strategy interactively")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "do not record the run")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, arg string, o *solveOpts) error {
	def, err := loadDefinition(arg)
	if err != nil {
		return err
	}
	opts := c.options(o)

	if o.interactive {
		initial, err := search.ParseStrategy(opts.Strategy)
		if err != nil {
			initial = search.AStar
		}
		s, ok, err := pickStrategy(def.Name, initial)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		opts.Strategy = s.String()
	}

	runner, err := c.newRunner(ctx, o.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx), "solve finished")
	var spinner *searchSpinner
	if !o.json {
		spinner = startSpinner(ctx, c.errOut, fmt.Sprintf("Solving %s with %s", def.Name, opts.Strategy))
	}
	rep, _, err := runner.Solve(ctx, def, opts)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError(err)
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	if !o.noHistory {
		c.recordRun(ctx, def, rep)
	}

	if o.json {
		return writeJSON(w, rep)
	}
	printReport(rep)
	prog.done(reportFields(rep)...)
	return nil
}

// recordRun saves rep to the configured history store. Failures are logged,
// not returned: the search itself succeeded.
func (c *CLI) recordRun(ctx context.Context, def *definition.Definition, rep *solve.Report) {
	store, err := c.newStore(ctx)
	if err != nil {
		c.Logger.Warn("history unavailable", "error", err)
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	run := history.NewRun(def, rep)
	if err := store.Save(ctx, run); err != nil {
		c.Logger.Warn("failed to record run", "error", err)
		return
	}
	c.Logger.Debug("recorded run", "id", run.ID)
}

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "compare <file|builtin>",
		Short: "Run every strategy on a problem and compare the results",
		Long: `Run breadth-first, depth-first, uniform-cost, greedy and A* search on the
same problem and print cost, plan length and search effort side by side.

Examples:
  wayfinder compare exercise
  wayfinder compare vacuum-grid --json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBuiltins,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	opts.addFlags(cmd, false)
	return cmd
}

func (c *CLI) runCompare(ctx context.Context, w io.Writer, arg string, o *solveOpts) error {
	def, err := loadDefinition(arg)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, o.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx), "compare finished")
	var spinner *searchSpinner
	if !o.json {
		spinner = startSpinner(ctx, c.errOut, fmt.Sprintf("Comparing strategies on %s", def.Name))
	}
	reports, err := runner.Compare(ctx, def, c.options(o))
	if err != nil {
		if spinner != nil {
			spinner.StopWithError(err)
		}
		return err
	}

	if o.json {
		return writeJSON(w, reports)
	}
	spinner.StopWithSuccess(compareSummary(reports))
	printComparison(reports)
	prog.done("problem", def.Name, "strategies", len(reports))
	return nil
}

// compareSummary counts the strategies that found a plan and names the
// cheapest.
func compareSummary(reports []*solve.Report) string {
	var best *solve.Report
	found := 0
	for _, r := range reports {
		if !r.Found {
			continue
		}
		found++
		if best == nil || r.Cost < best.Cost {
			best = r
		}
	}
	if best == nil {
		return "no strategy found a plan"
	}
	return fmt.Sprintf("%d/%d strategies solved %s, cheapest %s with cost %s",
		found, len(reports), best.Problem, best.Strategy, formatCost(best.Cost))
}

// builtinsCommand creates the builtins command.
func (c *CLI) builtinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the built-in problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range definition.Builtins() {
				def, _ := definition.Builtin(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-8s %s\n", name, def.Kind, def.Description)
			}
			return nil
		},
	}
}

// completeBuiltins offers built-in problem names and falls back to file
// completion.
func completeBuiltins(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return definition.Builtins(), cobra.ShellCompDirectiveDefault
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
