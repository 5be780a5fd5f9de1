package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/render"
	"github.com/matzehuels/wayfinder/pkg/render/nodelink"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; empty writes DOT to stdout
	format   string // dot, svg or png; inferred from output when empty
	strategy string // strategy used to find the highlighted path
	detailed bool   // show heuristic values in node labels
	noSolve  bool   // draw the graph without a solution path
	noCache  bool   // bypass the cache
}

// renderCommand creates the render command for graph problems.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file|builtin>",
		Short: "Draw a graph problem with its solution path",
		Long: `Draw a graph problem as a node-link diagram. The problem is solved first and
the solution path is highlighted.

Examples:
  wayfinder render exercise -o exercise.svg
  wayfinder render exercise-two -o route.png --strategy greedy --detailed
  wayfinder render detour.toml -f dot --no-solve`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBuiltins,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: DOT on stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg, png, dot (default from the output extension)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "strategy for the highlighted path (default from config)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show heuristic values")
	cmd.Flags().BoolVar(&opts.noSolve, "no-solve", false, "do not highlight a solution path")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// resolveFormat picks the output format from the flag, then from the output
// file extension. Without either, output goes to stdout as DOT.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	if format == "" {
		if output != "" {
			format = render.FormatSVG
		} else {
			format = render.FormatDOT
		}
	}
	if err := render.ValidateFormat(format); err != nil {
		return "", err
	}
	if output == "" && format != render.FormatDOT {
		return "", fmt.Errorf("--output is required for %s output", format)
	}
	return format, nil
}

func (c *CLI) runRender(ctx context.Context, arg string, opts *renderOpts) error {
	def, err := loadDefinition(arg)
	if err != nil {
		return err
	}
	if def.Kind != definition.KindGraph {
		return errors.New(errors.ErrCodeUnsupportedKind, "render supports graph problems only, %s is a %s problem", def.Name, def.Kind)
	}
	g, start, err := def.Graph.Build()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	strategy := ""
	if !opts.noSolve {
		strategy = opts.strategy
		if strategy == "" {
			strategy = c.Config.Search.DefaultStrategy
		}
	}
	key := runner.Keyer.RenderKey(def.Hash(), cache.RenderKeyOpts{
		Strategy: strategy,
		Format:   opts.format,
		Detailed: opts.detailed,
	})

	data, hit, err := runner.Cache.Get(ctx, key)
	if err != nil || !hit {
		dot := nodelink.Options{Start: start, Detailed: opts.detailed}
		if strategy != "" {
			rep, _, err := runner.Solve(ctx, def, solve.Options{Strategy: strategy, Logger: c.Logger})
			if err != nil {
				return err
			}
			if rep.Found {
				dot.Path = rep.States
			} else {
				printWarning("%s found no path, drawing the graph only", rep.Strategy)
			}
		}
		data, err = nodelink.Render(nodelink.ToDOT(g, dot), opts.format)
		if err != nil {
			return fmt.Errorf("render %s: %w", opts.format, err)
		}
		if err := runner.Cache.Set(ctx, key, data, cache.RenderTTL); err != nil {
			c.Logger.Warn("cache write failed", "error", err)
		}
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %s", def.Name)
	printFile(opts.output)
	return nil
}
