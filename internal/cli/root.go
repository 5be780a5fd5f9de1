package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/pkg/buildinfo"
	"github.com/matzehuels/wayfinder/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wayfinder solves search problems with best-first search",
		Long: `Wayfinder runs breadth-first, depth-first, uniform-cost, greedy and A* search
over problems described in TOML or JSON files: weighted graphs, vacuum worlds,
sliding-tile puzzles, N-queens and lattice protein folding.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wayfinder/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.builtinsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies --verbose, loads the config file and attaches the logger
// to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
