package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/history"
)

// historyCommand creates the history command.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded solve runs",
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())

	return cmd
}

func (c *CLI) openStore(cmd *cobra.Command) (history.Store, error) {
	store, err := c.newStore(cmd.Context())
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "run history is disabled (history.backend = none)")
	}
	return store, nil
}

// historyListCommand creates the "history list" subcommand.
func (c *CLI) historyListCommand() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if asJSON {
				if runs == nil {
					runs = []*history.Run{}
				}
				return writeJSON(cmd.OutOrStdout(), runs)
			}
			printRuns(runs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// historyShowCommand creates the "history show" subcommand.
func (c *CLI) historyShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateRunID(args[0]); err != nil {
				return err
			}
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), run)
			}
			printKeyValue("Run", run.ID)
			printKeyValue("Recorded", run.CreatedAt.Local().Format("Jan 2, 2006 15:04:05"))
			printKeyValue("Definition", run.DefinitionHash[:12])
			printNewline()
			printReport(&run.Report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
