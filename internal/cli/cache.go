package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached reports and renders",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch c.Config.Cache.Backend {
			case config.BackendRedis:
				ch, err := c.newCache(ctx, false)
				if err != nil {
					return err
				}
				defer ch.Close()
				count, err := ch.(*cache.RedisCache).Clear(ctx)
				if err != nil {
					return fmt.Errorf("clear redis cache: %w", err)
				}
				printSuccess("Cleared %d cached entries", count)
				printDetail("Redis: %s", c.Config.Redis.Addr)
				return nil

			case config.BackendFile:
				dir, err := c.cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					printInfo("Cache is empty")
					return nil
				}
				fc, err := cache.NewFileCache(dir)
				if err != nil {
					return err
				}
				count, err := fc.Clear()
				if err != nil {
					return err
				}
				printSuccess("Cleared %d cached entries", count)
				printDetail("Directory: %s", dir)
				return nil
			}

			printInfo("Caching is disabled")
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch c.Config.Cache.Backend {
			case config.BackendRedis:
				fmt.Fprintf(w, "redis://%s/%d (prefix %q)\n", c.Config.Redis.Addr, c.Config.Redis.DB, c.Config.Redis.Prefix)
				return nil
			case config.BackendNone:
				fmt.Fprintln(w, "caching disabled")
				return nil
			}
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(w, dir)
			return nil
		},
	}
}
