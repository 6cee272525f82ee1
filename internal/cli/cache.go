package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rule cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached rule from the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, err := openCache(ctx, c.Config.Cache)
			if err != nil {
				return fmt.Errorf("open %s cache: %w", c.Config.Cache.Backend, err)
			}
			defer ch.Close()

			clearer, ok := ch.(cache.Clearer)
			if !ok {
				return fmt.Errorf("%s cache cannot be cleared", c.Config.Cache.Backend)
			}
			count, err := clearer.Clear(ctx)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Location: %s", cacheLocation(c.Config.Cache))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the configured backend stores entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			printKeyValue("backend", c.Config.Cache.Backend)
			printKeyValue("location", cacheLocation(c.Config.Cache))
			return nil
		},
	}
}
