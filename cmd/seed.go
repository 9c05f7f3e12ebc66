package main

import (
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand loads the sample catalog into the configured database.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Loads sample creators, content, users and purchases",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			if cfg.Storage.Driver == config.StorageDriverMemory {
				logger.Fatal(ctx, "seeding in-memory storage has no lasting effect, use the postgres driver")
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			locker, closeLocker := getLocker(ctx, cfg)
			defer closeLocker()

			if err := catalog.Seed(ctx, newCatalog(cfg, strg, locker)); err != nil {
				logger.Fatal(ctx, "could not seed catalog", zap.Error(err))
			}
		},
	}

	return cmd
}
