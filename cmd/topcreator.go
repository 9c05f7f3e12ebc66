package main

import (
	"errors"
	"fmt"

	"storefront/internal/config"
	"storefront/pkg/logger"
	"storefront/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// topCreatorCommand prints the creator with the highest revenue.
func topCreatorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top-creator",
		Short: "Prints the top earning creator and their revenue",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			shop := newCatalog(cfg, strg, nil)

			creator, revenue, err := shop.Creators.TopEarner(ctx)
			if errors.Is(err, serrors.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "No purchases recorded yet.")

				return
			}
			if err != nil {
				logger.Fatal(ctx, "could not get top earning creator", zap.Error(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), creator.Describe())
			fmt.Fprintf(cmd.OutOrStdout(), "Revenue: %s\n", revenue.StringFixed(2))
		},
	}

	return cmd
}
