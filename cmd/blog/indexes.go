package main

import (
	"context"

	"github.com/spf13/cobra"

	mongodb "github.com/edublog/blog-system/internal/infrastructure/db/mongo"
	"github.com/edublog/blog-system/pkg/logger"
)

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := setup(ctx)
			if err != nil {
				return err
			}
			log := logger.Get()

			client, db, err := mongodb.Connect(ctx, mongodb.Config{
				URI:      cfg.Mongo.URI,
				Database: cfg.Mongo.Database,
			})
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			if err := mongodb.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			log.Info().Str("database", cfg.Mongo.Database).Msg("indexes ensured")
			return nil
		},
	}
}
