package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/config"
)

// seedCommand writes the sample catalog into MongoDB, replacing what is there.
func seedCommand() *cobra.Command {
	var database string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample catalog into MongoDB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), database)
		},
	}
	cmd.Flags().StringVar(&database, "database", "", "Database name (defaults to STOREFRONT_MONGO_DATABASE)")
	return cmd
}

func runSeed(ctx context.Context, database string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if cfg.MongoURL == "" {
		return errors.New("STOREFRONT_MONGO_URL must be set to seed")
	}
	if database == "" {
		database = cfg.MongoDatabase
	}

	client, err := config.ConnectMongo(ctx, cfg.MongoURL, cfg.ConnectTimeout)
	if err != nil {
		return err
	}
	defer disconnectMongo(client, logger)

	products := catalog.SampleProducts()
	if err := catalog.Seed(ctx, client.Database(database), products, catalog.SampleBrands(), catalog.SampleCategories()); err != nil {
		return err
	}
	logger.WithField("database", database).WithField("products", len(products)).Info("catalog seeded")
	return nil
}
