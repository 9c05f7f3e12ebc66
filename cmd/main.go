// Package main provides the CLI entrypoint for the storefront service.
// It wires subcommands (serve, migrate, seed, top-creator), loads configuration
// and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/pkg/lock"
	"storefront/pkg/logger"
	"storefront/pkg/storage"
	"storefront/pkg/storage/memory"
	"storefront/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		PingOnStart:        true,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getStorage returns the storage selected by the config. pgsql is nil for the
// memory driver.
func getStorage(ctx context.Context, cfg *config.Config) (strg storage.Storage, pgsql *postgres.PgSQL, closer func()) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")

		return memory.New(), nil, func() {}
	}

	pgsql, closer = getPostgres(ctx, cfg)

	return pgsql, pgsql, closer
}

// getLocker connects the Redis purchase lock when enabled. The returned
// locker is nil otherwise, which leaves the catalog on its no-op default.
func getLocker(ctx context.Context, cfg *config.Config) (*lock.RedisLocker, func()) {
	if !cfg.Redis.Enabled {
		return nil, func() {}
	}

	locker, err := lock.NewRedis(ctx, lock.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect purchase lock", zap.Error(err))
	}

	return locker, func() {
		logger.Info(ctx, "closing redis client...")
		if err := locker.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// newCatalog builds the services on strg, serialized by locker when it is set.
func newCatalog(cfg *config.Config, strg storage.Storage, locker *lock.RedisLocker) *catalog.Catalog {
	options := catalog.NewOptions(cfg)
	if locker != nil {
		options.Locker = locker
	}

	return catalog.New(strg, options)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "storefront",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	zapLogger, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("could not create logger: ", err)
	}

	ctx := logger.WithLogger(context.Background(), zapLogger)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = zapLogger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		seedCommand(cfg),
		topCreatorCommand(cfg),
	)

	err = rootCmd.ExecuteContext(ctx)
	_ = zapLogger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
