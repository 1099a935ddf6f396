// main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/config"
	"github.com/autoparts/storefront/contacts"
	"github.com/autoparts/storefront/controllers"
	"github.com/autoparts/storefront/middleware"
	"github.com/autoparts/storefront/routes"
	"github.com/autoparts/storefront/session"
)

func main() {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "AutoParts storefront backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})
	root.AddCommand(seedCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("storefront failed")
		stop()
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)

	var provider catalog.Provider = catalog.NewSampleProvider()
	var inbox contacts.Inbox = contacts.LogInbox{Logger: logger}

	if cfg.MongoURL != "" {
		client, err := config.ConnectMongo(ctx, cfg.MongoURL, cfg.ConnectTimeout)
		if err != nil {
			return err
		}
		defer disconnectMongo(client, logger)

		db := client.Database(cfg.MongoDatabase)
		provider = catalog.NewMongoProvider(db)
		inbox = contacts.NewMongoInbox(db, logger)
		logger.WithField("database", cfg.MongoDatabase).Info("catalog served from mongo")
	} else {
		logger.Warn("STOREFRONT_MONGO_URL not set, serving the sample catalog")
	}
	provider = catalog.NewCachedProvider(provider, cfg.CatalogCacheTTL)

	var store session.Store
	var extra []gin.HandlerFunc
	if cfg.RedisURL != "" {
		client, err := config.ConnectRedis(ctx, cfg.RedisURL, cfg.ConnectTimeout)
		if err != nil {
			return err
		}
		defer closeRedis(client, logger)

		store = session.NewRedisStore(client, cfg.SessionTTL)
		extra = append(extra, middleware.RateLimiter(client, cfg.RateLimit, cfg.RateWindow, logger))
		logger.Info("sessions kept in redis")
	} else {
		mem := session.NewMemoryStore(cfg.SessionTTL)
		go mem.RunSweeper(ctx, cfg.SweepInterval, func(removed int) {
			logger.WithField("removed", removed).Debug("expired sessions swept")
		})
		store = mem
		logger.Info("sessions kept in memory")
	}

	handler := &controllers.Storefront{
		Catalog:  provider,
		Sessions: session.NewManager(store),
		Tokens:   session.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
		Inbox:    inbox,
		Logger:   logger,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.SetupStorefrontRoutes(r, handler, extra...)

	srv := &http.Server{
		Addr:              cfg.ServeRESTAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("address", cfg.ServeRESTAddress).Info("storefront listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func disconnectMongo(client *mongo.Client, logger logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.WithError(err).Warn("mongo disconnect failed")
	}
}

func closeRedis(client *redis.Client, logger logrus.FieldLogger) {
	if err := client.Close(); err != nil {
		logger.WithError(err).Warn("redis close failed")
	}
}
