package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/embedkit/tweetcard/internal/config"
	"github.com/embedkit/tweetcard/internal/server"
	"github.com/embedkit/tweetcard/pkg/cache"
	"github.com/embedkit/tweetcard/pkg/twitter"
)

// newServeCmd creates the serve command that runs the embed HTTP API.
func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the embed HTTP server",
		Long: `Serve runs the tweetcard HTTP API until interrupted.

Routes:
  /health                    liveness check
  /api/tweet?url=<url>       tweet metadata as JSON
  /tweet?url=<url>           standalone HTML embed
  /tweet-svg?url=<url>       SVG card image

Configuration comes from an optional TOML file plus environment
overrides (PORT, API_TIMEOUT, CACHE_BACKEND, REDIS_ADDR, MONGO_URI,
and friends).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if level, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
				logger.SetLevel(level)
			}

			store, err := newCacheBackend(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := twitter.NewService(twitter.Config{
				BaseURL:  cfg.Twitter.BaseURL,
				Language: cfg.Twitter.Language,
				Timeout:  cfg.APITimeout(),
			})
			cached := twitter.NewCachedService(svc, store, twitter.CacheOptions{
				TTL:       cfg.CacheTTL(),
				OpTimeout: cfg.CacheOpTimeout(),
				Logger:    logger,
			})

			return server.New(cfg, logger, cached).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}

// newCacheBackend builds the cache store selected by the configuration.
func newCacheBackend(ctx context.Context, cfg config.Config, logger *charmlog.Logger) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		logger.Info("using redis cache", "addr", cfg.Cache.Redis.Addr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	case config.BackendMongo:
		logger.Info("using mongo cache", "database", cfg.Cache.Mongo.Database)
		return cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        cfg.Cache.Mongo.URI,
			Database:   cfg.Cache.Mongo.Database,
			Collection: cfg.Cache.Mongo.Collection,
		})
	case config.BackendNone:
		logger.Info("caching disabled")
		return cache.NewNullCache(), nil
	default:
		return cache.NewMemoryCache(), nil
	}
}
