package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mkessel/cumulus/internal/server"
	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/pipeline"
)

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cloud generation HTTP API",
		Long: `Start an HTTP server exposing the cloud pipeline.

POST /api/clouds accepts JSON with the input text and rendering options and
returns the rendered artifact. GET /healthz reports liveness.

By default layouts and artifacts are cached on disk. Point --redis or --mongo
at a shared store when running multiple instances.`,
		Example: `  # Serve on the default address with the file cache
  cumulus serve

  # Serve on a custom port with a shared Redis cache
  cumulus serve --addr :9090 --redis localhost:6379

  # Serve with MongoDB-backed caching
  cumulus serve --mongo mongodb://localhost:27017`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := serverCache(cmd, redisURL, mongoURL, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			runner := pipeline.NewRunner(store, c.Logger)
			srv := server.New(runner, c.Logger)

			httpServer := &http.Server{
				Addr:    addr,
				Handler: srv.Router(),
			}

			// Shut the listener down when the root context is cancelled.
			go func() {
				<-cmd.Context().Done()
				_ = httpServer.Close()
			}()

			c.Logger.Info("listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis address for shared caching (host:port)")
	cmd.Flags().StringVar(&mongoURL, "mongo", "", "MongoDB URI for shared caching")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serverCache picks the cache backend from the serve flags.
func serverCache(cmd *cobra.Command, redisURL, mongoURL string, noCache bool) (cache.Cache, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil
	case redisURL != "" && mongoURL != "":
		return nil, fmt.Errorf("--redis and --mongo are mutually exclusive")
	case redisURL != "":
		store, err := cache.NewRedisCache(cmd.Context(), cache.RedisConfig{Addr: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	case mongoURL != "":
		store, err := cache.NewMongoCache(cmd.Context(), cache.MongoConfig{URI: mongoURL})
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		return store, nil
	default:
		return newCache(false)
	}
}
