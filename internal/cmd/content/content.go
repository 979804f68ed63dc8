// Package content parses content command flags and starts the content API
// service.
package content

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	entrypoint "github.com/louisbranch/lorekeeper/internal/platform/cmd"
	"github.com/louisbranch/lorekeeper/internal/services/content/api/httpapi"
	"github.com/louisbranch/lorekeeper/internal/services/content/app"
	"github.com/louisbranch/lorekeeper/internal/services/content/registry"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// Config holds content command configuration.
type Config struct {
	Port   int    `env:"LOREKEEPER_CONTENT_PORT" envDefault:"8080"`
	Addr   string `env:"LOREKEEPER_CONTENT_ADDR"`
	DBPath string `env:"LOREKEEPER_CONTENT_DB_PATH" envDefault:"content.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The content server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The content server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the content SQLite database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the content API service and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceContent, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close content store: %v", err)
			}
		}()

		service := app.NewService(store, registry.Default())
		mux := http.NewServeMux()
		httpapi.RegisterRoutes(mux, httpapi.NewHandler(service))

		addr := cfg.Addr
		if addr == "" {
			addr = fmt.Sprintf(":%d", cfg.Port)
		}
		server := &http.Server{Addr: addr, Handler: mux}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()
		log.Printf("content API listening on %s", addr)

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	})
}
