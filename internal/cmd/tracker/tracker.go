// Package tracker wires the training tracker command.
package tracker

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/trainingtracker/internal/platform/cmd"
	"github.com/louisbranch/trainingtracker/internal/platform/timeouts"
	trackerservice "github.com/louisbranch/trainingtracker/internal/services/tracker"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/exercise"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/storage/sqlite"
	"github.com/louisbranch/trainingtracker/internal/services/tracker/training"
)

// Config holds tracker command configuration.
type Config struct {
	HTTPAddr  string `env:"TRAINING_TRACKER_HTTP_ADDR" envDefault:"localhost:5000"`
	DBPath    string `env:"TRAINING_TRACKER_DB_PATH" envDefault:"data/training.db"`
	RatesFile string `env:"TRAINING_TRACKER_RATES_FILE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.RatesFile, "rates-file", cfg.RatesFile, "TOML file overriding calorie rates")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the tracker server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTracker, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	rates, err := exercise.LoadRatesFile(cfg.RatesFile)
	if err != nil {
		return fmt.Errorf("load calorie rates: %w", err)
	}

	openCtx, cancel := context.WithTimeout(ctx, timeouts.StoreOpen)
	store, err := sqlite.Open(openCtx, cfg.DBPath)
	cancel()
	if err != nil {
		return fmt.Errorf("open exercise store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close exercise store: %v", err)
		}
	}()

	svc, err := training.NewService(store, exercise.NewFactory(rates))
	if err != nil {
		return fmt.Errorf("init training service: %w", err)
	}
	server, err := trackerservice.NewServer(ctx, trackerservice.Config{
		HTTPAddr: cfg.HTTPAddr,
		Training: svc,
		Logger:   log.Default(),
	})
	if err != nil {
		return fmt.Errorf("init tracker server: %w", err)
	}
	defer server.Close()

	log.Printf("tracker listening addr=%s db=%s", server.Addr(), cfg.DBPath)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve tracker: %w", err)
	}
	return nil
}
