package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mytodos/internal/config"
	"mytodos/internal/logging"
	"mytodos/internal/services"
	"mytodos/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "mytodos",
	Short:         "Browser task list",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openTaskService opens the configured backend. The caller closes the
// returned KV.
func openTaskService(cfg config.Config) (*services.TaskService, store.KV, error) {
	if cfg.StoreDriver == store.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	kv, err := store.Open(cfg.StoreOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	svc := services.NewTaskService(store.NewTaskStorage(kv), cfg.StorageKey, nil)
	return svc, kv, nil
}
