// Package cmd contains the command line interface of the backend.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gofinances/backend/internal/config"
	"github.com/gofinances/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gofinances",
		Short: "Backend recording income and outcome transactions",
		Long: `gofinances records income and outcome transactions against categories,
keeps a running balance and imports transactions from CSV files.

Without a subcommand, the HTTP API is served.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd)
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and configures logging.
func setup(out io.Writer) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := out
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return cfg, nil
}

// connect creates the directory of the database and connects to it.
func connect(cfg config.Config) (*gorm.DB, error) {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o750)
	if err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	return models.Connect(cfg.DBPath)
}
