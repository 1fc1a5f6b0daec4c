// Package main is the entry point for the catalogctl CLI, which manages the
// product catalog database and runs searches against it offline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopbot/backend/config"
	"github.com/shopbot/backend/internal/infrastructure/sqlite"
	"github.com/shopbot/backend/internal/platform/logger"
	"github.com/shopbot/backend/internal/usecase"
)

// cliOptions are the persistent flags shared by every subcommand
type cliOptions struct {
	dbPath         string
	vocabularyFile string
	verbose        bool
}

var (
	opts cliOptions
	cfg  *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Manage and query the shopbot product catalog",
	Long: `catalogctl creates and seeds the product catalog database, lists its
contents and runs keyword searches with the same ranking the server uses.

Settings come from config.yaml and SHOPBOT_* environment variables; flags
override both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if opts.dbPath == "" {
			opts.dbPath = cfg.Catalog.DBPath
		}
		if opts.vocabularyFile == "" {
			opts.vocabularyFile = cfg.Search.VocabularyFile
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "catalog database path (default from config)")
	rootCmd.PersistentFlags().StringVar(&opts.vocabularyFile, "vocabulary", "", "vocabulary YAML file (default: built-in tables)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log classification and scoring details")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore opens the catalog database named by --db
func openStore() (*sqlite.Store, error) {
	store, err := sqlite.Open(opts.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", opts.dbPath, err)
	}
	return store, nil
}

// loadVocabulary returns the vocabulary named by --vocabulary, or the built-in one
func loadVocabulary() (*usecase.Vocabulary, error) {
	if opts.vocabularyFile == "" {
		return usecase.DefaultVocabulary(), nil
	}
	return usecase.LoadVocabulary(opts.vocabularyFile)
}

// newLogger returns a development logger with --verbose, otherwise a silent one
func newLogger() *logger.Logger {
	if !opts.verbose {
		return logger.Nop()
	}
	log, err := logger.New("development", true)
	if err != nil {
		return logger.Nop()
	}
	return log
}
