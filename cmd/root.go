// Package cmd holds the memoriz CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sidram/memoriz/internal/config"
	"github.com/sidram/memoriz/internal/speech"
	"github.com/sidram/memoriz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "memoriz",
	Short: "Spaced-repetition flashcards in your terminal",
	Long:  "Memoriz — a terminal flashcard trainer built on the SM-2 spaced-repetition algorithm.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEMORIZ_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges defaults, the config file, MEMORIZ_* env vars and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path, cmd.Flags())
}

// resolveDBPath returns the database path from config (which already folds
// in the --db flag and MEMORIZ_DB env var), falling back to the XDG default.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database for a CLI command.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

// newSpeaker builds the text-to-speech backend from config.
func newSpeaker(cfg config.Config) speech.Speaker {
	if cfg.Speech.Command == "" {
		return speech.NopSpeaker{}
	}
	return &speech.CommandSpeaker{
		Program: cfg.Speech.Command,
		Args:    cfg.Speech.Args,
		Voices:  cfg.Speech.Voices,
	}
}

// newLogger writes structured logs to a file under the XDG state dir, so
// log output never interferes with the TUI. Falls back to a discard logger.
func newLogger() *slog.Logger {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		dir = filepath.Join(home, ".local", "state")
	}
	path := filepath.Join(dir, "memoriz", "memoriz.log")
	if err := store.EnsureDir(path); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(f, nil))
}
