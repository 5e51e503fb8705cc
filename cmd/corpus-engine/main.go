// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the corpus-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/corpus-engine/internal/corpus"
	"github.com/pdiddy/corpus-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the corpus-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "corpus-engine",
	Short: "Local store and search engine for research-paper metadata",
	Long: `corpus-engine manages a local corpus of research-paper metadata and
associated hypotheses in a single SQLite file. It provides full-text
search with an automatic substring fallback, and aggregate statistics
over the corpus.

The storage location defaults to ~/.corpus-engine/corpus.db and can be
overridden with --db, the CORPUS_ENGINE_DB_PATH environment variable,
or a corpus-engine.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-engine.yaml or ~/.config/corpus-engine/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (default: ~/.corpus-engine/corpus.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-engine"))
		}
	}

	viper.SetDefault("max_results", 20)

	viper.SetEnvPrefix("CORPUS_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openStore builds a store from the flag > env > config > default chain.
func openStore() (*corpus.Store, error) {
	dbPath, _ := rootCmd.PersistentFlags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("db_path")
	}

	cfg := types.CorpusConfig{
		DBPath:     dbPath,
		MaxResults: viper.GetInt("max_results"),
	}
	return corpus.NewStore(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
