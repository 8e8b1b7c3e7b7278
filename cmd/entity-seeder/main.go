// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the entity-seeder CLI.
//
// entity-seeder turns the UFLPA Entity List Federal Register notice
// into SQL seed data: it downloads the notice PDF, extracts its text,
// heuristically parses the sanctioned-entity names and aliases, and
// renders them as one multi-row INSERT for the companies table.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// Defaults for the pipeline. The URL points at the January 15, 2025
// notice; the heuristics downstream are tuned to that document's layout.
const (
	defaultNoticeURL = "https://www.govinfo.gov/content/pkg/FR-2025-01-15/pdf/2025-00901.pdf"
	defaultDataDir   = "data"
	defaultOutput    = "output/uflpa_insert.sql"
	defaultDBPath    = "data/entity-seeder.db"
	defaultTimeout   = 60 * time.Second

	// A browser User-Agent; govinfo.gov blocks obvious script agents.
	defaultUserAgent = "Mozilla/5.0"
)

// rootCmd is the base command for the entity-seeder CLI.
var rootCmd = &cobra.Command{
	Use:   "entity-seeder",
	Short: "Generate companies-table seed SQL from the UFLPA Entity List notice",
	Long: `entity-seeder downloads the UFLPA Entity List Federal Register notice,
extracts its text, and heuristically parses the sanctioned-entity names
(with aliases) into SQL insert statements.

Each pipeline stage is a subcommand: fetch, extract, parse, seed, and
apply. seed runs the whole pipeline and writes the SQL artifact; apply
loads the parsed entities into a local SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./entity-seeder.yaml or ~/.config/entity-seeder/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("entity-seeder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "entity-seeder"))
		}
	}

	viper.SetEnvPrefix("ENTITY_SEEDER")
	viper.AutomaticEnv()

	viper.SetDefault("notice_url", defaultNoticeURL)
	viper.SetDefault("data_dir", defaultDataDir)
	viper.SetDefault("output_path", defaultOutput)
	viper.SetDefault("db_path", defaultDBPath)
	viper.SetDefault("user_agent", defaultUserAgent)
	viper.SetDefault("timeout", defaultTimeout)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig returns the flag value when set, and the viper-resolved
// value (config file, env, or default) otherwise.
func flagOrConfig(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
