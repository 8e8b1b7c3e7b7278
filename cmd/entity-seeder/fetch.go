// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/entity-seeder/internal/fetch"
	"github.com/pdiddy/entity-seeder/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the Entity List notice PDF",
	Long: `Fetch downloads the Federal Register notice PDF to the data directory
and writes a YAML fetch record alongside it. An already-downloaded PDF
is not fetched again.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("url", "", "notice PDF URL")
	fetchCmd.Flags().String("data-dir", "", "base directory for pipeline artifacts")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")

	rootCmd.AddCommand(fetchCmd)
}

// fetchConfig assembles the fetch-stage configuration from flags,
// config file, and defaults.
func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("user_agent"),
		},
		NoticeURL: flagOrConfig(cmd, "url", "notice_url"),
		DataDir:   flagOrConfig(cmd, "data-dir", "data_dir"),
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}

	_, _, err := fetch.FetchNotice(cmd.Context(), client, cfg, os.Stdout)
	return err
}
