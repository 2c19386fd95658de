// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pocket-export CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pocket-export/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir is where credentials are cached between runs.
const secretsDir = ".secrets"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command. Running it bare performs the export, so
// the tool stays a one-shot `pocket-export` invocation.
var rootCmd = &cobra.Command{
	Use:   "pocket-export",
	Short: "Export Pocket saved articles to browser bookmarks",
	Long: `pocket-export copies your saved articles from Pocket into a
"Pocket-Export" folder in your browser's bookmarks. Each run fully
replaces the folder's contents with the current Pocket list; a backup
of the bookmark file is written next to it before anything changes.

Supported browsers: Microsoft Edge, Google Chrome, Mozilla Firefox.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runExport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pocket-export.yaml or ~/.config/pocket-export/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pocket-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pocket-export"))
		}
	}

	viper.SetEnvPrefix("POCKET_EXPORT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
