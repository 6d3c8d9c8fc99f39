// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logsummarai CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/logsummarai/internal/logging"
	"github.com/pdiddy/logsummarai/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the logsummarai CLI.
var rootCmd = &cobra.Command{
	Use:   "logsummarai",
	Short: "Upload log files for summarization and read the result",
	Long: `logsummarai sends a plain-text log file to a LogSummarAI server and renders
the markdown summary it returns.

Use summarize for a one-shot upload, or tui to pick files and submit them
interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		machine := cfg.Render.Format == types.FormatJSON || cfg.Render.Format == types.FormatYAML
		logging.Init(os.Stderr, logging.ParseLevel(cfg.Log.Level), machine)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConfig(version)
	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout", defaults.Server.Timeout)
	viper.SetDefault("server.user_agent", defaults.Server.UserAgent)
	viper.SetDefault("render.format", string(defaults.Render.Format))
	viper.SetDefault("render.style", defaults.Render.Style)
	viper.SetDefault("render.width", defaults.Render.Width)
	viper.SetDefault("log.level", defaults.Log.Level)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./logsummarai.yaml or ~/.config/logsummarai/config.yaml)")
	flags.String("server", defaults.Server.BaseURL, "base URL of the summarization server")
	flags.String("format", string(defaults.Render.Format), "output format: terminal, markdown, html, json, or yaml")
	flags.String("style", defaults.Render.Style, "terminal style: auto, dark, light, notty, ascii")
	flags.Int("width", defaults.Render.Width, "word-wrap width for terminal output")
	flags.String("log-level", defaults.Log.Level, "log level: debug, info, warn, error")

	bindFlag("server.base_url", "server")
	bindFlag("render.format", "format")
	bindFlag("render.style", "style")
	bindFlag("render.width", "width")
	bindFlag("log.level", "log-level")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logsummarai")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logsummarai"))
		}
	}

	viper.SetEnvPrefix("LOGSUMMARAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, config file, environment, and flags.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig(version)
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
