// Copyright Punit Mishra, 2026. All rights reserved.

// Package main is the entry point for the publish-engine CLI, the
// companion tool for punitmishra.github.io: it formats blog articles into
// tweets and Medium cross-posts, renders previews, and exports the resume.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/punitmishra/publish-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the publish-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "publish-engine",
	Short: "Publishing tools for a markdown blog and resume",
	Long: `publish-engine reads markdown articles with frontmatter metadata and
produces publish-ready artifacts: tweets posted through the X API, Medium
cross-posts with canonical links, local HTML previews, and a self-contained
resume document with optional PDF export.

Cross-posts are recorded in a local SQLite ledger so --daily-update can pick
the newest article that has not been posted yet.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./publish-engine.yaml or ~/.config/publish-engine/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", ".env", "env file with publishing credentials")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("publish-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "publish-engine"))
		}
	}

	viper.SetDefault("timeout", "30s")
	viper.SetDefault("user_agent", "publish-engine/0.1")
	viper.SetDefault("site.base_url", "https://punitmishra.github.io")
	viper.SetDefault("site.content_dir", "content/blog")
	viper.SetDefault("ledger_path", filepath.Join(".publish", "publish.db"))
	viper.SetDefault("resume.data_file", "resume.yaml")
	viper.SetDefault("resume.output_dir", "output")

	viper.SetEnvPrefix("PUBLISH_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// publishConfig assembles the shared configuration from viper.
func publishConfig() types.PublishConfig {
	return types.PublishConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		Site: types.SiteConfig{
			BaseURL:    strings.TrimSuffix(viper.GetString("site.base_url"), "/"),
			ContentDir: viper.GetString("site.content_dir"),
		},
		LedgerPath: viper.GetString("ledger_path"),
	}
}

// resumeConfig assembles the resume export configuration from viper.
func resumeConfig() types.ResumeConfig {
	return types.ResumeConfig{
		DataFile:  viper.GetString("resume.data_file"),
		OutputDir: viper.GetString("resume.output_dir"),
	}
}

func envFile() string {
	path, _ := rootCmd.PersistentFlags().GetString("env-file")
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
