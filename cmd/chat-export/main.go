// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chat-export CLI.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-export/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// appLog is configured by initConfig before any command runs.
var appLog = zerolog.Nop()

// rootCmd is the base command for the chat-export CLI.
var rootCmd = &cobra.Command{
	Use:   "chat-export",
	Short: "Convert chat conversation exports into readable documents",
	Long: `chat-export turns conversation export files from chat applications
(JSON or YAML records with a "messages" list) into plaintext, Markdown, or
HTML documents.

Settings can come from flags, CHAT_EXPORT_* environment variables, or a
chat-export.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chat-export.yaml or ~/.config/chat-export/chat-export.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chat-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chat-export"))
		}
	}

	viper.SetEnvPrefix("CHAT_EXPORT")
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()

	appLog = logger.New(logger.Config{Level: viper.GetString("log_level")})

	var notFound viper.ConfigFileNotFoundError
	switch {
	case readErr == nil:
		appLog.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	case !errors.As(readErr, &notFound):
		appLog.Warn().Err(readErr).Msg("ignoring unreadable config file")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
