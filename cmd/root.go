/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewhowdencom/mdpress/internal/otel"
)

var cfgFile string
var logLevel string

// version is overridden at build time via -ldflags.
var version = "dev"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mdpress",
	Short: "Convert Markdown files into standalone HTML pages.",
	Long: `Convert Markdown files into standalone HTML pages.

mdpress renders a constrained subset of Markdown (headings, paragraphs,
fenced code blocks, inline code, links, bold and italic) into minimal
HTML5 documents, and can keep the output up to date as the source
changes.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		InitConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/mdpress/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("otel-endpoint", "", "OpenTelemetry endpoint")
	viper.BindPFlag("otel.endpoint", rootCmd.PersistentFlags().Lookup("otel-endpoint"))

	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.headers", map[string]string{})
	viper.SetDefault("otel.insecure", false)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find xdg config path and set it for viper if found.
		configPath, err := xdg.ConfigFile("mdpress/config.yaml")
		if err == nil {
			// Search config in the XDG config directory with name "config.yaml".
			viper.AddConfigPath(filepath.Dir(configPath))
			viper.SetConfigName(filepath.Base(configPath))
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("MDPRESS")
	viper.AutomaticEnv() // read in environment variables that match

	configReadErr := viper.ReadInConfig()

	// Initialise the logger
	var programLevel = new(slog.LevelVar)
	switch strings.ToLower(viper.GetString("log.level")) {
	case "debug":
		programLevel.Set(slog.LevelDebug)
	case "warn":
		programLevel.Set(slog.LevelWarn)
	case "error":
		programLevel.Set(slog.LevelError)
	default:
		programLevel.Set(slog.LevelInfo)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})
	slog.SetDefault(slog.New(handler))

	if configReadErr != nil {
		if _, ok := configReadErr.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("config file not found")
		} else {
			slog.Warn("could not read config file, using defaults", "error", configReadErr)
		}
	}

	// Initialise OpenTelemetry
	if viper.GetString("otel.endpoint") != "" {
		shutdown, err := otel.Init()
		if err != nil {
			slog.Error("could not setup OpenTelemetry", "error", err)
			os.Exit(1)
		}
		cobra.OnFinalize(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				slog.Error("could not shutdown OpenTelemetry", "error", err)
			}
		})
	}
}
