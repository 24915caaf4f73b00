/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agentchat",
	Short: "Chat with the site's AI agent from the terminal",
	Long: `agentchat sends your questions to the agent webhook and prints its answers.
Replies may come back as JSON in several shapes, as plain text or as audio;
agentchat reduces each of them to a single answer.

You can configure the tool using a TOML configuration file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() { _ = logger.Sync() }()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/agentchat/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// userConfigDir returns $HOME/.config/agentchat
func userConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "agentchat"), nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	viper.SetEnvPrefix("AGENTCHAT")
	viper.AutomaticEnv()

	configDir, err := userConfigDir()
	cobra.CheckErr(err)

	defaultConfig := config.NewDefaultConfig(configDir)
	viper.SetDefault("webhook_url", defaultConfig.WebhookURL)
	viper.SetDefault("demo_url", defaultConfig.DemoURL)
	viper.SetDefault("audio_dir", defaultConfig.AudioDir)
	viper.SetDefault("player_command", defaultConfig.PlayerCommand)
	viper.SetDefault("suggestions_file", defaultConfig.SuggestionsFile)
	viper.SetDefault("contact_delay_ms", defaultConfig.ContactDelayMS)
	viper.SetDefault("preview_delay_ms", defaultConfig.PreviewDelayMS)

	viper.BindEnv("webhook_url", "AGENTCHAT_WEBHOOK_URL")
	viper.BindEnv("demo_url", "AGENTCHAT_DEMO_URL")
	viper.BindEnv("player_command", "AGENTCHAT_PLAYER_COMMAND")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		return
	}

	// Load system-wide config first (lower priority)
	viper.AddConfigPath("/etc/agentchat")
	viper.AddConfigPath("/usr/local/etc/agentchat")
	viper.SetConfigType("toml")
	viper.SetConfigName("config")

	systemConfigLoaded := false
	if err := viper.ReadInConfig(); err == nil {
		systemConfigLoaded = true
	}

	// Load user config (higher priority) - merge with system config
	viper.AddConfigPath(configDir)
	if systemConfigLoaded {
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				fmt.Fprintf(os.Stderr, "Error merging user config file: %v\n", err)
			}
		}
	} else if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

// initLogger builds the diagnostic logger. Only warnings and errors are shown
// unless --verbose is set.
func initLogger() {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := zc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		return
	}
	logger = l

	logger.Debug("Configuration loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.String("webhook_url", viper.GetString("webhook_url")),
		zap.String("audio_dir", viper.GetString("audio_dir")))
}
