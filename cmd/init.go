package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/suggest"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/agentchat/config.toml by default,
together with a suggestions.toml holding the built-in suggested questions.
You can specify a different location using the --config option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := userConfigDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %v", err)
		}

		configFile := filepath.Join(configDir, "config.toml")
		if cfgFile != "" {
			configFile = cfgFile
			configDir = filepath.Dir(configFile)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %v", err)
		}

		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("config file already exists at: %s", configFile)
		}

		cfg := config.NewDefaultConfig(configDir)
		if err := writeTOML(configFile, cfg); err != nil {
			return err
		}
		fmt.Printf("Configuration file created at: %s\n", configFile)

		if _, err := os.Stat(cfg.SuggestionsFile); os.IsNotExist(err) {
			if err := writeTOML(cfg.SuggestionsFile, suggest.File{Suggestions: suggest.Defaults()}); err != nil {
				return err
			}
			fmt.Printf("Suggestions file created at: %s\n", cfg.SuggestionsFile)
		}
		return nil
	},
}

func writeTOML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %v", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
