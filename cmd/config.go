package cmd

import (
	"fmt"
	"strings"

	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFields = "configfile, webhook_url, demo_url, audio_dir, player_command, suggestions_file, contact_delay_ms, preview_delay_ms"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  agentchat config               # Show all configuration
  agentchat config webhook_url   # Show only the webhook URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) > 0 {
			value, ok := configField(cfg, args[0])
			if !ok {
				return fmt.Errorf("unknown field: %s\nAvailable fields: %s", args[0], configFields)
			}
			fmt.Println(value)
			return nil
		}

		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("WebhookURL: %s\n", cfg.WebhookURL)
		fmt.Printf("DemoURL: %s\n", cfg.DemoURL)
		fmt.Printf("AudioDir: %s\n", cfg.AudioDir)
		fmt.Printf("PlayerCommand: %s\n", cfg.PlayerCommand)
		fmt.Printf("SuggestionsFile: %s\n", cfg.SuggestionsFile)
		fmt.Printf("ContactDelayMS: %d\n", cfg.ContactDelayMS)
		fmt.Printf("PreviewDelayMS: %d\n", cfg.PreviewDelayMS)
		return nil
	},
}

// configField returns the value of a single configuration field
func configField(cfg *config.Config, field string) (string, bool) {
	switch strings.ToLower(field) {
	case "configfile":
		return viper.ConfigFileUsed(), true
	case "webhook_url", "webhookurl":
		return cfg.WebhookURL, true
	case "demo_url", "demourl":
		return cfg.DemoURL, true
	case "audio_dir", "audiodir":
		return cfg.AudioDir, true
	case "player_command", "playercommand":
		return cfg.PlayerCommand, true
	case "suggestions_file", "suggestionsfile":
		return cfg.SuggestionsFile, true
	case "contact_delay_ms", "contactdelayms":
		return fmt.Sprint(cfg.ContactDelayMS), true
	case "preview_delay_ms", "previewdelayms":
		return fmt.Sprint(cfg.PreviewDelayMS), true
	default:
		return "", false
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
