package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultWebhookURL is the production chat webhook of the site.
	DefaultWebhookURL = "https://ethandu.app.n8n.cloud/webhook/5177bccb-7de7-4510-b3c0-a4d2522e9a18"
	// DefaultDemoURL is the test webhook hit by the "Watch Demo" button.
	DefaultDemoURL = "https://ethandu.app.n8n.cloud/webhook-test/5177bccb-7de7-4510-b3c0-a4d2522e9a18"
)

// Config holds the configuration for the chat client
type Config struct {
	WebhookURL      string `toml:"webhook_url" mapstructure:"webhook_url"`
	DemoURL         string `toml:"demo_url" mapstructure:"demo_url"`
	AudioDir        string `toml:"audio_dir" mapstructure:"audio_dir"`
	PlayerCommand   string `toml:"player_command" mapstructure:"player_command"`     // Empty = save audio only
	SuggestionsFile string `toml:"suggestions_file" mapstructure:"suggestions_file"` // Empty = built-in suggestions
	ContactDelayMS  int    `toml:"contact_delay_ms" mapstructure:"contact_delay_ms"` // Simulated contact form submit delay
	PreviewDelayMS  int    `toml:"preview_delay_ms" mapstructure:"preview_delay_ms"` // Typing time per preview line
}

// GetWebhookURL returns the chat webhook URL
func (c *Config) GetWebhookURL() string {
	return c.WebhookURL
}

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig(configDir string) *Config {
	return &Config{
		WebhookURL:      DefaultWebhookURL,
		DemoURL:         DefaultDemoURL,
		AudioDir:        filepath.Join(configDir, "audio"),
		PlayerCommand:   "",
		SuggestionsFile: filepath.Join(configDir, "suggestions.toml"),
		ContactDelayMS:  1500,
		PreviewDelayMS:  1500,
	}
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	config.WebhookURL = expandEnvVar(config.WebhookURL)
	config.DemoURL = expandEnvVar(config.DemoURL)
	if config.WebhookURL == "" {
		return nil, fmt.Errorf("webhook URL is not configured. Set it in config file (webhook_url) or environment variable (AGENTCHAT_WEBHOOK_URL)")
	}

	for _, path := range []*string{&config.AudioDir, &config.SuggestionsFile} {
		if *path == "" {
			continue
		}
		absPath, err := ResolvePath(*path)
		if err != nil {
			return nil, fmt.Errorf("error resolving path '%s': %v", *path, err)
		}
		*path = absPath
	}

	return config, nil
}
