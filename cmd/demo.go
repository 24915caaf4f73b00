package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Initialize the demo workflow",
	Long: `Call the demo webhook (demo_url) to initialize the demo workflow.
The response body is logged; run with --verbose to see it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.DemoURL == "" {
			return fmt.Errorf("demo URL is not configured. Set it in config file (demo_url) or environment variable (AGENTCHAT_DEMO_URL)")
		}

		fmt.Fprintln(os.Stderr, "Loading Demo...")
		d := newDispatcher(cfg, display.NewList(), nil)
		if _, err := d.Ping(context.Background(), cfg.DemoURL); err != nil {
			logger.Error("Error calling webhook", zap.Error(err))
			return fmt.Errorf("failed to load demo. Please try again later")
		}

		fmt.Println("Demo initialized successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
