package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/longkey1/agentchat/internal/site"
	"github.com/spf13/cobra"
)

var previewRounds int

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play the scripted chat preview",
	Long: `Play the short scripted conversation shown on the site's home page.

With --rounds 0 the preview loops until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		p := site.NewPreview(display.NewTerminal(os.Stdout), display.NewSpinner(os.Stderr))
		p.TypingDelay = time.Duration(cfg.PreviewDelayMS) * time.Millisecond
		return p.Run(ctx, previewRounds)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewRounds, "rounds", 1, "Number of times to play the script (0 = loop)")
}
