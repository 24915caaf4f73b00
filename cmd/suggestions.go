package cmd

import (
	"fmt"
	"os"

	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/suggest"
	"github.com/spf13/cobra"
)

var withFile bool

// suggestionsCmd represents the suggestions command
var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List suggested questions",
	Long: `List the suggested questions offered in interactive mode.

Suggestions are read from the TOML file set by suggestions_file:

[[suggestion]]
label = "Pricing"
question = "How much does it cost?"

If the file does not exist, built-in suggestions are used.
Send one in interactive mode with '/suggest <number>'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		suggestions, err := suggest.Load(cfg.SuggestionsFile)
		if err != nil {
			return fmt.Errorf("loading suggestions: %w", err)
		}

		if withFile {
			if _, err := os.Stat(cfg.SuggestionsFile); err == nil {
				fmt.Printf("From %s:\n\n", cfg.SuggestionsFile)
			} else {
				fmt.Printf("Built-in (no file at %s):\n\n", cfg.SuggestionsFile)
			}
		}

		for i, s := range suggestions {
			fmt.Printf("  %d. %s\n     %s\n", i+1, s.Label, s.Question)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestionsCmd)
	suggestionsCmd.Flags().BoolVar(&withFile, "with-file", false, "Show which file the suggestions come from")
}
