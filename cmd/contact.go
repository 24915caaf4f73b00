package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/longkey1/agentchat/internal/site"
	"github.com/spf13/cobra"
)

var contactForm site.ContactForm

// contactCmd represents the contact command
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Fill in the contact form",
	Long: `Fill in the site's contact form.

Name, email and message are required; company is optional.
The form is not sent anywhere: submission is simulated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := contactForm.Validate(); err != nil {
			return err
		}

		fmt.Fprintln(os.Stderr, "Sending...")
		spinner := display.NewSpinner(os.Stderr)
		spinner.Show()
		text, err := contactForm.Submit(context.Background(), time.Duration(cfg.ContactDelayMS)*time.Millisecond)
		spinner.Hide()
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)

	contactCmd.Flags().StringVar(&contactForm.Name, "name", "", "Your name (required)")
	contactCmd.Flags().StringVar(&contactForm.Email, "email", "", "Your email address (required)")
	contactCmd.Flags().StringVar(&contactForm.Company, "company", "", "Your company")
	contactCmd.Flags().StringVar(&contactForm.Message, "message", "", "Your message (required)")
}
