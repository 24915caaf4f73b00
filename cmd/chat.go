/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/longkey1/agentchat/internal/agentchat"
	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/spf13/cobra"
)

var (
	useEditor bool
	quiet     bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the agent",
	Long: `Send a message to the agent webhook and print the reply.
This command performs a single exchange.

For an interactive conversation, use 'agentchat start' instead.

If no message is provided as an argument, it reads from stdin.
If --editor flag is set, it opens the default editor (from EDITOR environment variable) to compose the message.

Failures are never fatal: a connection problem or an unreadable reply is
reported as the agent's answer, with details in the log (--verbose).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Get message from arguments, editor, or stdin
		var message string
		if useEditor {
			message, err = getMessageFromEditor()
			if err != nil {
				return fmt.Errorf("getting message from editor: %w", err)
			}
		} else if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = string(input)
		}

		var renderer agentchat.Renderer = display.NewTerminal(os.Stdout)
		var pending agentchat.PendingIndicator = display.NewSpinner(os.Stderr)
		if quiet {
			renderer = display.NewList()
			pending = nil
		}

		d := newDispatcher(cfg, renderer, pending)
		reply, err := d.Exchange(context.Background(), message)
		if errors.Is(err, agentchat.ErrEmptyMessage) {
			return fmt.Errorf("nothing to send: the message is empty")
		}

		if quiet {
			fmt.Println(agentchat.ReplyText(reply))
		}
		return nil
	},
}

// getMessageFromEditor opens the default editor and returns the edited message
func getMessageFromEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", fmt.Errorf("EDITOR environment variable is not set")
	}

	tmpFile, err := os.CreateTemp("", "agentchat-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %v", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %v", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %v", err)
	}

	return strings.TrimSpace(string(content)), nil
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVarP(&useEditor, "editor", "e", false, "Use default editor (from EDITOR environment variable) to compose message")
	chatCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the agent's answer, without labels or typing indicator")
}
