/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/longkey1/agentchat/internal/agentchat"
	"github.com/longkey1/agentchat/internal/agentchat/config"
	"github.com/longkey1/agentchat/internal/agentchat/display"
	"github.com/longkey1/agentchat/internal/agentchat/suggest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive chat",
	Long: `Start an interactive chat with the agent.

Each line you type is sent as soon as you press Enter; you can keep typing while
earlier replies are outstanding. Replies are shown as they arrive, which may
not be the order the questions were sent in. '/history' shows the conversation
in send order.

The conversation lives only as long as the chat: nothing is saved.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		suggestions, err := suggest.Load(cfg.SuggestionsFile)
		if err != nil {
			return fmt.Errorf("loading suggestions: %w", err)
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "You> ",
			InterruptPrompt: "^C",
			EOFPrompt:       "/exit",
		})
		if err != nil {
			return fmt.Errorf("initializing prompt: %w", err)
		}
		defer rl.Close()

		if err := runInteractiveMode(cfg, rl, suggestions); err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
		return nil
	},
}

// chatSession is the state of one interactive chat.
type chatSession struct {
	dispatcher  *agentchat.Dispatcher
	list        *display.List
	renderer    display.Tee
	suggestions []suggest.Suggestion
	out         io.Writer
	group       *errgroup.Group
	ctx         context.Context
}

// runInteractiveMode reads lines until /exit or EOF and sends each one on its own goroutine
func runInteractiveMode(cfg *config.Config, rl *readline.Instance, suggestions []suggest.Suggestion) error {
	out := rl.Stderr()

	list := display.NewList()
	term := display.NewTerminal(rl.Stdout())
	term.ShowUser = false
	renderer := display.Tee{list, term}

	group, ctx := errgroup.WithContext(context.Background())
	s := &chatSession{
		dispatcher:  newDispatcher(cfg, renderer, display.NewSpinner(out)),
		list:        list,
		renderer:    renderer,
		suggestions: suggestions,
		out:         out,
		group:       group,
		ctx:         ctx,
	}

	fmt.Fprintf(out, "\n=== Chat [%s] ===\n", list.GetShortID())
	fmt.Fprintf(out, "Webhook: %s\n", cfg.WebhookURL)
	fmt.Fprintf(out, "Type '/help' for commands, '/suggest' for ideas, '/exit' or 'Ctrl+D' to quit\n")
	fmt.Fprintf(out, "===================================\n\n")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if s.handleSpecialCommand(input) {
				continue
			}
			break
		}

		s.send(input)
	}

	fmt.Fprintln(out, "Waiting for outstanding replies...")
	if err := group.Wait(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goodbye!")
	return nil
}

// send dispatches text without blocking the prompt
func (s *chatSession) send(text string) {
	s.group.Go(func() error {
		if _, err := s.dispatcher.Exchange(s.ctx, text); err != nil {
			logger.Debug("Message not sent", zap.Error(err))
		}
		return nil
	})
}

// handleSpecialCommand processes special commands in interactive mode
// Returns true to continue the loop, false to exit
func (s *chatSession) handleSpecialCommand(input string) bool {
	fields := strings.Fields(input)
	command := strings.ToLower(fields[0])

	switch command {
	case "/help", "/h":
		fmt.Fprintln(s.out, "\nAvailable commands:")
		fmt.Fprintln(s.out, "  /help, /h         - Show this help message")
		fmt.Fprintln(s.out, "  /suggest [N], /s  - List suggested questions, or send suggestion N")
		fmt.Fprintln(s.out, "  /history          - Show the conversation in send order")
		fmt.Fprintln(s.out, "  /info, /i         - Show chat information")
		fmt.Fprintln(s.out, "  /clear, /c        - Clear the conversation")
		fmt.Fprintln(s.out, "  /exit, /quit      - Exit interactive mode")
		fmt.Fprintln(s.out, "  Ctrl+D            - Exit interactive mode")
		fmt.Fprintln(s.out, "")
		return true

	case "/suggest", "/s":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "\nSuggested questions:")
			for i, sg := range s.suggestions {
				fmt.Fprintf(s.out, "  %d. %s - %s\n", i+1, sg.Label, sg.Question)
			}
			fmt.Fprintln(s.out, "")
			return true
		}
		question, err := suggest.Pick(s.suggestions, fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return true
		}
		fmt.Fprintf(s.out, "You> %s\n", question)
		s.send(question)
		return true

	case "/history":
		msgs := s.list.Ordered()
		if len(msgs) == 0 {
			fmt.Fprintln(s.out, "No messages yet.")
			return true
		}
		for _, msg := range msgs {
			roleLabel := "You"
			if msg.Role == agentchat.RoleAgent {
				roleLabel = "Agent"
			}
			fmt.Fprintf(s.out, "\n[%d] %s (%s):\n%s\n",
				msg.Seq,
				roleLabel,
				msg.RenderedAt.Format("15:04:05"),
				msg.Content,
			)
		}
		fmt.Fprintln(s.out, "")
		return true

	case "/info", "/i":
		fmt.Fprintln(s.out, "\nChat Information:")
		fmt.Fprintf(s.out, "  ID: %s\n", s.list.GetShortID())
		fmt.Fprintf(s.out, "  Full ID: %s\n", s.list.ID)
		fmt.Fprintf(s.out, "  Messages: %d\n", s.list.Len())
		fmt.Fprintln(s.out, "")
		return true

	case "/clear", "/c":
		s.renderer.Clear()
		return true

	case "/exit", "/quit", "/q":
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type '/help' for available commands)\n", command)
		return true
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
