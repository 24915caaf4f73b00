package site

import (
	"context"
	"time"

	"github.com/longkey1/agentchat/internal/agentchat"
)

// PreviewLine is one line of the scripted chat preview.
type PreviewLine struct {
	Role agentchat.Role
	Text string
}

// PreviewScript is the conversation shown in the hero section.
var PreviewScript = []PreviewLine{
	{Role: agentchat.RoleUser, Text: "Can you help me analyze my sales data?"},
	{Role: agentchat.RoleAgent, Text: "Of course! I'd be happy to help analyze your sales data. Please share the data with me."},
	{Role: agentchat.RoleUser, Text: "Here's my Q3 sales report"},
	{Role: agentchat.RoleAgent, Text: "✅ I've analyzed your Q3 data. Revenue is up 23% compared to Q2, with software sales leading growth."},
}

// Preview replays PreviewScript into a renderer as if it were typed live.
type Preview struct {
	Renderer agentchat.Renderer
	Pending  agentchat.PendingIndicator

	StartDelay  time.Duration // Before the first line
	TypingDelay time.Duration // Pending indicator shown before each line
	PauseDelay  time.Duration // After each line
}

// NewPreview creates a preview with the site's timings.
func NewPreview(renderer agentchat.Renderer, pending agentchat.PendingIndicator) *Preview {
	return &Preview{
		Renderer:    renderer,
		Pending:     pending,
		StartDelay:  2 * time.Second,
		TypingDelay: 1500 * time.Millisecond,
		PauseDelay:  3 * time.Second,
	}
}

// Run plays the script rounds times, clearing the renderer between rounds.
// rounds <= 0 loops until ctx is done, which is then not an error.
func (p *Preview) Run(ctx context.Context, rounds int) error {
	err := p.run(ctx, rounds)
	if err != nil && rounds <= 0 && ctx.Err() != nil {
		return nil
	}
	return err
}

func (p *Preview) run(ctx context.Context, rounds int) error {
	if err := sleep(ctx, p.StartDelay); err != nil {
		return err
	}

	for round := 0; rounds <= 0 || round < rounds; round++ {
		if round > 0 {
			p.Renderer.Clear()
		}
		for i, line := range PreviewScript {
			if err := p.typeLine(ctx, line); err != nil {
				return err
			}
			if rounds > 0 && round == rounds-1 && i == len(PreviewScript)-1 {
				break
			}
			if err := sleep(ctx, p.PauseDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Preview) typeLine(ctx context.Context, line PreviewLine) error {
	if p.Pending != nil {
		p.Pending.Show()
	}
	err := sleep(ctx, p.TypingDelay)
	if p.Pending != nil {
		p.Pending.Hide()
	}
	if err != nil {
		return err
	}
	p.Renderer.Append(line.Text, line.Role)
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
