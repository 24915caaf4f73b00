package display

import (
	"fmt"
	"io"
	"regexp"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/longkey1/agentchat/internal/agentchat"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
)

// Terminal renders bubbles as labelled, styled lines on a writer.
type Terminal struct {
	// ShowUser controls whether user bubbles are printed. Interactive prompts
	// turn it off since the user's line is already on screen.
	ShowUser bool

	mu  sync.Mutex
	out io.Writer

	userLabel  lipgloss.Style
	agentLabel lipgloss.Style
	bold       lipgloss.Style
	italic     lipgloss.Style
}

// NewTerminal creates a terminal renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		ShowUser:   true,
		out:        out,
		userLabel:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		agentLabel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		bold:       r.NewStyle().Bold(true),
		italic:     r.NewStyle().Italic(true),
	}
}

// Append writes one bubble.
func (t *Terminal) Append(content string, role agentchat.Role) {
	if role == agentchat.RoleUser && !t.ShowUser {
		return
	}

	label := t.agentLabel.Render("Agent>")
	if role == agentchat.RoleUser {
		label = t.userLabel.Render("You>")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "\n%s %s\n", label, t.Format(content))
}

// Clear clears the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.out, "\033[H\033[2J")
}

// Format renders **bold** and *italic* markup with terminal styles.
func (t *Terminal) Format(content string) string {
	content = boldPattern.ReplaceAllStringFunc(content, func(m string) string {
		return t.bold.Render(boldPattern.FindStringSubmatch(m)[1])
	})
	return italicPattern.ReplaceAllStringFunc(content, func(m string) string {
		return t.italic.Render(italicPattern.FindStringSubmatch(m)[1])
	})
}

// Tee forwards every bubble to several renderers.
type Tee []agentchat.Renderer

// Append forwards to every renderer.
func (t Tee) Append(content string, role agentchat.Role) {
	for _, r := range t {
		r.Append(content, role)
	}
}

// AppendSequenced forwards to every renderer, keeping the sequence number for
// those that understand it.
func (t Tee) AppendSequenced(seq uint64, content string, role agentchat.Role) {
	for _, r := range t {
		if sr, ok := r.(agentchat.SequenceRenderer); ok {
			sr.AppendSequenced(seq, content, role)
			continue
		}
		r.Append(content, role)
	}
}

// Clear clears every renderer.
func (t Tee) Clear() {
	for _, r := range t {
		r.Clear()
	}
}
