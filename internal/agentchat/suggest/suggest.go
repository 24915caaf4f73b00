// Package suggest loads the canned questions offered next to the chat input.
package suggest

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Suggestion is one canned question
type Suggestion struct {
	Label    string `toml:"label"`
	Question string `toml:"question"`
}

// File represents the structure of a TOML suggestions file:
//
//	[[suggestion]]
//	label = "Pricing"
//	question = "How much does it cost?"
type File struct {
	Suggestions []Suggestion `toml:"suggestion"`
}

// Defaults returns the built-in suggestions.
func Defaults() []Suggestion {
	return []Suggestion{
		{Label: "Services", Question: "What AI automation services do you offer?"},
		{Label: "Use cases", Question: "How can AI agents help my business?"},
		{Label: "Data", Question: "Can you help me analyze my sales data?"},
		{Label: "Getting started", Question: "How do I get started?"},
	}
}

// Load reads suggestions from path. A missing file yields the built-in suggestions.
func Load(path string) ([]Suggestion, error) {
	if path == "" {
		return Defaults(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Defaults(), nil
	}

	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error decoding suggestions file: %v", err)
	}

	var out []Suggestion
	for i, s := range file.Suggestions {
		s.Question = strings.TrimSpace(s.Question)
		if s.Question == "" {
			return nil, fmt.Errorf("suggestion %d has no question", i+1)
		}
		if s.Label == "" {
			s.Label = s.Question
		}
		out = append(out, s)
	}
	return out, nil
}

// Pick returns the question of the suggestion with the given 1-based index.
func Pick(suggestions []Suggestion, index string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return "", fmt.Errorf("invalid suggestion number: %s", index)
	}
	if n < 1 || n > len(suggestions) {
		return "", fmt.Errorf("suggestion number out of range: %d (1-%d)", n, len(suggestions))
	}
	return suggestions[n-1].Question, nil
}
