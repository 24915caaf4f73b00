// Package site holds the behaviors of the marketing pages around the chat widget:
// the contact form, the hero statistics and the scripted chat preview.
package site

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ThankYouText is shown after a contact form submission.
const ThankYouText = "Thank you for your message! We'll get back to you soon."

// ErrMissingFields is returned when a required contact field is empty.
var ErrMissingFields = errors.New("Please fill in all required fields.")

// ContactForm is a contact form submission. Company is optional.
type ContactForm struct {
	Name    string
	Email   string
	Company string
	Message string
}

// Validate checks that name, email and message are filled in.
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrMissingFields
	}
	return nil
}

// Submit pretends to send the form: nothing leaves the machine, it just waits
// delay and returns the thank-you text.
func (f ContactForm) Submit(ctx context.Context, delay time.Duration) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return ThankYouText, nil
	}
}
