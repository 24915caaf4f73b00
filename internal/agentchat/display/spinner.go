package display

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a pending indicator drawn on a terminal line. It stays visible while
// at least one exchange is outstanding.
type Spinner struct {
	out      io.Writer
	label    string
	interval time.Duration

	mu      sync.Mutex
	active  int
	done    chan struct{}
	stopped chan struct{}
}

// NewSpinner creates a spinner writing to out.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{
		out:      out,
		label:    "Agent is typing...",
		interval: 80 * time.Millisecond,
	}
}

// Show starts the animation if it is not already running.
func (s *Spinner) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active++
	if s.active > 1 {
		return
	}
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})
	go s.run(s.done, s.stopped)
}

// Hide stops the animation once every Show has been matched. It returns after
// the spinner line has been cleared.
func (s *Spinner) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == 0 {
		return
	}
	s.active--
	if s.active > 0 {
		return
	}
	close(s.done)
	<-s.stopped
}

// Active returns the number of outstanding Show calls.
func (s *Spinner) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Spinner) run(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		fmt.Fprintf(s.out, "\r%s %s", spinnerFrames[i], s.label)
		i = (i + 1) % len(spinnerFrames)

		select {
		case <-done:
			// Clear the spinner line
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}
