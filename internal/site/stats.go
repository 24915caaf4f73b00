package site

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSteps is the number of ticks a counter takes to reach its value.
const DefaultSteps = 50

var leadingNumber = regexp.MustCompile(`^\s*[-+]?\d+(\.\d+)?`)

// StatKind is how a statistic is displayed while counting.
type StatKind int

const (
	StatPlain StatKind = iota
	StatPercent
	StatPlus
	StatThousandsPlus
	StatStatic // e.g. "24/7"; shown as-is, never animated
)

// Stat is a parsed hero statistic.
type Stat struct {
	Text  string
	Kind  StatKind
	Final float64
}

// ParseStat parses a statistic label such as "95%", "10K+", "500+", "24/7" or "42".
func ParseStat(text string) (Stat, error) {
	stat := Stat{Text: text}

	switch {
	case strings.Contains(text, "%"):
		stat.Kind = StatPercent
		n, err := parseLeading(text, true)
		if err != nil {
			return Stat{}, err
		}
		stat.Final = n
	case strings.Contains(text, "/"):
		stat.Kind = StatStatic
	case strings.Contains(text, "+"):
		stat.Kind = StatPlus
		digits := strings.NewReplacer("K", "", "+", "").Replace(text)
		n, err := parseLeading(digits, false)
		if err != nil {
			return Stat{}, err
		}
		if strings.Contains(text, "K") {
			stat.Kind = StatThousandsPlus
			n *= 1000
		}
		stat.Final = n
	default:
		stat.Kind = StatPlain
		n, err := parseLeading(text, false)
		if err != nil {
			return Stat{}, err
		}
		stat.Final = n
	}

	return stat, nil
}

func parseLeading(text string, fractional bool) (float64, error) {
	m := leadingNumber.FindString(text)
	if m == "" {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	m = strings.TrimSpace(m)
	if !fractional {
		if i := strings.IndexByte(m, '.'); i >= 0 {
			m = m[:i]
		}
	}
	return strconv.ParseFloat(m, 64)
}

// Format returns how the counter reads at value.
func (s Stat) Format(value float64) string {
	switch s.Kind {
	case StatPercent:
		return strconv.FormatFloat(value, 'f', 1, 64) + "%"
	case StatThousandsPlus:
		return strconv.Itoa(int(math.Floor(value/1000))) + "K+"
	case StatPlus:
		return strconv.Itoa(int(math.Floor(value))) + "+"
	case StatStatic:
		return s.Text
	default:
		return strconv.Itoa(int(math.Floor(value)))
	}
}

// Frames returns the counter text for each of steps ticks, ending at the final
// value. Static statistics have a single frame.
func (s Stat) Frames(steps int) []string {
	if s.Kind == StatStatic {
		return []string{s.Text}
	}
	if steps < 1 {
		steps = 1
	}

	frames := make([]string, 0, steps)
	for i := 1; i <= steps; i++ {
		value := s.Final * float64(i) / float64(steps)
		if i == steps {
			value = s.Final
		}
		frames = append(frames, s.Format(value))
	}
	return frames
}
