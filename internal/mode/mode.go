// Package mode holds the presentation mode shared by every section of the
// page and the provider that owns it.
package mode

import (
	"fmt"
	"strings"
)

// Mode is the presentation mode of the page.
type Mode int

const (
	// Art is the handwritten/collage presentation. It is the default.
	Art Mode = iota
	// Code is the terminal/IDE presentation.
	Code
)

// Default is the mode every provider starts in.
const Default = Art

// All lists the modes in toggle order.
var All = []Mode{Art, Code}

func (m Mode) String() string {
	switch m {
	case Art:
		return "art"
	case Code:
		return "code"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label is the human-facing name used by the toggle control.
func (m Mode) Label() string {
	switch m {
	case Code:
		return "Code"
	default:
		return "Art"
	}
}

// Opposite returns the mode a toggle moves to.
func (m Mode) Opposite() Mode {
	if m == Code {
		return Art
	}
	return Code
}

// BodyClass is the document-wide class token for the mode.
func (m Mode) BodyClass() string {
	return m.String() + "-mode"
}

// Parse converts "art" or "code" (case-insensitive) into a Mode.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "art":
		return Art, nil
	case "code":
		return Code, nil
	default:
		return Default, fmt.Errorf("mode: unknown presentation mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
