package models

import (
	"encoding"
	"fmt"
)

// Mode selects which items a review session draws from the target set
type Mode string

const (
	// ModeNormal reviews every target item in random order
	ModeNormal Mode = "normal"
	// ModeWeak reviews items that are not yet mastered, lowest score first
	ModeWeak Mode = "weak"
	// ModeIntensive reviews only items with a negative score, lowest first
	ModeIntensive Mode = "intensive"
)

var (
	_ fmt.Stringer             = Mode("")
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

// Modes lists the valid modes in menu order
func Modes() []Mode {
	return []Mode{ModeNormal, ModeWeak, ModeIntensive}
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeNormal, ModeWeak, ModeIntensive:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts text into a Mode
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mode %q (expected normal, weak or intensive)", s)
	}
	return m, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Title is the human-facing name shown in menus
func (m Mode) Title() string {
	switch m {
	case ModeWeak:
		return "Weak spots"
	case ModeIntensive:
		return "Intensive"
	default:
		return "Normal"
	}
}

// EmptyMessage explains why a selection in this mode came back empty
func (m Mode) EmptyMessage() string {
	msg := "There are no items to review."
	switch m {
	case ModeWeak:
		msg += " (Everything is mastered!)"
	case ModeIntensive:
		msg += " (No weak items!)"
	}
	return msg
}
