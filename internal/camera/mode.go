package camera

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mode selects the synthesis strategy for a session.
type Mode uint8

const (
	// ModeNone disables camera motion entirely.
	ModeNone Mode = iota
	// ModeBasic zooms in and out around each click.
	ModeBasic
	// ModeFollow pans a fixed-zoom camera after the cursor.
	ModeFollow
	// ModeSmart layers focus-driven zooms on top of the follow baseline.
	ModeSmart
)

var modeNames = map[Mode]string{
	ModeNone:   "none",
	ModeBasic:  "basic",
	ModeFollow: "follow",
	ModeSmart:  "smart",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "none"
}

// ParseMode maps a mode name to its Mode value.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("unknown camera mode %q", name)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(name))
}
