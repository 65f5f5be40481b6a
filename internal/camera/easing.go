package camera

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Easing identifies the interpolation curve applied between a keyframe
// and its successor.
type Easing uint8

const (
	EaseLinear Easing = iota
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInOutQuad
)

var easingNames = map[Easing]string{
	EaseLinear:     "linear",
	EaseInCubic:    "ease-in-cubic",
	EaseOutCubic:   "ease-out-cubic",
	EaseInOutCubic: "ease-in-out-cubic",
	EaseInOutQuad:  "ease-in-out-quad",
}

func (e Easing) String() string {
	if name, ok := easingNames[e]; ok {
		return name
	}
	return "linear"
}

// ParseEasing maps a curve name to its Easing value.
func ParseEasing(name string) (Easing, error) {
	for e, n := range easingNames {
		if n == name {
			return e, nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown easing %q", name)
}

// Apply evaluates the curve at progress t in [0, 1].
func (e Easing) Apply(t float64) float64 {
	switch e {
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	default:
		return t
	}
}

func (e Easing) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e Easing) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

func (e *Easing) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return e.UnmarshalText([]byte(name))
}
