package camera

import (
	"math"
	"sort"
)

// Keyframe pins the camera to a target at a point in time. X and Y are
// the viewport pixel the camera centers on, Time is in milliseconds,
// and Easing shapes the segment from this keyframe to the next.
type Keyframe struct {
	Time   int64   `yaml:"time_ms" json:"time_ms"`
	Zoom   float64 `yaml:"zoom" json:"zoom"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Easing Easing  `yaml:"easing" json:"easing"`
}

// Pose is the camera state at one instant, produced by sampling a
// keyframe sequence.
type Pose struct {
	Zoom float64
	X    float64
	Y    float64
}

// sortKeyframes orders keyframes by time, keeping insertion order for
// equal timestamps.
func sortKeyframes(keyframes []Keyframe) {
	sort.SliceStable(keyframes, func(i, j int) bool {
		return keyframes[i].Time < keyframes[j].Time
	})
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
