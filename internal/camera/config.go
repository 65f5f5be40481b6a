package camera

import "fmt"

// Config holds every tunable of the synthesis pipeline. Durations are
// in milliseconds, distances in viewport pixels, and speeds in pixels
// per second.
type Config struct {
	MinZoom     float64 `yaml:"min_zoom" json:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom" json:"max_zoom"`
	DefaultZoom float64 `yaml:"default_zoom" json:"default_zoom"`

	// ZoomDuration is the length of a zoom-in or zoom-out ramp;
	// HoldDuration is how long the camera stays on a target.
	ZoomDuration int64  `yaml:"zoom_duration_ms" json:"zoom_duration_ms"`
	HoldDuration int64  `yaml:"hold_duration_ms" json:"hold_duration_ms"`
	Easing       Easing `yaml:"easing" json:"easing"`

	// Follow-cam tuning. FollowIntensity scales how much of the
	// cursor's off-center offset the camera chases, Deadzone is the
	// fraction of each viewport dimension the cursor may roam without
	// moving the camera, and Anticipation is how far ahead of the
	// cursor the camera looks.
	FollowIntensity float64 `yaml:"follow_intensity" json:"follow_intensity"`
	Deadzone        float64 `yaml:"deadzone" json:"deadzone"`
	MaxPanSpeed     float64 `yaml:"max_pan_speed" json:"max_pan_speed"`
	Anticipation    int64   `yaml:"anticipation_ms" json:"anticipation_ms"`

	// Focus detection thresholds.
	HoverPauseThreshold   int64   `yaml:"hover_pause_threshold_ms" json:"hover_pause_threshold_ms"`
	HoverRadiusThreshold  float64 `yaml:"hover_radius_threshold" json:"hover_radius_threshold"`
	SlowMovementThreshold float64 `yaml:"slow_movement_threshold" json:"slow_movement_threshold"`
}

// DefaultConfig returns the tuning used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		MinZoom:               1.0,
		MaxZoom:               2.0,
		DefaultZoom:           1.3,
		ZoomDuration:          800,
		HoldDuration:          1500,
		Easing:                EaseInOutCubic,
		FollowIntensity:       0.5,
		Deadzone:              0.2,
		MaxPanSpeed:           200,
		Anticipation:          200,
		HoverPauseThreshold:   500,
		HoverRadiusThreshold:  50,
		SlowMovementThreshold: 100,
	}
}

// Validate rejects contradictory settings and clamps soft ranges in
// place: fractional knobs to [0, 1], the default zoom into the
// [min_zoom, max_zoom] band, and negative thresholds to zero.
func (c *Config) Validate() error {
	if c.MinZoom <= 0 {
		return fmt.Errorf("camera: min_zoom must be positive, got %g", c.MinZoom)
	}
	if c.MinZoom > c.MaxZoom {
		return fmt.Errorf("camera: min_zoom %g exceeds max_zoom %g", c.MinZoom, c.MaxZoom)
	}
	if c.ZoomDuration < 0 {
		return fmt.Errorf("camera: zoom_duration_ms must not be negative, got %d", c.ZoomDuration)
	}
	if c.HoldDuration < 0 {
		return fmt.Errorf("camera: hold_duration_ms must not be negative, got %d", c.HoldDuration)
	}
	if c.MaxPanSpeed < 0 {
		return fmt.Errorf("camera: max_pan_speed must not be negative, got %g", c.MaxPanSpeed)
	}

	c.DefaultZoom = clamp(c.DefaultZoom, c.MinZoom, c.MaxZoom)
	c.FollowIntensity = clamp(c.FollowIntensity, 0, 1)
	c.Deadzone = clamp(c.Deadzone, 0, 1)

	if c.Anticipation < 0 {
		c.Anticipation = 0
	}
	if c.HoverPauseThreshold < 0 {
		c.HoverPauseThreshold = 0
	}
	if c.HoverRadiusThreshold < 0 {
		c.HoverRadiusThreshold = 0
	}
	if c.SlowMovementThreshold < 0 {
		c.SlowMovementThreshold = 0
	}

	return nil
}
