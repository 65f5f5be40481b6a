package camera

import "github.com/screenreel/screenreel/internal/telemetry"

// ZoomFromClicks synthesizes the basic zoom track: the camera rests at
// minimum zoom on the viewport center and punches in on every click.
// Each click contributes a zoom-in ramp, a hold, and a zoom-out ramp;
// the list is anchored by a centered keyframe at time zero and sorted
// by time. All keyframes carry the configured easing.
func ZoomFromClicks(clicks []telemetry.ClickEvent, vw, vh int, cfg Config) []Keyframe {
	centerX := float64(vw) / 2
	centerY := float64(vh) / 2

	keyframes := make([]Keyframe, 0, len(clicks)*4+1)
	keyframes = append(keyframes, Keyframe{
		Time:   0,
		Zoom:   cfg.MinZoom,
		X:      centerX,
		Y:      centerY,
		Easing: cfg.Easing,
	})

	for _, c := range clicks {
		keyframes = append(keyframes,
			Keyframe{Time: c.T - cfg.ZoomDuration, Zoom: cfg.MinZoom, X: centerX, Y: centerY, Easing: cfg.Easing},
			Keyframe{Time: c.T, Zoom: cfg.DefaultZoom, X: c.X, Y: c.Y, Easing: cfg.Easing},
			Keyframe{Time: c.T + cfg.HoldDuration, Zoom: cfg.DefaultZoom, X: c.X, Y: c.Y, Easing: cfg.Easing},
			Keyframe{Time: c.T + cfg.HoldDuration + cfg.ZoomDuration, Zoom: cfg.MinZoom, X: centerX, Y: centerY, Easing: cfg.Easing},
		)
	}

	sortKeyframes(keyframes)
	return keyframes
}
