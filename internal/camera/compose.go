package camera

// ComposeFocus overlays focus-driven zoom moves onto a follow baseline.
// For every focus point three windows of baseline keyframes are
// rewritten: an ease-out approach that zooms and pans toward the focus
// target, a hold pinned to it, and an ease-in-out zoom release. The
// release window only restores zoom; pan stays under baseline control
// so the camera resumes tracking where the cursor actually is.
//
// Each window is computed from the pristine baseline values, so
// overlapping focus points resolve last-write-wins in time order.
func ComposeFocus(baseline []Keyframe, points []FocusPoint, cfg Config) []Keyframe {
	out := make([]Keyframe, len(baseline))
	copy(out, baseline)

	rampSpan := float64(cfg.ZoomDuration)
	if rampSpan < 1 {
		rampSpan = 1
	}

	for _, p := range points {
		targetZoom := cfg.DefaultZoom
		if p.Importance == ImportanceHigh {
			targetZoom = cfg.MaxZoom
		}

		zoomInStart := p.Time - cfg.ZoomDuration
		holdEnd := p.Time + p.Duration
		zoomOutEnd := holdEnd + cfg.ZoomDuration

		for i := range out {
			t := out[i].Time
			base := baseline[i]

			switch {
			case t >= zoomInStart && t <= p.Time:
				progress := EaseOutCubic.Apply(clamp(float64(t-zoomInStart)/rampSpan, 0, 1))
				out[i].Zoom = lerp(base.Zoom, targetZoom, progress)
				out[i].X = lerp(base.X, p.X, progress)
				out[i].Y = lerp(base.Y, p.Y, progress)

			case t > p.Time && t <= holdEnd:
				out[i].Zoom = targetZoom
				out[i].X = p.X
				out[i].Y = p.Y

			case t > holdEnd && t <= zoomOutEnd:
				progress := EaseInOutCubic.Apply(clamp(float64(t-holdEnd)/rampSpan, 0, 1))
				out[i].Zoom = lerp(targetZoom, base.Zoom, progress)
			}
		}
	}

	return out
}
