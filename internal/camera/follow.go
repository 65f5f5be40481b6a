package camera

import (
	"math"

	"github.com/screenreel/screenreel/internal/telemetry"
)

const (
	// Follow-cam runs on a fixed frame clock regardless of how sparse
	// the recorded telemetry is.
	followFrameRate = 60.0
	frameDurMs      = 1000.0 / followFrameRate

	// panClampRatio bounds the pan offset to a fraction of each
	// viewport dimension so the camera cannot wander off the content.
	panClampRatio = 0.25

	// panSmoothing is the first-order approach factor applied to the
	// speed-limited delta each frame.
	panSmoothing = 0.3
)

// FollowPath synthesizes a fixed-zoom pan track that trails the cursor.
// The camera looks ahead by the anticipation window, ignores movement
// inside the dead zone, and approaches its target with a speed-limited
// first-order step. Fewer than two samples yield a single centered
// keyframe.
func FollowPath(samples []telemetry.CursorSample, vw, vh int, cfg Config) []Keyframe {
	centerX := float64(vw) / 2
	centerY := float64(vh) / 2

	if len(samples) < 2 {
		return []Keyframe{{Time: 0, Zoom: cfg.MinZoom, X: centerX, Y: centerY, Easing: EaseLinear}}
	}

	frames := resampleAtFrameRate(samples)
	lookahead := int(math.Round(float64(cfg.Anticipation) * followFrameRate / 1000))

	halfDeadX := cfg.Deadzone * float64(vw) / 2
	halfDeadY := cfg.Deadzone * float64(vh) / 2
	maxStep := cfg.MaxPanSpeed * frameDurMs / 1000
	maxPanX := panClampRatio * float64(vw)
	maxPanY := panClampRatio * float64(vh)

	keyframes := make([]Keyframe, 0, len(frames))
	var panX, panY float64

	for i, f := range frames {
		target := frames[min(i+lookahead, len(frames)-1)]

		panX = approachPan(panX, target.x-centerX, halfDeadX, maxStep, cfg.FollowIntensity)
		panY = approachPan(panY, target.y-centerY, halfDeadY, maxStep, cfg.FollowIntensity)

		panX = clamp(panX, -maxPanX, maxPanX)
		panY = clamp(panY, -maxPanY, maxPanY)

		keyframes = append(keyframes, Keyframe{
			Time:   f.t,
			Zoom:   cfg.MinZoom,
			X:      centerX + panX,
			Y:      centerY + panY,
			Easing: EaseLinear,
		})
	}

	return keyframes
}

// approachPan moves the current pan toward the dead-zone-adjusted
// target. The step is capped at maxStep per frame and softened by the
// smoothing factor so the camera settles instead of oscillating.
func approachPan(current, offset, halfDead, maxStep, intensity float64) float64 {
	var target float64
	switch {
	case offset > halfDead:
		target = (offset - halfDead) * intensity
	case offset < -halfDead:
		target = (offset + halfDead) * intensity
	}

	delta := clamp(target-current, -maxStep, maxStep)
	return current + delta*panSmoothing
}

// framePoint is one resampled cursor position on the frame clock.
type framePoint struct {
	t    int64
	x, y float64
}

// resampleAtFrameRate walks the sparse samples and linearly
// interpolates a position for every frame tick between the first and
// last timestamps.
func resampleAtFrameRate(samples []telemetry.CursorSample) []framePoint {
	first := samples[0]
	span := float64(samples[len(samples)-1].T - first.T)

	frames := make([]framePoint, 0, int(span/frameDurMs)+2)
	seg := 0

	for i := 0; ; i++ {
		offset := float64(i) * frameDurMs
		if offset > span+frameDurMs/2 {
			break
		}
		if offset > span {
			offset = span
		}
		ft := float64(first.T) + offset

		for seg < len(samples)-2 && float64(samples[seg+1].T) < ft {
			seg++
		}
		a, b := samples[seg], samples[seg+1]
		dt := float64(b.T - a.T)
		if dt < 1 {
			dt = 1
		}
		u := clamp((ft-float64(a.T))/dt, 0, 1)

		frames = append(frames, framePoint{
			t: int64(math.Round(ft)),
			x: lerp(a.X, b.X, u),
			y: lerp(a.Y, b.Y, u),
		})
	}

	return frames
}
