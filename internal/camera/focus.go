package camera

import (
	"sort"

	"github.com/screenreel/screenreel/internal/telemetry"
)

// Importance grades how strongly a focus point should pull the camera.
type Importance uint8

const (
	ImportanceLow Importance = iota
	ImportanceMedium
	ImportanceHigh
)

func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceMedium:
		return "medium"
	default:
		return "low"
	}
}

// FocusReason records which detector produced a focus point.
type FocusReason uint8

const (
	ReasonClick FocusReason = iota
	ReasonHover
	ReasonSlowMovement
)

func (r FocusReason) String() string {
	switch r {
	case ReasonClick:
		return "click"
	case ReasonHover:
		return "hover"
	default:
		return "slow_movement"
	}
}

// FocusPoint marks a moment and viewport position worth zooming into.
// Duration is how long the camera should stay there, in milliseconds.
type FocusPoint struct {
	Time       int64
	X          float64
	Y          float64
	Importance Importance
	Reason     FocusReason
	Duration   int64
}

func (i Importance) weight() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	default:
		return 1
	}
}

func (r FocusReason) weight() int {
	switch r {
	case ReasonClick:
		return 3
	case ReasonHover:
		return 2
	default:
		return 1
	}
}

// score ranks competing focus points; higher wins.
func (p FocusPoint) score() int {
	return p.Importance.weight() + p.Reason.weight()
}

const (
	// hoverHighImportanceMs promotes a hover to high importance once it
	// lasts this long.
	hoverHighImportanceMs = 1500

	// slowRunMinDurationMs is the shortest slow-movement run that
	// counts as deliberate tracing rather than a transition.
	slowRunMinDurationMs = 1000
)

// DetectFocusPoints extracts moments worth zooming into: hover pauses,
// stretches of slow deliberate movement, and clicks. Candidates are
// merged so at most one focus point is active at any time. Fewer than
// two samples yield nothing.
func DetectFocusPoints(samples []telemetry.CursorSample, clicks []telemetry.ClickEvent, cfg Config) []FocusPoint {
	if len(samples) < 2 {
		return nil
	}

	points := detectHoverPauses(samples, cfg)
	points = append(points, detectSlowMovement(samples, cfg)...)
	for _, c := range clicks {
		points = append(points, FocusPoint{
			Time:       c.T,
			X:          c.X,
			Y:          c.Y,
			Importance: ImportanceHigh,
			Reason:     ReasonClick,
			Duration:   cfg.HoldDuration,
		})
	}

	return mergeFocusPoints(points)
}

// detectHoverPauses finds windows where consecutive samples stay within
// the hover radius of a drifting centroid. The centroid is a halving
// blend rather than a true mean, so it follows late drift inside the
// window.
func detectHoverPauses(samples []telemetry.CursorSample, cfg Config) []FocusPoint {
	var points []FocusPoint

	cx, cy := samples[0].X, samples[0].Y
	windowStart := samples[0].T
	windowEnd := samples[0].T

	flush := func() {
		duration := windowEnd - windowStart
		if duration < cfg.HoverPauseThreshold {
			return
		}

		importance := ImportanceMedium
		if duration > hoverHighImportanceMs {
			importance = ImportanceHigh
		}
		capped := duration
		if capped > cfg.HoldDuration {
			capped = cfg.HoldDuration
		}

		points = append(points, FocusPoint{
			Time:       windowStart + duration/2,
			X:          cx,
			Y:          cy,
			Importance: importance,
			Reason:     ReasonHover,
			Duration:   capped,
		})
	}

	for _, s := range samples[1:] {
		if dist(s.X, s.Y, cx, cy) <= cfg.HoverRadiusThreshold {
			cx = (cx + s.X) / 2
			cy = (cy + s.Y) / 2
			windowEnd = s.T
			continue
		}
		flush()
		cx, cy = s.X, s.Y
		windowStart = s.T
		windowEnd = s.T
	}
	flush()

	return points
}

// detectSlowMovement groups consecutive intervals whose speed sits
// between zero and the slow-movement threshold. Outright stillness is
// excluded so hover detection keeps ownership of pauses.
func detectSlowMovement(samples []telemetry.CursorSample, cfg Config) []FocusPoint {
	var points []FocusPoint

	runStart := -1

	flush := func(endIdx int) {
		if runStart < 0 {
			return
		}
		defer func() { runStart = -1 }()

		first, last := samples[runStart], samples[endIdx]
		duration := last.T - first.T
		if duration < slowRunMinDurationMs {
			return
		}

		var sx, sy float64
		run := samples[runStart : endIdx+1]
		for _, s := range run {
			sx += s.X
			sy += s.Y
		}

		points = append(points, FocusPoint{
			Time:       first.T + duration/2,
			X:          sx / float64(len(run)),
			Y:          sy / float64(len(run)),
			Importance: ImportanceMedium,
			Reason:     ReasonSlowMovement,
			Duration:   duration,
		})
	}

	for i := 1; i < len(samples); i++ {
		dt := float64(samples[i].T - samples[i-1].T)
		if dt < 1 {
			dt = 1
		}
		speed := dist(samples[i].X, samples[i].Y, samples[i-1].X, samples[i-1].Y) * 1000 / dt

		if speed > 0 && speed <= cfg.SlowMovementThreshold {
			if runStart < 0 {
				runStart = i - 1
			}
			continue
		}
		flush(i - 1)
	}
	flush(len(samples) - 1)

	return points
}

// mergeFocusPoints sorts candidates by time and resolves overlaps so at
// most one focus point is active at any moment. On overlap the higher
// score wins; ties keep the earlier point.
func mergeFocusPoints(points []FocusPoint) []FocusPoint {
	if len(points) == 0 {
		return nil
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Time < points[j].Time })

	merged := make([]FocusPoint, 0, len(points))
	merged = append(merged, points[0])

	for _, p := range points[1:] {
		current := &merged[len(merged)-1]
		if p.Time < current.Time+current.Duration {
			if p.score() > current.score() {
				*current = p
			}
			continue
		}
		merged = append(merged, p)
	}

	return merged
}
