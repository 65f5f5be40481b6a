package camera

import (
	"math"
	"sort"
)

// Reducer limits applied when a caller passes zero.
const (
	defaultMaxKeyframes = 120
	defaultMinDistance  = 10.0
	defaultMinZoomDelta = 0.05

	// zoomDeviationWeight converts zoom deviation into the spatial
	// scale: a small zoom step reads far larger on screen than the
	// same number of pan pixels.
	zoomDeviationWeight = 100.0
)

// Reduce thins a keyframe sequence while keeping its shape. Sequences
// within the count limit drop keyframes that barely differ from the
// last kept one; oversized sequences keep the keyframes that deviate
// most from their neighbor interpolation. The first and last keyframes
// always survive. Zero limits fall back to the package defaults.
func Reduce(keyframes []Keyframe, maxCount int, minDistance, minZoomDelta float64) []Keyframe {
	if maxCount <= 0 {
		maxCount = defaultMaxKeyframes
	}
	if maxCount < 2 {
		maxCount = 2
	}
	if minDistance <= 0 {
		minDistance = defaultMinDistance
	}
	if minZoomDelta <= 0 {
		minZoomDelta = defaultMinZoomDelta
	}

	if len(keyframes) <= 2 {
		out := make([]Keyframe, len(keyframes))
		copy(out, keyframes)
		return out
	}

	if len(keyframes) <= maxCount {
		return reduceByDelta(keyframes, minDistance, minZoomDelta)
	}
	return reduceByDeviation(keyframes, maxCount)
}

// reduceByDelta keeps an interior keyframe only when it moved or zoomed
// perceptibly since the last kept one.
func reduceByDelta(keyframes []Keyframe, minDistance, minZoomDelta float64) []Keyframe {
	out := make([]Keyframe, 0, len(keyframes))
	out = append(out, keyframes[0])
	last := keyframes[0]

	for _, kf := range keyframes[1 : len(keyframes)-1] {
		if dist(kf.X, kf.Y, last.X, last.Y) >= minDistance || math.Abs(kf.Zoom-last.Zoom) >= minZoomDelta {
			out = append(out, kf)
			last = kf
		}
	}

	return append(out, keyframes[len(keyframes)-1])
}

// reduceByDeviation ranks interior keyframes by how far they sit from
// the line joining their immediate neighbors, then keeps the top
// maxCount in time order. Endpoints rank infinitely important.
func reduceByDeviation(keyframes []Keyframe, maxCount int) []Keyframe {
	type ranked struct {
		index int
		score float64
	}

	scores := make([]ranked, len(keyframes))
	for i := range keyframes {
		scores[i] = ranked{index: i, score: math.Inf(1)}
		if i == 0 || i == len(keyframes)-1 {
			continue
		}

		prev, next := keyframes[i-1], keyframes[i+1]
		span := float64(next.Time - prev.Time)
		if span < 1 {
			span = 1
		}
		u := float64(keyframes[i].Time-prev.Time) / span

		ix := lerp(prev.X, next.X, u)
		iy := lerp(prev.Y, next.Y, u)
		iz := lerp(prev.Zoom, next.Zoom, u)

		scores[i].score = dist(keyframes[i].X, keyframes[i].Y, ix, iy) +
			math.Abs(keyframes[i].Zoom-iz)*zoomDeviationWeight
	}

	sort.SliceStable(scores, func(a, b int) bool { return scores[a].score > scores[b].score })

	keep := scores[:maxCount]
	sort.Slice(keep, func(a, b int) bool { return keep[a].index < keep[b].index })

	out := make([]Keyframe, 0, maxCount)
	for _, r := range keep {
		out = append(out, keyframes[r.index])
	}
	return out
}
