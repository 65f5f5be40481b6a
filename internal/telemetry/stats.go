package telemetry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the pointer activity of a recording. Speeds are in
// pixels per second.
type Stats struct {
	Samples     int
	Clicks      int
	DurationMs  int64
	PathLength  float64
	MeanSpeed   float64
	MedianSpeed float64
	P95Speed    float64
	MaxSpeed    float64
	SpeedStdDev float64
}

// Speeds returns per-interval pointer speeds. Duplicate timestamps use
// a 1 ms floor so a repeated sample cannot divide by zero.
func Speeds(samples []CursorSample) []float64 {
	if len(samples) < 2 {
		return nil
	}

	speeds := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		dt := float64(samples[i].T - samples[i-1].T)
		if dt < 1 {
			dt = 1
		}
		d := math.Hypot(samples[i].X-samples[i-1].X, samples[i].Y-samples[i-1].Y)
		speeds = append(speeds, d*1000/dt)
	}
	return speeds
}

// Summarize computes aggregate statistics for a recording.
func Summarize(rec *Recording) Stats {
	s := Stats{
		Samples:    len(rec.Positions),
		Clicks:     len(rec.Clicks),
		DurationMs: rec.Duration(),
	}

	for i := 1; i < len(rec.Positions); i++ {
		s.PathLength += math.Hypot(
			rec.Positions[i].X-rec.Positions[i-1].X,
			rec.Positions[i].Y-rec.Positions[i-1].Y,
		)
	}

	speeds := Speeds(rec.Positions)
	if len(speeds) == 0 {
		return s
	}

	s.MeanSpeed = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		s.SpeedStdDev = stat.StdDev(speeds, nil)
	}
	for _, v := range speeds {
		if v > s.MaxSpeed {
			s.MaxSpeed = v
		}
	}

	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)
	s.MedianSpeed = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P95Speed = stat.Quantile(0.95, stat.Empirical, sorted, nil)

	return s
}
