// Package monitor renders diagnostic charts for synthesized camera
// plans so detector and follow tuning can be judged by eye.
package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/screenreel/screenreel/internal/camera"
	"github.com/screenreel/screenreel/internal/telemetry"
)

// Channel palette; the raw cursor overlay draws gray.
var (
	zoomColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	panXColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	panYColor   = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	markerColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	cursorColor = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// CurvePlotter writes PNG charts of a plan: the zoom curve and the pan
// path over time, with surviving keyframes marked and the raw cursor
// overlaid for comparison.
type CurvePlotter struct {
	outputDir string
}

// NewCurvePlotter creates a plotter writing into outputDir.
func NewCurvePlotter(outputDir string) *CurvePlotter {
	return &CurvePlotter{outputDir: outputDir}
}

// PlotPlan writes zoom_curve.png and pan_curve.png and returns their
// paths. Cursor samples may be nil.
func (cp *CurvePlotter) PlotPlan(plan *camera.Plan, cursor []telemetry.CursorSample) ([]string, error) {
	if plan == nil || len(plan.Keyframes) == 0 {
		return nil, fmt.Errorf("monitor: plan has no keyframes to plot")
	}
	if err := os.MkdirAll(cp.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("monitor: create output dir: %w", err)
	}

	zoomPts, panXPts, panYPts := sampleCurves(plan.Keyframes)

	zoomPath, err := cp.plotZoom(plan, zoomPts)
	if err != nil {
		return nil, err
	}
	panPath, err := cp.plotPan(plan, panXPts, panYPts, cursor)
	if err != nil {
		return nil, err
	}

	return []string{zoomPath, panPath}, nil
}

func (cp *CurvePlotter) plotZoom(plan *camera.Plan, zoomPts plotter.XYs) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Zoom Curve - %s mode", plan.Mode)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Zoom"

	line, err := plotter.NewLine(zoomPts)
	if err != nil {
		return "", err
	}
	line.Color = zoomColor
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("zoom", line)

	marks, err := plotter.NewScatter(keyframeXYs(plan.Keyframes, func(kf camera.Keyframe) float64 { return kf.Zoom }))
	if err != nil {
		return "", err
	}
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Color = markerColor
	p.Add(marks)
	p.Legend.Add("keyframes", marks)

	p.Legend.Top = true

	path := filepath.Join(cp.outputDir, "zoom_curve.png")
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save zoom plot: %w", err)
	}
	return path, nil
}

func (cp *CurvePlotter) plotPan(plan *camera.Plan, panXPts, panYPts plotter.XYs, cursor []telemetry.CursorSample) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pan Path - %s mode", plan.Mode)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Viewport px"

	xLine, err := plotter.NewLine(panXPts)
	if err != nil {
		return "", err
	}
	xLine.Color = panXColor
	xLine.Width = vg.Points(1)
	p.Add(xLine)
	p.Legend.Add("camera x", xLine)

	yLine, err := plotter.NewLine(panYPts)
	if err != nil {
		return "", err
	}
	yLine.Color = panYColor
	yLine.Width = vg.Points(1)
	p.Add(yLine)
	p.Legend.Add("camera y", yLine)

	if len(cursor) > 0 {
		cursorX := make(plotter.XYs, len(cursor))
		cursorY := make(plotter.XYs, len(cursor))
		for i, s := range cursor {
			cursorX[i] = plotter.XY{X: float64(s.T) / 1000, Y: s.X}
			cursorY[i] = plotter.XY{X: float64(s.T) / 1000, Y: s.Y}
		}

		for _, series := range []struct {
			label string
			pts   plotter.XYs
		}{{"cursor x", cursorX}, {"cursor y", cursorY}} {
			line, err := plotter.NewLine(series.pts)
			if err != nil {
				return "", err
			}
			line.Color = cursorColor
			line.Width = vg.Points(0.5)
			line.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
			p.Add(line)
			p.Legend.Add(series.label, line)
		}
	}

	p.Legend.Top = true

	path := filepath.Join(cp.outputDir, "pan_curve.png")
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save pan plot: %w", err)
	}
	return path, nil
}

// sampleCurves walks the plan at a fine step so eased segments show
// their true shape rather than keyframe-to-keyframe chords.
func sampleCurves(kfs []camera.Keyframe) (zoom, panX, panY plotter.XYs) {
	duration := kfs[len(kfs)-1].Time
	step := duration / 2000
	if step < 16 {
		step = 16
	}

	for ts := kfs[0].Time; ; ts += step {
		if ts > duration {
			ts = duration
		}
		pose := camera.Sample(kfs, ts)
		x := float64(ts) / 1000
		zoom = append(zoom, plotter.XY{X: x, Y: pose.Zoom})
		panX = append(panX, plotter.XY{X: x, Y: pose.X})
		panY = append(panY, plotter.XY{X: x, Y: pose.Y})

		if ts >= duration {
			break
		}
	}
	return zoom, panX, panY
}

func keyframeXYs(kfs []camera.Keyframe, value func(camera.Keyframe) float64) plotter.XYs {
	pts := make(plotter.XYs, len(kfs))
	for i, kf := range kfs {
		pts[i] = plotter.XY{X: float64(kf.Time) / 1000, Y: value(kf)}
	}
	return pts
}
