package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenreel/screenreel/internal/camera"
	"github.com/screenreel/screenreel/internal/telemetry"
)

func TestPlotPlanWritesCharts(t *testing.T) {
	rec := &telemetry.Recording{
		Viewport: telemetry.Viewport{Width: 1920, Height: 1080},
		Clicks:   []telemetry.ClickEvent{{T: 3000, X: 500, Y: 300}},
	}
	for ts := int64(0); ts <= 6000; ts += 100 {
		rec.Positions = append(rec.Positions, telemetry.CursorSample{T: ts, X: 960, Y: 540})
	}

	engine, err := camera.NewEngine(camera.DefaultConfig())
	require.NoError(t, err)
	session := engine.Synthesize(rec, camera.ModeSmart)
	plan := camera.NewPlan(session, rec.ID)

	cp := NewCurvePlotter(t.TempDir())
	paths, err := cp.PlotPlan(plan, rec.Positions)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, path := range paths {
		assert.FileExists(t, path)
	}
}

func TestPlotPlanRejectsEmptyPlan(t *testing.T) {
	cp := NewCurvePlotter(t.TempDir())

	_, err := cp.PlotPlan(&camera.Plan{}, nil)
	assert.Error(t, err)

	_, err = cp.PlotPlan(nil, nil)
	assert.Error(t, err)
}
