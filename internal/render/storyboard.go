package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/screenreel/screenreel/internal/camera"
	"github.com/screenreel/screenreel/internal/system"
	"github.com/screenreel/screenreel/internal/telemetry"
)

// StoryboardOptions configure storyboard rendering.
type StoryboardOptions struct {
	Width   int
	Height  int
	StepMs  int64 // sampling interval, 500ms when zero
	OutDir  string
	Workers int // worker pool size, host-derived when zero
}

// RenderStoryboard samples the session at a fixed interval and writes
// one PNG per sampled pose, cropping the background the way the video
// renderer would. Frames are rendered concurrently; file names carry
// the sample time in milliseconds.
func RenderStoryboard(ctx context.Context, bg image.Image, session *camera.Session, opts StoryboardOptions) ([]string, error) {
	if session == nil || len(session.Keyframes) == 0 {
		return nil, errors.New("render: no keyframes to render")
	}
	if session.Viewport.Width <= 0 || session.Viewport.Height <= 0 {
		return nil, errors.New("render: recording viewport is unknown")
	}
	if opts.StepMs <= 0 {
		opts.StepMs = 500
	}
	if opts.Workers <= 0 {
		opts.Workers = system.RenderWorkers(opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("create storyboard dir: %w", err)
	}

	duration := session.Keyframes[len(session.Keyframes)-1].Time
	var times []int64
	for ts := int64(0); ts <= duration; ts += opts.StepMs {
		times = append(times, ts)
	}

	paths := make([]string, len(times))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, ts := range times {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pose := camera.Sample(session.Keyframes, ts)
			frame := renderPose(bg, pose, session.Viewport, opts.Width, opts.Height)
			defer system.ReleaseFrame(frame)

			path := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%06d.png", ts))
			if err := writePNG(frame, path); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("frames", len(paths)).
		Str("dir", opts.OutDir).
		Msg("storyboard rendered")
	return paths, nil
}

// renderPose crops the camera window out of the background and scales
// it onto a pooled output frame. Telemetry coordinates are mapped from
// viewport space to background pixels first.
func renderPose(bg image.Image, pose camera.Pose, vp telemetry.Viewport, w, h int) *image.RGBA {
	bounds := bg.Bounds()
	bgW, bgH := float64(bounds.Dx()), float64(bounds.Dy())

	zoom := pose.Zoom
	if zoom < 1 {
		zoom = 1
	}

	sx, sy := bgW/float64(vp.Width), bgH/float64(vp.Height)
	winW, winH := bgW/zoom, bgH/zoom

	x0 := clampF(pose.X*sx-winW/2, 0, bgW-winW)
	y0 := clampF(pose.Y*sy-winH/2, 0, bgH-winH)

	crop := image.Rect(
		bounds.Min.X+int(x0),
		bounds.Min.Y+int(y0),
		bounds.Min.X+int(x0+winW),
		bounds.Min.Y+int(y0+winH),
	)

	frame := system.AcquireFrame(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(frame, frame.Bounds(), bg, crop, draw.Src, nil)
	return frame
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
