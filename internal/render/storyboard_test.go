package render

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenreel/screenreel/internal/camera"
	"github.com/screenreel/screenreel/internal/telemetry"
)

func testBackground() *image.RGBA {
	bg := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for i := range bg.Pix {
		bg.Pix[i] = 0x80
	}
	return bg
}

func testSession() *camera.Session {
	return &camera.Session{
		ID:       "storyboard-test",
		Mode:     camera.ModeSmart,
		Viewport: telemetry.Viewport{Width: 800, Height: 600},
		Keyframes: []camera.Keyframe{
			{Time: 0, Zoom: 1.0, X: 400, Y: 300, Easing: camera.EaseLinear},
			{Time: 1000, Zoom: 2.0, X: 600, Y: 400, Easing: camera.EaseLinear},
		},
	}
}

func TestRenderStoryboardWritesFrames(t *testing.T) {
	dir := t.TempDir()
	opts := StoryboardOptions{Width: 400, Height: 300, StepMs: 500, OutDir: dir, Workers: 2}

	paths, err := RenderStoryboard(context.Background(), testBackground(), testSession(), opts)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, "frame_000000.png", filepath.Base(paths[0]))
	assert.Equal(t, "frame_000500.png", filepath.Base(paths[1]))
	assert.Equal(t, "frame_001000.png", filepath.Base(paths[2]))

	f, err := os.Open(paths[2])
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderStoryboardCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := StoryboardOptions{Width: 400, Height: 300, OutDir: t.TempDir()}
	_, err := RenderStoryboard(ctx, testBackground(), testSession(), opts)
	assert.Error(t, err)
}

func TestRenderStoryboardRequiresViewport(t *testing.T) {
	session := testSession()
	session.Viewport = telemetry.Viewport{}

	opts := StoryboardOptions{Width: 400, Height: 300, OutDir: t.TempDir()}
	_, err := RenderStoryboard(context.Background(), testBackground(), session, opts)
	assert.ErrorContains(t, err, "viewport")
}

func TestRenderStoryboardRequiresKeyframes(t *testing.T) {
	session := testSession()
	session.Keyframes = nil

	opts := StoryboardOptions{Width: 400, Height: 300, OutDir: t.TempDir()}
	_, err := RenderStoryboard(context.Background(), testBackground(), session, opts)
	assert.Error(t, err)
}
