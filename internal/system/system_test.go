package system

import (
	"image"
	"testing"
)

func TestRenderWorkersBounds(t *testing.T) {
	w := RenderWorkers(1920, 1080)
	if w < 1 || w > maxRenderWorkers {
		t.Errorf("worker count %d outside [1, %d]", w, maxRenderWorkers)
	}
}

func TestRenderWorkersZeroViewport(t *testing.T) {
	if w := RenderWorkers(0, 0); w < 1 {
		t.Errorf("expected at least one worker, got %d", w)
	}
}

func TestFramePoolRoundTrip(t *testing.T) {
	rect := image.Rect(0, 0, 64, 48)

	a := AcquireFrame(rect)
	if a.Bounds() != rect {
		t.Fatalf("acquired frame bounds %v, want %v", a.Bounds(), rect)
	}
	ReleaseFrame(a)

	b := AcquireFrame(rect)
	if b.Bounds() != rect {
		t.Fatalf("reacquired frame bounds %v, want %v", b.Bounds(), rect)
	}

	other := AcquireFrame(image.Rect(0, 0, 128, 96))
	if other.Bounds().Dx() != 128 {
		t.Fatalf("pool mixed frame sizes: %v", other.Bounds())
	}

	// Releasing a frame the pool never handed out must not panic.
	ReleaseFrame(nil)
	ReleaseFrame(image.NewRGBA(image.Rect(0, 0, 7, 7)))
}

func TestDetectEncoderAlwaysAnswers(t *testing.T) {
	if enc := DetectEncoder(); enc == "" {
		t.Error("expected an encoder name even without ffmpeg installed")
	}
}
