package camera

import (
	"testing"

	"github.com/screenreel/screenreel/internal/telemetry"
)

func TestZoomFromClicksEmptyRestsAtCenter(t *testing.T) {
	cfg := DefaultConfig()

	kfs := ZoomFromClicks(nil, 1920, 1080, cfg)
	if len(kfs) != 1 {
		t.Fatalf("expected only the resting anchor, got %d keyframes", len(kfs))
	}
	want := Keyframe{Time: 0, Zoom: 1.0, X: 960, Y: 540, Easing: cfg.Easing}
	if kfs[0] != want {
		t.Errorf("got %+v, want %+v", kfs[0], want)
	}
}

func TestZoomFromClicksSingleClick(t *testing.T) {
	cfg := DefaultConfig()
	clicks := []telemetry.ClickEvent{{T: 5000, X: 500, Y: 300}}

	kfs := ZoomFromClicks(clicks, 1920, 1080, cfg)
	if len(kfs) != 5 {
		t.Fatalf("expected anchor plus four click keyframes, got %d", len(kfs))
	}

	wantTimes := []int64{0, 4200, 5000, 6500, 7300}
	for i, want := range wantTimes {
		if kfs[i].Time != want {
			t.Errorf("keyframe %d at %d, want %d", i, kfs[i].Time, want)
		}
	}

	at := kfs[2]
	if at.Zoom != cfg.DefaultZoom || at.X != 500 || at.Y != 300 {
		t.Errorf("click keyframe should land zoomed on the click, got %+v", at)
	}
	if hold := kfs[3]; hold.Zoom != cfg.DefaultZoom || hold.X != 500 || hold.Y != 300 {
		t.Errorf("hold keyframe should pin the click pose, got %+v", hold)
	}
	if out := kfs[4]; out.Zoom != cfg.MinZoom || out.X != 960 || out.Y != 540 {
		t.Errorf("zoom-out should return to the centered rest pose, got %+v", out)
	}
	for _, kf := range kfs {
		if kf.Easing != cfg.Easing {
			t.Errorf("keyframe at %d carries %s, want %s", kf.Time, kf.Easing, cfg.Easing)
		}
	}
}

func TestZoomFromClicksEarlyClickKeepsNegativeRamp(t *testing.T) {
	cfg := DefaultConfig()
	clicks := []telemetry.ClickEvent{{T: 300, X: 100, Y: 100}}

	kfs := ZoomFromClicks(clicks, 1920, 1080, cfg)
	if kfs[0].Time != -500 {
		t.Errorf("a click inside the ramp window starts before zero, got %d", kfs[0].Time)
	}
	for i := 1; i < len(kfs); i++ {
		if kfs[i].Time < kfs[i-1].Time {
			t.Fatalf("keyframes out of order: %d before %d", kfs[i-1].Time, kfs[i].Time)
		}
	}
}

func TestZoomFromClicksMultipleClicksSorted(t *testing.T) {
	cfg := DefaultConfig()
	clicks := []telemetry.ClickEvent{
		{T: 2000, X: 100, Y: 100},
		{T: 9000, X: 1800, Y: 900},
	}

	kfs := ZoomFromClicks(clicks, 1920, 1080, cfg)
	if len(kfs) != 9 {
		t.Fatalf("expected 9 keyframes for two clicks, got %d", len(kfs))
	}
	for i := 1; i < len(kfs); i++ {
		if kfs[i].Time < kfs[i-1].Time {
			t.Fatalf("keyframes out of order at %d: %d before %d", i, kfs[i-1].Time, kfs[i].Time)
		}
	}
}
