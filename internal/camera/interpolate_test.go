package camera

import (
	"math"
	"testing"
)

func TestSampleEmptySequence(t *testing.T) {
	got := Sample(nil, 1234)
	if got != (Pose{Zoom: 1}) {
		t.Errorf("empty sequence should yield the neutral pose, got %+v", got)
	}
}

func TestSampleClampsToEndpoints(t *testing.T) {
	kfs := []Keyframe{
		{Time: 1000, Zoom: 1.5, X: 100, Y: 200, Easing: EaseLinear},
		{Time: 2000, Zoom: 2.0, X: 300, Y: 400, Easing: EaseLinear},
	}

	if got := Sample(kfs, 0); got != (Pose{Zoom: 1.5, X: 100, Y: 200}) {
		t.Errorf("before the first keyframe: %+v", got)
	}
	if got := Sample(kfs, 99999); got != (Pose{Zoom: 2.0, X: 300, Y: 400}) {
		t.Errorf("after the last keyframe: %+v", got)
	}
}

func TestSampleLinearMidpoint(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Zoom: 1.0, X: 0, Y: 0, Easing: EaseLinear},
		{Time: 1000, Zoom: 2.0, X: 100, Y: 50, Easing: EaseLinear},
	}

	got := Sample(kfs, 500)
	if math.Abs(got.Zoom-1.5) > 1e-12 || math.Abs(got.X-50) > 1e-12 || math.Abs(got.Y-25) > 1e-12 {
		t.Errorf("linear midpoint off: %+v", got)
	}
}

func TestSampleUsesEarlierKeyframeEasing(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Zoom: 1.0, X: 0, Y: 0, Easing: EaseOutCubic},
		{Time: 1000, Zoom: 2.0, X: 100, Y: 0, Easing: EaseLinear},
	}

	got := Sample(kfs, 500)
	// ease-out-cubic(0.5) = 0.875; the later keyframe's curve must not apply.
	if math.Abs(got.Zoom-1.875) > 1e-12 {
		t.Errorf("segment easing should come from the earlier keyframe, got zoom %g", got.Zoom)
	}
	if math.Abs(got.X-87.5) > 1e-12 {
		t.Errorf("expected x 87.5, got %g", got.X)
	}
}

func TestSampleExactKeyframeHit(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Zoom: 1.0, X: 0, Y: 0, Easing: EaseLinear},
		{Time: 1000, Zoom: 1.3, X: 500, Y: 300, Easing: EaseLinear},
		{Time: 2000, Zoom: 1.0, X: 0, Y: 0, Easing: EaseLinear},
	}

	got := Sample(kfs, 1000)
	if got != (Pose{Zoom: 1.3, X: 500, Y: 300}) {
		t.Errorf("sampling on a keyframe should return its pose, got %+v", got)
	}
}

func TestSampleDuplicateTimes(t *testing.T) {
	kfs := []Keyframe{
		{Time: 1000, Zoom: 1.0, Easing: EaseLinear},
		{Time: 1000, Zoom: 2.0, Easing: EaseLinear},
		{Time: 2000, Zoom: 3.0, Easing: EaseLinear},
	}

	if got := Sample(kfs, 1000); got.Zoom != 1.0 {
		t.Errorf("at a duplicated time the first keyframe wins, got %+v", got)
	}
	if got := Sample(kfs, 1500); math.Abs(got.Zoom-2.5) > 1e-12 {
		t.Errorf("past the duplicate the later twin anchors the segment, got %+v", got)
	}
}
