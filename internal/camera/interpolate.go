package camera

// Sample evaluates the camera pose at time t (milliseconds) by
// interpolating between the bracketing keyframes. The easing curve
// named on the earlier keyframe shapes the whole segment. Queries
// outside the sequence clamp to the nearest endpoint; an empty
// sequence yields a neutral pose.
func Sample(keyframes []Keyframe, t int64) Pose {
	if len(keyframes) == 0 {
		return Pose{Zoom: 1}
	}

	first := keyframes[0]
	if t <= first.Time {
		return Pose{Zoom: first.Zoom, X: first.X, Y: first.Y}
	}
	last := keyframes[len(keyframes)-1]
	if t >= last.Time {
		return Pose{Zoom: last.Zoom, X: last.X, Y: last.Y}
	}

	before, after := first, last
	for i := 0; i < len(keyframes)-1; i++ {
		if t >= keyframes[i].Time && t <= keyframes[i+1].Time {
			before, after = keyframes[i], keyframes[i+1]
			break
		}
	}

	span := float64(after.Time - before.Time)
	if span < 1 {
		span = 1
	}
	progress := clamp(float64(t-before.Time)/span, 0, 1)
	eased := before.Easing.Apply(progress)

	return Pose{
		Zoom: lerp(before.Zoom, after.Zoom, eased),
		X:    lerp(before.X, after.X, eased),
		Y:    lerp(before.Y, after.Y, eased),
	}
}
