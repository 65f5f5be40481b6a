// Package camera turns recorded pointer telemetry into virtual-camera
// keyframes: where the frame looks (pan) and how tightly it crops
// (zoom) over the course of a session.
//
// The pipeline has three stages. Detection scans cursor samples and
// clicks for focus points worth zooming into. Synthesis builds a
// keyframe sequence for the selected mode: basic punches in on clicks,
// follow pans a fixed-zoom camera after the cursor, and smart overlays
// focus zooms on the follow baseline. Reduction then thins the
// sequence so renderers and editors handle a bounded keyframe count.
//
// Keyframe times are milliseconds from the start of the recording, and
// positions are viewport pixels naming the point the camera centers
// on. Sequences are sorted by time; sampling between keyframes applies
// the easing curve named on the earlier keyframe of the bracketing
// pair.
package camera
