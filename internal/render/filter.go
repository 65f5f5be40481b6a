// Package render turns keyframe sequences into consumable output: an
// ffmpeg filtergraph for video encoding and storyboard stills for
// quick review.
package render

import (
	"fmt"
	"strings"

	"github.com/screenreel/screenreel/internal/camera"
)

// Supersample is the working-resolution multiplier for the zoompan
// stage. Rendering the pan at double size and scaling down afterwards
// hides zoompan's integer-pixel crop stepping.
const Supersample = 2

// FilterOptions configure the generated filtergraph.
type FilterOptions struct {
	Width  int
	Height int
	FPS    int
	Debug  bool
}

// ZoomPanFilter builds an ffmpeg filtergraph that plays a keyframe
// sequence through the zoompan filter. Keyframe times are mapped to
// output frame numbers; between keyframes the expressions interpolate
// linearly in the frame domain, so sequences should be dense enough to
// carry their easing.
func ZoomPanFilter(keyframes []camera.Keyframe, opts FilterOptions) string {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	if len(keyframes) == 0 {
		return fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
			opts.Width, opts.Height, opts.Width, opts.Height)
	}

	w2, h2 := opts.Width*Supersample, opts.Height*Supersample
	pts := exprPoints(keyframes, opts.FPS)

	zoomExpr := piecewise(pts, func(p exprPoint) float64 { return p.zoom })
	xExpr := piecewise(pts, func(p exprPoint) float64 { return p.x })
	yExpr := piecewise(pts, func(p exprPoint) float64 { return p.y })

	parts := []string{
		fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease", w2, h2),
		fmt.Sprintf("pad=%d:%d:(ow-iw)/2:(oh-ih)/2", w2, h2),
		fmt.Sprintf("zoompan=z='%s':x='(%s)-(iw/zoom/2)':y='(%s)-(ih/zoom/2)':d=1:s=%dx%d:fps=%d",
			zoomExpr, xExpr, yExpr, w2, h2, opts.FPS),
		fmt.Sprintf("scale=%d:%d", opts.Width, opts.Height),
	}
	if opts.Debug {
		parts = append(parts, debugOverlay())
	}

	return strings.Join(parts, ",")
}

// exprPoint is a keyframe mapped into zoompan's coordinate space:
// output frame numbers and supersampled pixels.
type exprPoint struct {
	frame int64
	zoom  float64
	x, y  float64
}

func exprPoints(keyframes []camera.Keyframe, fps int) []exprPoint {
	pts := make([]exprPoint, 0, len(keyframes))
	for _, kf := range keyframes {
		frame := kf.Time * int64(fps) / 1000
		if frame < 0 {
			frame = 0
		}
		p := exprPoint{frame: frame, zoom: kf.Zoom, x: kf.X * Supersample, y: kf.Y * Supersample}

		// Keyframes inside the same output frame collapse to the last.
		if n := len(pts); n > 0 && pts[n-1].frame == frame {
			pts[n-1] = p
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// piecewise renders one pose channel as a nested if() chain over the
// output frame counter `on`.
func piecewise(pts []exprPoint, value func(exprPoint) float64) string {
	if len(pts) == 1 {
		return fmt.Sprintf("%.6f", value(pts[0]))
	}

	var b strings.Builder
	depth := 0
	for i := 0; i < len(pts)-1; i++ {
		cur, next := pts[i], pts[i+1]
		span := next.frame - cur.frame
		if span <= 0 {
			continue
		}
		fmt.Fprintf(&b, "if(lte(on,%d),%.6f+(on-%d)*(%.6f)/%d,",
			next.frame, value(cur), cur.frame, value(next)-value(cur), span)
		depth++
	}
	fmt.Fprintf(&b, "%.6f", value(pts[len(pts)-1]))
	b.WriteString(strings.Repeat(")", depth))

	expr := b.String()
	if first := pts[0]; first.frame > 0 {
		expr = fmt.Sprintf("if(lt(on,%d),%.6f,%s)", first.frame, value(first), expr)
	}
	return expr
}

func debugOverlay() string {
	return `drawtext=text='%{pts\:hms} f%{n}':x=16:y=16:fontsize=36:fontcolor=white:box=1:boxcolor=black@0.5`
}
