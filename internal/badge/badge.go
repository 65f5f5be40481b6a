// Package badge renders the QR badge demo videos carry in a corner,
// linking viewers back to the recorded page.
package badge

import (
	"fmt"
	"image"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 192
	defaultMargin = 48
)

// Badge describes the QR overlay: the encoded link, the rendered size
// in pixels, and the margin from the frame corner.
type Badge struct {
	URL    string
	Size   int
	Margin int
}

// New returns a badge for url with default sizing.
func New(url string) Badge {
	return Badge{URL: url, Size: defaultSize, Margin: defaultMargin}
}

// Image renders the QR code at the badge size.
func (b Badge) Image() (image.Image, error) {
	q, err := qrcode.New(b.URL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("badge: encode %q: %w", b.URL, err)
	}
	return q.Image(b.size()), nil
}

// WritePNG writes the QR code to path.
func (b Badge) WritePNG(path string) error {
	if err := qrcode.WriteFile(b.URL, qrcode.Medium, b.size(), path); err != nil {
		return fmt.Errorf("badge: write %s: %w", path, err)
	}
	return nil
}

// OverlayFilter returns the ffmpeg overlay expression placing the
// badge in the bottom-right corner between start and end seconds. The
// badge image is expected as the second filter input.
func (b Badge) OverlayFilter(start, end float64) string {
	return fmt.Sprintf("overlay=x=W-w-%d:y=H-h-%d:enable='between(t,%.3f,%.3f)'",
		b.margin(), b.margin(), start, end)
}

// Stamp draws the badge onto the bottom-right corner of frame, for
// storyboard stills that skip the ffmpeg pass.
func (b Badge) Stamp(frame *image.RGBA) error {
	img, err := b.Image()
	if err != nil {
		return err
	}

	bounds := frame.Bounds()
	offset := image.Pt(
		bounds.Max.X-b.size()-b.margin(),
		bounds.Max.Y-b.size()-b.margin(),
	)
	rect := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(b.size(), b.size()))}
	draw.Draw(frame, rect, img, image.Point{}, draw.Over)
	return nil
}

func (b Badge) size() int {
	if b.Size <= 0 {
		return defaultSize
	}
	return b.Size
}

func (b Badge) margin() int {
	if b.Margin < 0 {
		return defaultMargin
	}
	return b.Margin
}
