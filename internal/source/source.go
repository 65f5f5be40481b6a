// Package source loads the background artwork the virtual camera moves
// over: a PDF page rendered through MuPDF or plain screenshot images.
package source

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Background is the artwork the camera crops storyboard frames from.
// Render and Dimensions return an error for indexes outside
// [0, PageCount).
type Background interface {
	PageCount() int
	Dimensions(index int) (width, height float64, err error)
	Render(index, dpi int) (image.Image, error)
	Close() error
}

// Open picks a backend by extension: .pdf renders through MuPDF,
// anything else decodes as a raster image file or a directory of them.
func Open(path string) (Background, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return OpenPDF(path)
	}
	return OpenImages(path)
}

type PDFBackground struct {
	doc  *fitz.Document
	path string
}

func OpenPDF(path string) (*PDFBackground, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &PDFBackground{doc: doc, path: path}, nil
}

func (b *PDFBackground) PageCount() int {
	return b.doc.NumPage()
}

func (b *PDFBackground) Dimensions(index int) (float64, float64, error) {
	if index < 0 || index >= b.doc.NumPage() {
		return 0, 0, fmt.Errorf("page %d out of range (%d pages)", index, b.doc.NumPage())
	}
	rect, err := b.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

// Render opens a fresh document per call; fitz handles cannot be
// shared across rendering goroutines.
func (b *PDFBackground) Render(index, dpi int) (image.Image, error) {
	if index < 0 || index >= b.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (%d pages)", index, b.doc.NumPage())
	}
	workerDoc, err := fitz.New(b.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()
	return workerDoc.ImageDPI(index, float64(dpi))
}

func (b *PDFBackground) Close() error {
	return b.doc.Close()
}
