package source

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestOpenImagesDirectoryOrdering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "c.jpeg", "a.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "thumbs"), 0755))

	bg, err := OpenImages(dir)
	require.NoError(t, err)
	defer bg.Close()

	var names []string
	for _, p := range bg.paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"a.jpg", "b.png", "c.jpeg"}, names)
	assert.Equal(t, 3, bg.PageCount())
}

func TestOpenImagesSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	writeTestPNG(t, path, 8, 6)

	bg, err := OpenImages(path)
	require.NoError(t, err)
	defer bg.Close()

	assert.Equal(t, 1, bg.PageCount())

	w, h, err := bg.Dimensions(0)
	require.NoError(t, err)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, 6.0, h)

	img, err := bg.Render(0, 144)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestOpenImagesRejectsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	_, err := OpenImages(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images found")
}

func TestOpenImagesMissingPath(t *testing.T) {
	_, err := OpenImages(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestImageBackgroundPageOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	writeTestPNG(t, path, 8, 6)

	bg, err := OpenImages(path)
	require.NoError(t, err)
	defer bg.Close()

	for _, index := range []int{-1, 1, 5} {
		_, err := bg.Render(index, 144)
		assert.ErrorContains(t, err, "out of range")

		_, _, err = bg.Dimensions(index)
		assert.ErrorContains(t, err, "out of range")
	}

	_, err = bg.Render(0, 144)
	assert.NoError(t, err)
}

func TestOpenPicksBackendByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	writeTestPNG(t, path, 4, 4)

	bg, err := Open(path)
	require.NoError(t, err)
	defer bg.Close()
	assert.IsType(t, &ImageBackground{}, bg)

	_, err = Open(filepath.Join(dir, "deck.PDF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open pdf")
}
