package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImageToANSI(t *testing.T) {
	art := ImageToANSI(solidImage(20, 30, color.RGBA{200, 10, 10, 255}), 6, 4)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 6, VisibleWidth(line))
		assert.Equal(t, strings.Repeat("▀", 6), StripANSI(line))
	}
	assert.Contains(t, art, "\x1b[38;2;")
}

func TestGenerateANSI(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "face.png")
	f, err := os.Create(imagePath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(8, 8, color.White)))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "face.ansi")
	require.NoError(t, GenerateANSI(imagePath, out))

	art, err := LoadANSI(out)
	require.NoError(t, err)
	assert.Equal(t, DefaultHeight, strings.Count(art, "\n"))
}

func TestGenerateANSIErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, GenerateANSI(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out")))

	bogus := filepath.Join(dir, "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0644))
	assert.Error(t, GenerateANSI(bogus, filepath.Join(dir, "out")))
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "A♥", StripANSI("A\x1b[91m♥\x1b[0m"))
	assert.Equal(t, "plain", StripANSI("plain"))
}

func TestWrapText(t *testing.T) {
	text := "Voices repeat your last words until the table falls silent"
	lines := WrapText(text, 20)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 20, line)
	}
	assert.Equal(t, text, strings.Join(lines, " "))
	assert.Equal(t, []string{""}, WrapText("   ", 20))
	assert.Equal(t, []string{"short"}, WrapText("short", 2))
}
