// Package render turns card face images into ANSI terminal art.
package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Default art size in terminal cells
const (
	DefaultWidth  = 40
	DefaultHeight = 32
)

// GenerateANSI converts an image file to ANSI art and saves it to outputPath
func GenerateANSI(imagePath, outputPath string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	art := ImageToANSI(img, DefaultWidth, DefaultHeight)
	if err := os.WriteFile(outputPath, []byte(art), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to file: %w", err)
	}

	return nil
}

// ImageToANSI draws img with upper half blocks: each cell shows two pixel rows,
// the top one as foreground and the bottom one as background. The result has
// height lines of width cells.
func ImageToANSI(img image.Image, width, height int) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			top := average(colorAt(resized, x, y), colorAt(resized, x+1, y))
			bottom := average(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(halfBlock(top, bottom))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the pixel colour, black outside the image bounds
func colorAt(img image.Image, x, y int) colorful.Color {
	var c color.Color = color.RGBA{0, 0, 0, 255}
	if (image.Point{x, y}).In(img.Bounds()) {
		c = img.At(x, y)
	}
	cf, _ := colorful.MakeColor(c)
	return cf
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

// halfBlock renders one cell in 24-bit colour
func halfBlock(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀\x1b[0m", r1, g1, b1, r2, g2, b2)
}

// LoadANSI loads ANSI art from a file
func LoadANSI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
