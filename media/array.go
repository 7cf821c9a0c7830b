package media

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Array is a height x width x channels uint8 pixel tensor in row-major
// order, the in-process raster representation components dispatch on.
// Channels is 1 (grayscale) or 3 (RGB).
type Array struct {
	Height   int
	Width    int
	Channels int
	Pix      []uint8
}

// NewArray allocates a zeroed pixel array.
func NewArray(height, width, channels int) *Array {
	return &Array{
		Height:   height,
		Width:    width,
		Channels: channels,
		Pix:      make([]uint8, height*width*channels),
	}
}

// At returns the sample at row y, column x, channel c.
func (a *Array) At(y, x, c int) uint8 {
	return a.Pix[(y*a.Width+x)*a.Channels+c]
}

// Set stores the sample at row y, column x, channel c.
func (a *Array) Set(y, x, c int, v uint8) {
	a.Pix[(y*a.Width+x)*a.Channels+c] = v
}

// Image converts the array into a standard image for encoding.
func (a *Array) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, a.Width, a.Height))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			var c color.NRGBA
			if a.Channels == 1 {
				v := a.At(y, x, 0)
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			} else {
				c = color.NRGBA{R: a.At(y, x, 0), G: a.At(y, x, 1), B: a.At(y, x, 2), A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// ArrayFromImage converts a standard image into a 3-channel RGB array.
func ArrayFromImage(img image.Image) *Array {
	bounds := img.Bounds()
	a := NewArray(bounds.Dy(), bounds.Dx(), 3)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			a.Set(y, x, 0, uint8(r>>8))
			a.Set(y, x, 1, uint8(g>>8))
			a.Set(y, x, 2, uint8(b>>8))
		}
	}
	return a
}

// ArrayFromMatrix converts a numeric matrix into a grayscale array.
// Values are clamped to [0, 255].
func ArrayFromMatrix(m mat.Matrix) (*Array, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("cannot build pixel array from empty %dx%d matrix", rows, cols)
	}
	a := NewArray(rows, cols, 1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a.Set(y, x, 0, clampByte(m.At(y, x)))
		}
	}
	return a, nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
