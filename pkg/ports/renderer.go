package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations for frame preparation.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions
	// and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes PNG image data into an image.Image.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image as PNG.
	EncodeImage(img image.Image) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions using
	// nearest-neighbor sampling. Pixel-art frames must keep hard edges, so
	// no interpolating scaler is ever used.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing a prepared frame.
type Canvas interface {
	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawTextOutlined draws text centered at the specified position with an
	// outline behind the fill so it stays readable on any frame content.
	DrawTextOutlined(text string, x, y int, style TextStyle) error

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize     float64
	FontPath     string
	Color        color.Color
	OutlineColor color.Color
	OutlineWidth int
}
