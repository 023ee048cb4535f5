package mocks

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/user/tilelapse/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer. By default it behaves
// like a minimal real renderer (PNG codec, plain rect resize) so stage tests
// can run without the gg adapter.
type Renderer struct {
	DecodeImageFunc func(data []byte) (image.Image, error)
	ResizeImageFunc func(img image.Image, width, height int) image.Image

	// DrawTextErr forces every DrawTextOutlined call on created canvases to
	// fail, for overlay-failure tests.
	DrawTextErr error

	// ResizeCalls records requested resize dimensions.
	ResizeCalls []ResizeCall
}

// ResizeCall records one ResizeImage invocation.
type ResizeCall struct {
	Width  int
	Height int
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &canvas{img: img, drawTextErr: m.DrawTextErr}
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return png.Decode(bytes.NewReader(data))
}

func (m *Renderer) EncodeImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	m.ResizeCalls = append(m.ResizeCalls, ResizeCall{Width: width, Height: height})
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

type canvas struct {
	img         *image.RGBA
	drawTextErr error

	TextCalls []string
}

func (c *canvas) DrawImage(img image.Image, x, y int) {}

func (c *canvas) DrawTextOutlined(text string, x, y int, style ports.TextStyle) error {
	c.TextCalls = append(c.TextCalls, text)
	return c.drawTextErr
}

func (c *canvas) ToImage() image.Image {
	return c.img
}

var _ ports.Canvas = (*canvas)(nil)
