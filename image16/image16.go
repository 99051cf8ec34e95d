// Package image16 provides a 16-bit RGB565 image format matching the wire
// format of ILI9341-class TFT panels.
//
// Pixels are stored two bytes each, most-significant byte first, which is the
// byte order the controller expects for memory writes. This package provides
// the RGB565 color type and the BigEndian image implementation.
package image16

import (
	"image"
	"image/color"
)

// RGB565 represents a 16-bit color with 5 bits of red, 6 bits of green and
// 5 bits of blue.
type RGB565 uint16

// RGBA converts the RGB565 color to standard 16-bit-per-channel RGBA.
// Channel values are expanded by bit replication so that full-scale 565
// values map to full-scale RGBA.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1F
	g = uint32(c>>5) & 0x3F
	b = uint32(c) & 0x1F
	r = (r<<3 | r>>2) * 0x101
	g = (g<<2 | g>>4) * 0x101
	b = (b<<3 | b>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit channels; keep the top 5/6/5 bits.
	return RGB565(r>>11<<11 | g>>10<<5 | b>>11)
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// BigEndian is an RGB565 image with pixels stored two bytes each,
// most-significant byte first.
type BigEndian struct {
	Pix    []byte          // Pixel data (2 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewBigEndian creates a new BigEndian image with the specified bounds.
func NewBigEndian(r image.Rectangle) *BigEndian {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &BigEndian{Rect: r}
	}
	stride := w * 2
	return &BigEndian{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *BigEndian) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *BigEndian) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *BigEndian) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *BigEndian) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	o := p.pixOffset(x, y)
	return RGB565(uint16(p.Pix[o])<<8 | uint16(p.Pix[o+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *BigEndian) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *BigEndian) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	o := p.pixOffset(x, y)
	p.Pix[o] = byte(c >> 8)
	p.Pix[o+1] = byte(c)
}

// pixOffset returns the byte offset of the pixel at (x, y).
func (p *BigEndian) pixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
