package image16

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", 0x0000, 0x0000, 0x0000, 0x0000},
		{"white", 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", 0xF800, 0xFFFF, 0x0000, 0x0000},
		{"green", 0x07E0, 0x0000, 0xFFFF, 0x0000},
		{"blue", 0x001F, 0x0000, 0x0000, 0xFFFF},
		{"mid gray", 0x8410, 0x8484, 0x8282, 0x8484},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%#04x, %#04x, %#04x, %#04x), want (%#04x, %#04x, %#04x, 0xffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB565
	}{
		{"passthrough", RGB565(0x1234), 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"red", color.RGBA{R: 255, A: 255}, 0xF800},
		{"green", color.RGBA{G: 255, A: 255}, 0x07E0},
		{"blue", color.RGBA{B: 255, A: 255}, 0x001F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB565Model.Convert(tt.input).(RGB565)
			if got != tt.want {
				t.Errorf("Convert(%v) = %#04x, want %#04x", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	// Converting a RGB565 color through RGBA and back must not lose
	// information.
	for _, c := range []RGB565{0x0000, 0x0001, 0x8410, 0xF81F, 0xFFFF} {
		if got := RGB565Model.Convert(color.RGBA64Model.Convert(c)).(RGB565); got != c {
			t.Errorf("round trip of %#04x = %#04x", c, got)
		}
	}
}

func TestNewBigEndian(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 240, 320))
	if len(img.Pix) != 240*320*2 {
		t.Errorf("len(Pix) = %d, want %d", len(img.Pix), 240*320*2)
	}
	if img.Stride != 480 {
		t.Errorf("Stride = %d, want 480", img.Stride)
	}
	if want := image.Rect(0, 0, 240, 320); img.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), want)
	}
}

func TestBigEndianSetGet(t *testing.T) {
	img := NewBigEndian(image.Rect(0, 0, 4, 4))

	img.SetRGB565(1, 0, 0xABCD)
	if img.Pix[2] != 0xAB || img.Pix[3] != 0xCD {
		t.Errorf("Pix[2:4] = %#02x %#02x, want 0xab 0xcd", img.Pix[2], img.Pix[3])
	}
	if got := img.RGB565At(1, 0); got != 0xABCD {
		t.Errorf("RGB565At(1, 0) = %#04x, want 0xabcd", got)
	}

	img.Set(2, 3, color.RGBA{R: 255, A: 255})
	if got := img.RGB565At(2, 3); got != 0xF800 {
		t.Errorf("RGB565At(2, 3) = %#04x, want 0xf800", got)
	}

	// Out of bounds accesses are no-ops / zero.
	img.SetRGB565(10, 10, 0xFFFF)
	if got := img.RGB565At(10, 10); got != 0 {
		t.Errorf("RGB565At(10, 10) = %#04x, want 0", got)
	}
}

func TestBigEndianOffsetBounds(t *testing.T) {
	// Non-zero origin rectangles must index from their own minimum.
	img := NewBigEndian(image.Rect(2, 2, 6, 6))
	img.SetRGB565(2, 2, 0x1234)
	if img.Pix[0] != 0x12 || img.Pix[1] != 0x34 {
		t.Errorf("Pix[0:2] = %#02x %#02x, want 0x12 0x34", img.Pix[0], img.Pix[1])
	}
}

func TestBigEndianDraw(t *testing.T) {
	// BigEndian implements draw.Image.
	img := NewBigEndian(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.RGB565At(x, y); got != 0x001F {
				t.Errorf("RGB565At(%d, %d) = %#04x, want 0x001f", x, y, got)
			}
		}
	}
}

func TestNewBigEndianEmpty(t *testing.T) {
	img := NewBigEndian(image.Rectangle{Min: image.Point{X: 2}, Max: image.Point{X: 1}})
	if len(img.Pix) != 0 {
		t.Errorf("len(Pix) = %d, want 0", len(img.Pix))
	}
}
