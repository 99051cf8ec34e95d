package ili9341

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9341/image16"
)

// Native panel resolution at rotation 0.
const (
	nativeWidth  = 240
	nativeHeight = 320
)

// Rotation selects the panel orientation in 90° clockwise steps. Values
// outside [0,3] wrap around.
type Rotation uint8

const (
	Rotation0   Rotation = 0 // portrait, 240x320
	Rotation90  Rotation = 1 // landscape, 320x240
	Rotation180 Rotation = 2 // portrait, upside down
	Rotation270 Rotation = 3 // landscape, upside down
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Frequency: 40 * physic.MegaHertz,
}

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Frequency is the SPI bus clock. Defaults to 40MHz; lower it if your
	// wiring cannot sustain that rate.
	Frequency physic.Frequency

	// Rotation is the initial panel orientation.
	Rotation Rotation

	// CS drives chip-select in software when the SPI port does not handle it
	// in hardware. Leave nil otherwise.
	CS gpio.PinOut

	// RST is the optional hardware reset pin. When nil the driver falls back
	// to a software reset command during initialization.
	RST gpio.PinIO
}

// Dev is the device handle for the ILI9341 display.
type Dev struct {
	// Communication
	t transport

	// Display geometry, a permutation of the native 240x320 selected by the
	// current rotation.
	rect     image.Rectangle
	rotation Rotation

	// State
	halted bool
}

// NewSPI creates a new ILI9341 device connected via 4-wire SPI.
//
// The SPI port is configured at opts.Frequency, Mode0, 8-bit transfers. The
// dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults (40MHz, rotation 0, software reset).
//
// Initialization blocks for roughly half a second of datasheet-mandated
// settle delays before returning.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ili9341: dc pin is required")
	}
	if err := dc.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("ili9341: failed to configure dc pin: %w", err)
	}

	f := opts.Frequency
	if f == 0 {
		f = DefaultOpts.Frequency
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9341: failed to connect: %w", err)
	}

	// Respect the bus transfer size limit when streaming pixel data.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Conservative default.
	}

	d := &Dev{
		t: &spiTransport{c: c, dc: dc, cs: opts.CS, maxTxSize: maxTxSize},
	}
	if err := d.init(opts.RST); err != nil {
		return nil, err
	}
	if opts.Rotation != Rotation0 {
		if err := d.SetRotation(opts.Rotation); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// session brackets fn in one exclusive bus transaction. The bracket is
// released on every exit path.
func (d *Dev) session(fn func() error) (err error) {
	if err = d.t.startWrite(); err != nil {
		return err
	}
	defer func() {
		if cerr := d.t.endWrite(); err == nil {
			err = cerr
		}
	}()
	return fn()
}

// SetRotation rotates the panel output in 90° clockwise steps and updates
// the bounds accordingly. Any value is accepted; it wraps modulo 4.
func (d *Dev) SetRotation(r Rotation) error {
	if d.halted {
		return errHalted
	}
	r %= 4

	// The BGR bit is fixed by the panel wiring and set for every rotation.
	m := madctlBGR
	w, h := nativeWidth, nativeHeight
	switch r {
	case Rotation0:
		m |= madctlMX
	case Rotation90:
		m |= madctlMV
		w, h = h, w
	case Rotation180:
		m |= madctlMY
	case Rotation270:
		m |= madctlMX | madctlMY | madctlMV
		w, h = h, w
	}

	err := d.session(func() error {
		if err := d.t.writeCommand(memAccessCtrl); err != nil {
			return err
		}
		return d.t.writeByte(m)
	})
	if err != nil {
		return err
	}
	d.rotation = r
	d.rect = image.Rect(0, 0, w, h)
	return nil
}

// Rotation returns the current panel orientation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// setAddrWindow selects the frame memory rectangle that subsequent memory
// write data fills, leaving the controller ready for pixel data. It must run
// inside an open write session. Coordinates wrap at 16 bits and are passed
// to the hardware unchecked.
func (d *Dev) setAddrWindow(x, y, w, h uint16) error {
	x2 := x + w - 1
	y2 := y + h - 1
	if err := d.t.writeCommand(colAddrSet); err != nil {
		return err
	}
	if err := d.t.write16(x); err != nil {
		return err
	}
	if err := d.t.write16(x2); err != nil {
		return err
	}
	if err := d.t.writeCommand(pageAddrSet); err != nil {
		return err
	}
	if err := d.t.write16(y); err != nil {
		return err
	}
	if err := d.t.write16(y2); err != nil {
		return err
	}
	return d.t.writeCommand(memWrite)
}

// Invert switches the panel between inverted and normal colors. The
// controller tracks the inversion state, not the driver.
func (d *Dev) Invert(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := invertOff
	if on {
		cmd = invertOn
	}
	return d.session(func() error { return d.t.writeCommand(cmd) })
}

// ScrollTo sets the vertical scrolling start address, shifting the visible
// frame by line rows. The value is forwarded to the hardware unchecked.
func (d *Dev) ScrollTo(line uint16) error {
	if d.halted {
		return errHalted
	}
	return d.session(func() error {
		if err := d.t.writeCommand(vertScrollStart); err != nil {
			return err
		}
		return d.t.write16(line)
	})
}

// SetScrollArea defines the vertical scrolling region, keeping topFixed rows
// at the top and bottomFixed rows at the bottom of the panel static. The
// areas are expressed in native (rotation 0) rows.
func (d *Dev) SetScrollArea(topFixed, bottomFixed uint16) error {
	if d.halted {
		return errHalted
	}
	scrollArea := nativeHeight - topFixed - bottomFixed
	return d.session(func() error {
		if err := d.t.writeCommand(vertScrollDef); err != nil {
			return err
		}
		if err := d.t.write16(topFixed); err != nil {
			return err
		}
		if err := d.t.write16(scrollArea); err != nil {
			return err
		}
		return d.t.write16(bottomFixed)
	})
}

// StopScroll returns the panel to normal display mode, ending any vertical
// scrolling.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errHalted
	}
	return d.session(func() error { return d.t.writeCommand(normalMode) })
}

// ReadRegister reads one parameter byte of a controller command, selected by
// index, through the vendor's extended command access mechanism. It is a
// diagnostic escape hatch: the returned byte is whatever the bus produced,
// without validation.
func (d *Dev) ReadRegister(cmd byte, index uint8) (byte, error) {
	if d.halted {
		return 0, errHalted
	}
	var b byte
	err := d.session(func() error {
		if err := d.t.writeCommand(extCmdAccess); err != nil {
			return err
		}
		if err := d.t.writeByte(0x10 + index); err != nil {
			return err
		}
		if err := d.t.writeCommand(cmd); err != nil {
			return err
		}
		var rerr error
		b, rerr = d.t.readByte()
		return rerr
	})
	return b, err
}

// ColorModel implements display.Drawer.
//
// The panel operates in 16-bit RGB565, as implemented by image16.RGB565.
func (d *Dev) ColorModel() color.Model {
	return image16.RGB565Model
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}. The
// bounds are transposed by odd rotations.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns, the panel shows the
// image.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}

	// Full-frame image16 source: push the pixel bytes as-is.
	if img, ok := src.(*image16.BigEndian); ok {
		if r == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
			return d.writeRect(r, img.Pix)
		}
	}

	// Otherwise convert the region to the wire format first.
	buf := image16.NewBigEndian(r)
	draw.Draw(buf, r, src, sp, draw.Src)
	return d.writeRect(r, buf.Pix)
}

// Write writes a full frame of raw RGB565 pixels to the display, two bytes
// per pixel, most-significant byte first. The data must be exactly
// 2*width*height bytes; this accepts the content of image16.BigEndian.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != d.rect.Dx()*d.rect.Dy()*2 {
		return 0, errors.New("ili9341: invalid buffer size")
	}
	if err := d.writeRect(d.rect, pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// FillRect floods a rectangle with a single color, clipped to the panel
// bounds.
func (d *Dev) FillRect(r image.Rectangle, c color.Color) error {
	if d.halted {
		return errHalted
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	px := image16.RGB565Model.Convert(c).(image16.RGB565)
	hi, lo := byte(px>>8), byte(px)
	buf := make([]byte, r.Dx()*r.Dy()*2)
	for i := 0; i < len(buf); i += 2 {
		buf[i] = hi
		buf[i+1] = lo
	}
	return d.writeRect(r, buf)
}

// Fill floods the whole panel with a single color.
func (d *Dev) Fill(c color.Color) error {
	return d.FillRect(d.rect, c)
}

// writeRect streams raw RGB565 pixel bytes into a panel rectangle.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	return d.session(func() error {
		err := d.setAddrWindow(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()))
		if err != nil {
			return err
		}
		return d.t.writeBytes(pixels)
	})
}

// Halt turns the display off and puts the controller to sleep.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	err := d.session(func() error {
		if err := d.t.writeCommand(displayOff); err != nil {
			return err
		}
		return d.t.writeCommand(sleepIn)
	})
	if err != nil {
		return err
	}
	d.halted = true
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var errHalted = errors.New("ili9341: halted")

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
