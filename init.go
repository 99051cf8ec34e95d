package ili9341

import (
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Init script framing: each record is an opcode, a count byte and that many
// parameter bytes. The high bit of the count byte requests a 150ms settle
// delay after the record; the low 7 bits are the parameter count. An opcode
// of 0x00 ends the script.
const (
	scriptDelayFlag byte = 0x80
	scriptArgMask   byte = 0x7F
)

const scriptDelay = 150 * time.Millisecond

// initScript brings the controller from reset to a working configuration:
// vendor power and timing setup, gamma curves, BGR memory access order,
// 16bpp pixel format, sleep out and display on. The values come from the
// panel vendor and are trusted as-is.
var initScript = []byte{
	0xEF, 3, 0x03, 0x80, 0x02,
	powerCtrlB, 3, 0x00, 0xC1, 0x30,
	powerOnSeqCtrl, 4, 0x64, 0x03, 0x12, 0x81,
	drvTimingCtrlA, 3, 0x85, 0x00, 0x78,
	powerCtrlA, 5, 0x39, 0x2C, 0x00, 0x34, 0x02,
	pumpRatioCtrl, 1, 0x20,
	drvTimingCtrlB, 2, 0x00, 0x00,
	powerCtrl1, 1, 0x23, // VRH: 4.60V
	powerCtrl2, 1, 0x10, // SAP, BT
	vcomCtrl1, 2, 0x3E, 0x28,
	vcomCtrl2, 1, 0x86,
	memAccessCtrl, 1, madctlMX | madctlBGR,
	vertScrollStart, 1, 0x00,
	pixelFormatSet, 1, 0x55, // 16 bits per pixel
	frameRateCtrl, 2, 0x00, 0x18,
	displayFuncCtrl, 3, 0x08, 0x82, 0x27,
	enable3Gamma, 1, 0x00,
	gammaSet, 1, 0x01,
	posGamma, 15, 0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1, 0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00,
	negGamma, 15, 0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1, 0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F,
	sleepOut, scriptDelayFlag,
	displayOn, scriptDelayFlag,
	0x00,
}

// runScript replays a byte-encoded command script through the transport with
// a single advancing cursor. The caller must hold an open write session.
func runScript(t transport, script []byte) error {
	for i := 0; i < len(script); {
		cmd := script[i]
		i++
		if cmd == cmdNOP {
			// End of script marker.
			return nil
		}
		if err := t.writeCommand(cmd); err != nil {
			return err
		}
		n := int(script[i] & scriptArgMask)
		wait := script[i]&scriptDelayFlag != 0
		i++
		if err := t.writeBytes(script[i : i+n]); err != nil {
			return err
		}
		i += n
		if wait {
			t.delay(scriptDelay)
		}
	}
	return nil
}

// init resets the panel, replays the init script and restores the native
// geometry. Called once from NewSPI.
func (d *Dev) init(rst gpio.PinIO) error {
	if rst != nil {
		// Hardware reset line available.
		if err := rst.Out(gpio.High); err != nil {
			return err
		}
		d.t.delay(5 * time.Millisecond)
		if err := rst.Out(gpio.Low); err != nil {
			return err
		}
		d.t.delay(20 * time.Millisecond)
		if err := rst.Out(gpio.High); err != nil {
			return err
		}
		d.t.delay(150 * time.Millisecond)
	} else {
		// No reset line, fall back to a software reset. The datasheet wants
		// 5ms before sleep out; 200ms matches what the panel vendors use.
		err := d.session(func() error { return d.t.writeCommand(swReset) })
		if err != nil {
			return err
		}
		d.t.delay(200 * time.Millisecond)
		err = d.session(func() error { return d.t.writeCommand(sleepOut) })
		if err != nil {
			return err
		}
		d.t.delay(10 * time.Millisecond)
	}

	if err := d.session(func() error { return runScript(d.t, initScript) }); err != nil {
		return err
	}

	d.rotation = Rotation0
	d.rect = image.Rect(0, 0, nativeWidth, nativeHeight)
	return nil
}
