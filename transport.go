package ili9341

import (
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// transport is the byte-level seam between the driver and the bus. A write
// session brackets a logical multi-byte transaction: startWrite acquires the
// controller, endWrite releases it, and neither may nest. Commands and data
// differ only in the command/data line framing. delay lives on the seam so
// the datasheet wait times of the init script can be observed by tests.
type transport interface {
	startWrite() error
	endWrite() error
	writeCommand(cmd byte) error
	writeByte(b byte) error
	writeBytes(data []byte) error
	write16(v uint16) error
	readByte() (byte, error)
	delay(d time.Duration)
}

// spiTransport drives the controller over 4-wire SPI: one connection for the
// byte stream, the DC pin for command/data framing and an optional software
// chip-select pin for the session bracket. When cs is nil the bus hardware
// asserts chip-select around each transfer on its own.
type spiTransport struct {
	c         conn.Conn
	dc        gpio.PinOut
	cs        gpio.PinOut
	maxTxSize int
}

func (t *spiTransport) startWrite() error {
	if t.cs != nil {
		return t.cs.Out(gpio.Low)
	}
	return nil
}

func (t *spiTransport) endWrite() error {
	if t.cs != nil {
		return t.cs.Out(gpio.High)
	}
	return nil
}

func (t *spiTransport) writeCommand(cmd byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return err
	}
	return t.c.Tx([]byte{cmd}, nil)
}

func (t *spiTransport) writeByte(b byte) error {
	return t.writeBytes([]byte{b})
}

func (t *spiTransport) writeBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := t.dc.Out(gpio.High); err != nil {
		return err
	}
	// Large pixel pushes can exceed what the bus accepts in one transfer.
	for len(data) > t.maxTxSize {
		if err := t.c.Tx(data[:t.maxTxSize], nil); err != nil {
			return err
		}
		data = data[t.maxTxSize:]
	}
	return t.c.Tx(data, nil)
}

func (t *spiTransport) write16(v uint16) error {
	return t.writeBytes([]byte{byte(v >> 8), byte(v)})
}

func (t *spiTransport) readByte() (byte, error) {
	if err := t.dc.Out(gpio.High); err != nil {
		return 0, err
	}
	var r [1]byte
	if err := t.c.Tx([]byte{0x00}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (t *spiTransport) delay(d time.Duration) {
	time.Sleep(d)
}
