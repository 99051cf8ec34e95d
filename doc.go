// Package ili9341 controls an ILI9341 TFT-LCD panel via 4-wire SPI.
//
// The ILI9341 is a single-chip 262K-color TFT controller driving 240×320
// pixel panels, common on 2.2"–2.8" breakout boards. This driver implements
// the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 240×320 native resolution, 16-bit RGB565 pixel format
// - Four orientations in 90° steps via the memory access control register
// - Hardware vertical scrolling
// - Display color inversion
// - Optional hardware reset pin; software reset otherwise
//
// # Hardware Connection
//
// Connect the ILI9341 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK/CLK     → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or a GPIO, see Opts.CS)
//	RESET       → Optional: GPIO for hardware reset
//	LED         → Backlight supply (not managed by this driver)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"image/color"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9341"
//		"periph.io/x/devices/v3/ili9341/image16"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := ili9341.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// Render into the panel's native pixel format
//		img := image16.NewBigEndian(dev.Bounds())
//		for y := 0; y < 320; y++ {
//			for x := 0; x < 240; x++ {
//				img.SetRGB565(x, y, image16.RGB565(x*y))
//			}
//		}
//
//		// Display the image
//		dev.Draw(dev.Bounds(), img, image.Point{})
//
//		// Or flood a region with one color
//		dev.FillRect(image.Rect(10, 10, 50, 50), color.RGBA{R: 255, A: 255})
//	}
//
// # Orientation
//
// SetRotation rotates the output in 90° steps. Odd rotations transpose the
// bounds to 320×240:
//
//	dev.SetRotation(ili9341.Rotation90)
//	fmt.Println(dev.Bounds()) // (0,0)-(320,240)
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RESET) pin connected to a GPIO, provide it in
// the Opts struct and the driver performs a hardware reset during
// initialization. Without it the driver issues the software reset command and
// waits the datasheet-mandated settle times instead:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := ili9341.NewSPI(spiBus, dcPin, &ili9341.Opts{
//		RST: rstPin,
//	})
//
// # Scrolling
//
// The controller scrolls vertically (in native orientation) by offsetting
// the frame memory read pointer:
//
//	dev.SetScrollArea(0, 0)   // whole panel scrolls
//	dev.ScrollTo(120)         // shift display by 120 rows
//	dev.StopScroll()          // back to normal display
//
// # Concurrency
//
// The driver is not safe for concurrent use. Every operation is a blocking
// transaction on a single shared bus; the caller serializes access.
package ili9341
