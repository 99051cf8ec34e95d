package ili9341

// ILI9341 command set, datasheet sections 8.2 (level 1) and 8.3 (level 2).
const (
	cmdNOP          byte = 0x00
	swReset         byte = 0x01 // Software Reset
	readDispID      byte = 0x04 // Read Display Identification Information
	readDispStatus  byte = 0x09 // Read Display Status
	readPowerMode   byte = 0x0A // Read Display Power Mode
	readMADCtl      byte = 0x0B // Read Display MADCTL
	readPixelFormat byte = 0x0C // Read Display Pixel Format
	readSelfDiag    byte = 0x0F // Read Display Self-Diagnostic Result

	sleepIn     byte = 0x10 // Enter Sleep Mode
	sleepOut    byte = 0x11 // Sleep Out
	partialMode byte = 0x12 // Partial Mode ON
	normalMode  byte = 0x13 // Normal Display Mode ON

	invertOff  byte = 0x20 // Display Inversion OFF
	invertOn   byte = 0x21 // Display Inversion ON
	gammaSet   byte = 0x26 // Gamma Set
	displayOff byte = 0x28 // Display OFF
	displayOn  byte = 0x29 // Display ON

	colAddrSet  byte = 0x2A // Column Address Set
	pageAddrSet byte = 0x2B // Page Address Set
	memWrite    byte = 0x2C // Memory Write
	memRead     byte = 0x2E // Memory Read

	partialArea     byte = 0x30 // Partial Area
	vertScrollDef   byte = 0x33 // Vertical Scrolling Definition
	memAccessCtrl   byte = 0x36 // Memory Access Control
	vertScrollStart byte = 0x37 // Vertical Scrolling Start Address
	idleModeOff     byte = 0x38 // Idle Mode OFF
	idleModeOn      byte = 0x39 // Idle Mode ON
	pixelFormatSet  byte = 0x3A // COLMOD: Pixel Format Set

	frameRateCtrl   byte = 0xB1 // Frame Rate Control (normal mode)
	displayFuncCtrl byte = 0xB6 // Display Function Control

	powerCtrl1 byte = 0xC0 // Power Control 1
	powerCtrl2 byte = 0xC1 // Power Control 2
	vcomCtrl1  byte = 0xC5 // VCOM Control 1
	vcomCtrl2  byte = 0xC7 // VCOM Control 2
	powerCtrlA byte = 0xCB // Power Control A
	powerCtrlB byte = 0xCF // Power Control B

	readID4 byte = 0xD3 // Read ID4
	readID1 byte = 0xDA // Read ID1
	readID2 byte = 0xDB // Read ID2
	readID3 byte = 0xDC // Read ID3

	// Undocumented vendor command: selects which parameter of a following
	// command a single-byte read returns. See Dev.ReadRegister.
	extCmdAccess byte = 0xD9

	posGamma       byte = 0xE0 // Positive Gamma Correction
	negGamma       byte = 0xE1 // Negative Gamma Correction
	drvTimingCtrlA byte = 0xE8 // Driver Timing Control A
	drvTimingCtrlB byte = 0xEA // Driver Timing Control B
	powerOnSeqCtrl byte = 0xED // Power On Sequence Control
	enable3Gamma   byte = 0xF2 // Enable 3 Gamma Control
	interfaceCtrl  byte = 0xF6 // Interface Control
	pumpRatioCtrl  byte = 0xF7 // Pump Ratio Control
)

// Memory access control register bits.
const (
	madctlMY  byte = 0x80 // row address order: bottom to top
	madctlMX  byte = 0x40 // column address order: right to left
	madctlMV  byte = 0x20 // row/column exchange
	madctlML  byte = 0x10 // vertical refresh order: bottom to top
	madctlBGR byte = 0x08 // blue-green-red pixel order
	madctlMH  byte = 0x04 // horizontal refresh order: right to left
)
