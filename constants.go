// constants.go - DMG address map and interrupt vector constants.

package main

// Bus address ranges, mirroring AddressConstants.h from the reference
// implementation this core was distilled from.
const (
	bootRomStart = 0x0000
	bootRomEnd   = 0x00FF

	romBank0Start = 0x0000
	romBank0End   = 0x3FFF
	romBankNStart = 0x4000
	romBankNEnd   = 0x7FFF

	vramStart = 0x8000
	vramEnd   = 0x9FFF

	extRamStart = 0xA000
	extRamEnd   = 0xBFFF

	wram0Start = 0xC000
	wram0End   = 0xCFFF
	wram1Start = 0xD000
	wram1End   = 0xDFFF

	echoStart = 0xE000
	echoEnd   = 0xFDFF

	oamStart = 0xFE00
	oamEnd   = 0xFE9F

	unusedStart = 0xFEA0
	unusedEnd   = 0xFEFF

	ioStart = 0xFF00
	ioEnd   = 0xFF7F

	hramStart = 0xFF80
	hramEnd   = 0xFFFE

	ieAddress = 0xFFFF
)

// I/O register offsets within the io[] backing store (relative to ioStart).
const (
	regIF     = 0xFF0F - ioStart
	regDMA    = 0xFF46 - ioStart
	regBootRM = 0xFF50 - ioStart
)

const ifAddress = 0xFF0F

// Interrupt vectors, in priority order (lowest bit = highest priority).
const (
	vecVBlank = 0x40
	vecLCD    = 0x48
	vecTimer  = 0x50
	vecSerial = 0x58
	vecJoypad = 0x60
)

const (
	flagVBlank = 1 << 0
	flagLCD    = 1 << 1
	flagTimer  = 1 << 2
	flagSerial = 1 << 3
	flagJoypad = 1 << 4
	flagMask   = 0x1F
)

// Cartridge header field offsets, per the header this core reads.
const (
	headerTitleStart   = 0x0134
	headerTitleEndCGB  = 0x013E
	headerTitleEnd     = 0x0143
	headerCGBFlag      = 0x0143
	headerNewLicenseeLo = 0x0144
	headerNewLicenseeHi = 0x0145
	headerCartType     = 0x0147
	headerROMSize      = 0x0148
	headerRAMSize      = 0x0149
	headerOldLicensee  = 0x014B
	oldLicenseeUseNew  = 0x33
)

// masterClockHz is the DMG's fixed oscillator frequency. device.go divides
// it by the configured frame rate to get each frame's T-state budget
// (70224 at the hardware-accurate 59.7275 frames/sec).
const masterClockHz = 4194304
