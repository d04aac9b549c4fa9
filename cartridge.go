// cartridge.go - cartridge ROM storage and header parsing.
//
// Header field offsets come from AddressConstants.h in the reference
// implementation; the parsed fields (title, CGB flag, licensee, cart
// type, ROM/RAM size) were dropped from spec.md's distillation but are
// present in the original Cartridge/Cartridge.cpp construction path, so
// they're carried forward here as CartridgeHeader.

package main

import (
	"fmt"
	"strings"
)

// CartridgeHeader is the parsed subset of a Game Boy ROM's 0x0100-0x014F
// header relevant to a core with no PPU or banking beyond ROM-only/MBC
// pass-through.
type CartridgeHeader struct {
	Title        string
	CGBFlag      byte
	LicenseeCode byte
	CartType     byte
	ROMSize      byte
	RAMSize      byte
}

func parseCartridgeHeader(rom []byte) CartridgeHeader {
	h := CartridgeHeader{}
	if len(rom) <= headerTitleEnd {
		return h
	}

	titleEnd := headerTitleEnd
	if rom[headerCGBFlag] == 0x80 || rom[headerCGBFlag] == 0xC0 {
		titleEnd = headerTitleEndCGB
	}
	h.Title = strings.TrimRight(string(rom[headerTitleStart:titleEnd+1]), "\x00")
	h.CGBFlag = rom[headerCGBFlag]

	licensee := rom[headerOldLicensee]
	if licensee == oldLicenseeUseNew && len(rom) > headerNewLicenseeHi {
		licensee = rom[headerNewLicenseeLo]
	}
	h.LicenseeCode = licensee

	h.CartType = rom[headerCartType]
	h.ROMSize = rom[headerROMSize]
	h.RAMSize = rom[headerRAMSize]
	return h
}

func (h CartridgeHeader) String() string {
	return fmt.Sprintf("%s (type=0x%02X rom=0x%02X ram=0x%02X)", h.Title, h.CartType, h.ROMSize, h.RAMSize)
}

// romBytesForSize converts the header's ROM-size code into a byte count:
// 32KiB * 2^code, matching every cartridge type the header can declare.
func romBytesForSize(code byte) int {
	return 0x8000 << code
}

// Cartridge owns the ROM image and routes reads/writes through whatever
// MBC the header selected.
type Cartridge struct {
	rom    []byte
	header CartridgeHeader
	mbc    MBC
}

func newCartridge(rom []byte, diag *diagnostics) *Cartridge {
	header := parseCartridgeHeader(rom)
	mbc := newMBC(header.CartType, diag)
	return &Cartridge{rom: rom, header: header, mbc: mbc}
}

func (c *Cartridge) Header() CartridgeHeader { return c.header }

func (c *Cartridge) Read(addr uint16) byte {
	return c.mbc.romRead(c.rom, addr)
}

func (c *Cartridge) Write(addr uint16, value byte) {
	c.mbc.cartWrite(addr, value)
}

func (c *Cartridge) ReadRAM(addr uint16) byte {
	return c.mbc.ramRead(addr)
}

func (c *Cartridge) WriteRAM(addr uint16, value byte) {
	c.mbc.ramWrite(addr, value)
}
