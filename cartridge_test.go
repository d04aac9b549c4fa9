package main

import "testing"

func buildTestROM(title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[headerTitleStart:], title)
	rom[headerCGBFlag] = 0x00
	rom[headerOldLicensee] = 0x01
	rom[headerCartType] = 0x00
	rom[headerROMSize] = 0x00
	rom[headerRAMSize] = 0x02
	return rom
}

func TestParseCartridgeHeaderTitleAndSizes(t *testing.T) {
	rom := buildTestROM("TESTGAME")
	h := parseCartridgeHeader(rom)

	if h.Title != "TESTGAME" {
		t.Fatalf("Title = %q, want %q", h.Title, "TESTGAME")
	}
	requireEqualU8(t, "CartType", h.CartType, 0x00)
	requireEqualU8(t, "RAMSize", h.RAMSize, 0x02)
}

func TestLicenseeFallsBackToNewCodeWhenFlagged(t *testing.T) {
	rom := buildTestROM("X")
	rom[headerOldLicensee] = oldLicenseeUseNew
	rom[headerNewLicenseeLo] = 0x07
	rom[headerNewLicenseeHi] = 0x08

	h := parseCartridgeHeader(rom)
	requireEqualU8(t, "LicenseeCode", h.LicenseeCode, 0x07)
}

func TestROMBytesForSize(t *testing.T) {
	if got := romBytesForSize(0); got != 0x8000 {
		t.Fatalf("romBytesForSize(0) = 0x%X, want 0x8000", got)
	}
	if got := romBytesForSize(1); got != 0x10000 {
		t.Fatalf("romBytesForSize(1) = 0x%X, want 0x10000", got)
	}
}

func TestCartridgeReadBeyondROMImageReturnsFF(t *testing.T) {
	rom := buildTestROM("SHORT")
	cart := newCartridge(rom, nil)
	got := cart.Read(0x7FFF) // within the allocated 0x8000, should be 0
	requireEqualU8(t, "in-range read", got, 0x00)

	short := &Cartridge{rom: rom[:0x10], mbc: newPassThroughMBC()}
	requireEqualU8(t, "out-of-range read", short.Read(0x20), 0xFF)
}
