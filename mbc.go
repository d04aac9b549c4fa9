// mbc.go - the Memory Bank Controller abstraction. spec.md §3 calls for a
// polymorphic rom_read/cart_write/ram_read seam even though the only
// required implementation is a no-banking pass-through; this keeps that
// seam open for real bank-switching MBCs without touching Cartridge or
// the bus. Grounded on the reference implementation's Cartridge::Read,
// which is itself a bare pass-through with bounds checking.

package main

// MBC mediates all cartridge-area bus traffic: ROM reads (0000-7FFF),
// cartridge-area writes (used by real MBCs to select banks or enable
// RAM), and external RAM reads/writes (A000-BFFF).
type MBC interface {
	romRead(rom []byte, addr uint16) byte
	cartWrite(addr uint16, value byte)
	ramRead(addr uint16) byte
	ramWrite(addr uint16, value byte)
}

// newMBC selects an MBC implementation by the header's cartridge-type
// byte. Only ROM-only (0x00) and the flat pass-through used by every
// bank-switching type this core doesn't yet implement are provided;
// anything else logs a diagnostic and falls back to the pass-through,
// which is still correct for any ROM that never writes to bank-select
// registers.
func newMBC(cartType byte, diag *diagnostics) MBC {
	switch cartType {
	case 0x00:
		return newPassThroughMBC()
	default:
		if diag != nil {
			diag.unimplementedMBC(cartType)
		}
		return newPassThroughMBC()
	}
}

// passThroughMBC implements an unbanked 32KiB ROM with up to 8KiB of
// external RAM and no bank-select registers: writes to the cartridge
// area are accepted and discarded, matching a ROM-only cartridge.
type passThroughMBC struct {
	ram [extRamEnd - extRamStart + 1]byte
}

func newPassThroughMBC() *passThroughMBC {
	return &passThroughMBC{}
}

func (m *passThroughMBC) romRead(rom []byte, addr uint16) byte {
	if int(addr) >= len(rom) {
		return 0xFF
	}
	return rom[addr]
}

func (m *passThroughMBC) cartWrite(addr uint16, value byte) {}

func (m *passThroughMBC) ramRead(addr uint16) byte {
	return m.ram[addr-extRamStart]
}

func (m *passThroughMBC) ramWrite(addr uint16, value byte) {
	m.ram[addr-extRamStart] = value
}
