// memory.go - fixed-size backing stores for the regions the bus owns
// directly (as opposed to the cartridge, which owns ROM and, possibly,
// external RAM). Sizes and names follow AddressConstants.h from the
// reference implementation this core was distilled from.

package main

const (
	vramSize = vramEnd - vramStart + 1
	wramSize = wram1End - wram0Start + 1 // banks 0 and 1 are contiguous here.
	oamSize  = oamEnd - oamStart + 1
	ioSize   = ioEnd - ioStart + 1
	hramSize = hramEnd - hramStart + 1
)

type vram struct{ data [vramSize]byte }

func (m *vram) Read(addr uint16) byte     { return m.data[addr-vramStart] }
func (m *vram) Write(addr uint16, v byte) { m.data[addr-vramStart] = v }

type wram struct{ data [wramSize]byte }

func (m *wram) Read(addr uint16) byte     { return m.data[addr-wram0Start] }
func (m *wram) Write(addr uint16, v byte) { m.data[addr-wram0Start] = v }

type oam struct{ data [oamSize]byte }

func (m *oam) Read(addr uint16) byte     { return m.data[addr-oamStart] }
func (m *oam) Write(addr uint16, v byte) { m.data[addr-oamStart] = v }

type ioRegisters struct{ data [ioSize]byte }

func (m *ioRegisters) Read(addr uint16) byte     { return m.data[addr-ioStart] }
func (m *ioRegisters) Write(addr uint16, v byte) { m.data[addr-ioStart] = v }

type hram struct{ data [hramSize]byte }

func (m *hram) Read(addr uint16) byte     { return m.data[addr-hramStart] }
func (m *hram) Write(addr uint16, v byte) { m.data[addr-hramStart] = v }
