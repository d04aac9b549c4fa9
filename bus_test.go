package main

import "testing"

func newTestBus() *SystemBus {
	boot := &bootROM{}
	for i := range boot.data {
		boot.data[i] = 0x76 // HALT, distinguishable from cartridge content
	}
	cart := newCartridge(make([]byte, 0x8000), nil)
	return NewSystemBus(boot, cart, nil)
}

func TestBootRomOverlayAndFF50Latch(t *testing.T) {
	bus := newTestBus()
	bus.cartridge.rom[0x0000] = 0xC3 // distinct cartridge byte at 0x0000

	requireEqualU8(t, "boot rom read", bus.Read(0x0000), 0x76)

	bus.Write(0xFF50, 0x01) // disable boot rom, one-way
	requireEqualU8(t, "cartridge read after disable", bus.Read(0x0000), 0xC3)

	bus.Write(0xFF50, 0x00) // writing zero again must not re-enable it
	requireEqualU8(t, "still cartridge after zero write", bus.Read(0x0000), 0xC3)
}

func TestEchoRAMMirrorsWRAM(t *testing.T) {
	bus := newTestBus()
	bus.Write(0xC010, 0x42)
	requireEqualU8(t, "echo read", bus.Read(0xE010), 0x42)

	bus.Write(0xE020, 0x99)
	requireEqualU8(t, "wram read after echo write", bus.Read(0xC020), 0x99)
}

func TestOAMDMACopiesFromSourcePage(t *testing.T) {
	bus := newTestBus()
	for i := 0; i < oamSize; i++ {
		bus.Write(0xC000+uint16(i), byte(i))
	}

	bus.Write(0xFF46, 0xC0) // source page 0xC000

	for i := 0; i < oamSize; i++ {
		requireEqualU8(t, "oam byte", bus.Read(oamStart+uint16(i)), byte(i))
	}
}

func TestUnusedRegionReadsZero(t *testing.T) {
	bus := newTestBus()
	requireEqualU8(t, "unused read", bus.Read(0xFEA5), 0x00)
}

func TestIERegisterReadsBackWrittenValue(t *testing.T) {
	bus := newTestBus()
	bus.Write(ieAddress, 0x1F)
	requireEqualU8(t, "IE", bus.Read(ieAddress), 0x1F)
}
