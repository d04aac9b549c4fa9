// bus.go - the system bus: single point of dispatch for every CPU memory
// access, per spec.md §4.5. Grounded directly on Bus::Read/Bus::Write in
// the reference implementation (original_source/OGBEmu/src/Emulator/
// Memory/Bus.cpp): the same region ladder, the same boot-ROM overlay
// gated on the FF50 latch, the same echo-RAM mirroring on WRAM writes,
// and the same FF46-triggered DMA. The teacher engine's MemoryBus
// (memory_bus.go) contributes the "one struct implementing the Bus
// interface, one region per field" shape.

package main

// SystemBus wires the boot ROM, cartridge, VRAM, WRAM, OAM, I/O
// registers, HRAM, and IE register into a single 16-bit address space.
type SystemBus struct {
	boot      *bootROM
	cartridge *Cartridge
	vram      vram
	wram      wram
	oam       oam
	io        ioRegisters
	hram      hram
	ie        byte

	bootRomDisabled bool

	diag *diagnostics
}

func NewSystemBus(boot *bootROM, cartridge *Cartridge, diag *diagnostics) *SystemBus {
	return &SystemBus{boot: boot, cartridge: cartridge, diag: diag}
}

func (b *SystemBus) Read(addr uint16) byte {
	switch {
	case addr <= romBank0End:
		if addr <= bootRomEnd && !b.bootRomDisabled && b.boot != nil {
			return b.boot.Read(addr)
		}
		return b.cartridge.Read(addr)
	case addr >= romBankNStart && addr <= romBankNEnd:
		return b.cartridge.Read(addr)
	case addr >= vramStart && addr <= vramEnd:
		return b.vram.Read(addr)
	case addr >= extRamStart && addr <= extRamEnd:
		return b.cartridge.ReadRAM(addr)
	case addr >= wram0Start && addr <= wram1End:
		return b.wram.Read(addr)
	case addr >= echoStart && addr <= echoEnd:
		return b.wram.Read(addr - (echoStart - wram0Start))
	case addr >= oamStart && addr <= oamEnd:
		return b.oam.Read(addr)
	case addr >= unusedStart && addr <= unusedEnd:
		// Hardware returns 0xFF here; this spec calls for 0 instead.
		return 0
	case addr >= ioStart && addr <= ioEnd:
		return b.io.Read(addr)
	case addr >= hramStart && addr <= hramEnd:
		return b.hram.Read(addr)
	case addr == ieAddress:
		return b.ie
	default:
		if b.diag != nil {
			b.diag.outOfRangeAccess("read", addr)
		}
		return 0xFF
	}
}

func (b *SystemBus) Write(addr uint16, value byte) {
	switch {
	case addr <= romBank0End:
		if addr <= bootRomEnd && !b.bootRomDisabled && b.boot != nil {
			return // the boot ROM image itself is never writable.
		}
		b.cartridge.Write(addr, value)
	case addr >= romBankNStart && addr <= romBankNEnd:
		b.cartridge.Write(addr, value)
	case addr >= vramStart && addr <= vramEnd:
		b.vram.Write(addr, value)
	case addr >= extRamStart && addr <= extRamEnd:
		b.cartridge.WriteRAM(addr, value)
	case addr >= wram0Start && addr <= wram1End:
		// A single backing array spans both WRAM banks, so a write here
		// is already visible through the echoStart..echoEnd read path.
		b.wram.Write(addr, value)
	case addr >= echoStart && addr <= echoEnd:
		b.wram.Write(addr-(echoStart-wram0Start), value)
	case addr >= oamStart && addr <= oamEnd:
		b.oam.Write(addr, value)
	case addr >= unusedStart && addr <= unusedEnd:
		// writes to the unusable region are discarded.
	case addr >= ioStart && addr <= ioEnd:
		b.io.Write(addr, value)
		b.handleIoSideEffects(addr, value)
	case addr >= hramStart && addr <= hramEnd:
		b.hram.Write(addr, value)
	case addr == ieAddress:
		b.ie = value
	default:
		if b.diag != nil {
			b.diag.outOfRangeAccess("write", addr)
		}
	}
}

// handleIoSideEffects runs the two I/O writes spec.md calls out
// specially: FF46 triggers OAM DMA, and FF50 is a one-way latch that
// permanently disables the boot ROM overlay once written nonzero.
func (b *SystemBus) handleIoSideEffects(addr uint16, value byte) {
	switch addr {
	case ioStart + regDMA:
		b.doDMA(value)
	case ioStart + regBootRM:
		if value != 0 {
			b.bootRomDisabled = true
		}
	}
}

// doDMA performs the synchronous 160-byte OAM copy from
// (value << 8)..(value << 8)+0x9F, per spec.md §4.5.
func (b *SystemBus) doDMA(value byte) {
	start := uint16(value) << 8
	for i := uint16(0); i < oamSize; i++ {
		b.oam.Write(oamStart+i, b.Read(start+i))
	}
}
