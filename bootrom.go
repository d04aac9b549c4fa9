// bootrom.go - the 256-byte boot ROM overlaid at 0x0000-0x00FF until the
// bus's FF50 register latches it off (bus.go), per spec.md §4.5 and
// AddressConstants.h's BootRomBank register.

package main

import "fmt"

const bootRomSize = bootRomEnd - bootRomStart + 1

type bootROM struct {
	data [bootRomSize]byte
}

func newBootROM(image []byte) (*bootROM, error) {
	if len(image) != bootRomSize {
		return nil, fmt.Errorf("boot rom: expected %d bytes, got %d", bootRomSize, len(image))
	}
	b := &bootROM{}
	copy(b.data[:], image)
	return b, nil
}

func (b *bootROM) Read(addr uint16) byte { return b.data[addr-bootRomStart] }
