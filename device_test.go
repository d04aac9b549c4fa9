package main

import "testing"

func TestRunOneFrameExecutesInstructions(t *testing.T) {
	boot := &bootROM{}
	cart := newCartridge(make([]byte, 0x8000), nil)
	bus := NewSystemBus(boot, cart, nil)
	diag := newDiagnostics(nil)
	cpu := NewCPU(bus, diag)

	device := NewDevice(cpu, bus, diag, 59.7)
	device.runOneFrame()

	if device.instructionCount == 0 {
		t.Fatalf("runOneFrame executed no instructions")
	}
}

func TestNewDeviceDefaultsFrameRate(t *testing.T) {
	boot := &bootROM{}
	cart := newCartridge(make([]byte, 0x8000), nil)
	bus := NewSystemBus(boot, cart, nil)
	cpu := NewCPU(bus, nil)

	device := NewDevice(cpu, bus, nil, 0)
	if device.FrameRate != 59.7 {
		t.Fatalf("FrameRate = %v, want 59.7 default", device.FrameRate)
	}
}
