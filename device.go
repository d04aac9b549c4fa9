// device.go - ties the CPU and bus together into a runnable machine and
// paces execution against the frame rate the CLI was given, per
// SPEC_FULL.md §2. Grounded on the teacher engine's CPUZ80Runner/
// CPU_Z80.Execute (cpu_z80_runner.go, cpu_z80.go): a thin runner struct
// wrapping cpu+bus, a Step-driven loop, and PerfEnabled MIPS reporting
// from an instruction counter, checked against a one-second wall-clock
// timer once per frame rather than on every step.

package main

import (
	"fmt"
	"os"
	"time"
)

type Device struct {
	CPU  *CPU
	Bus  *SystemBus
	diag *diagnostics

	FrameRate   float64
	PerfEnabled bool

	instructionCount uint64
	frameCount       uint64
}

func NewDevice(cpu *CPU, bus *SystemBus, diag *diagnostics, frameRate float64) *Device {
	if frameRate <= 0 {
		frameRate = 59.7
	}
	return &Device{CPU: cpu, Bus: bus, diag: diag, FrameRate: frameRate}
}

// RunFrames steps the machine for exactly maxFrames video frames (or
// forever, if maxFrames <= 0), pacing each frame against wall-clock time
// at d.FrameRate and reporting MIPS once a second when PerfEnabled.
func (d *Device) RunFrames(maxFrames int) {
	start := time.Now()
	lastReport := start
	frameDuration := time.Duration(float64(time.Second) / d.FrameRate)

	for maxFrames <= 0 || int(d.frameCount) < maxFrames {
		frameStart := time.Now()
		d.runOneFrame()
		d.frameCount++

		if d.PerfEnabled {
			now := time.Now()
			if now.Sub(lastReport) >= time.Second {
				elapsed := now.Sub(start).Seconds()
				ips := float64(d.instructionCount) / elapsed
				fmt.Fprintf(os.Stderr, "dmgcore: %.2f MIPS (%d instructions, %d frames in %.1fs)\n",
					ips/1_000_000, d.instructionCount, d.frameCount, elapsed)
				lastReport = now
			}
		}

		if elapsed := time.Since(frameStart); elapsed < frameDuration {
			time.Sleep(frameDuration - elapsed)
		}
	}
}

// runOneFrame steps the CPU until at least one frame's worth of T-states
// have elapsed, per spec.md §4.7: masterClockHz/d.FrameRate, not the
// console's fixed 70224-cycle vblank budget, so --frame-rate changes the
// T-states run per frame along with the wall-clock pacing in RunFrames;
// at full speed the emulated rate stays at masterClockHz per second.
func (d *Device) runOneFrame() {
	budget := uint32(float64(masterClockHz) / d.FrameRate)
	var cycles uint32
	for cycles < budget {
		cycles += d.CPU.Step()
		d.instructionCount++
	}
}
