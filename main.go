// main.go - CLI entry point, per SPEC_FULL.md §2: a cobra root command
// taking a boot ROM path and a cartridge ROM path, with flags to control
// frame pacing, an optional MIPS report, and a frame cap for scripted
// runs. Grounded on oisee-z80-optimizer's cmd/z80opt/main.go (the only
// example in the pack that builds its CLI on cobra).

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var frameRate float64
	var perfEnabled bool
	var maxFrames int

	rootCmd := &cobra.Command{
		Use:   "dmgcore <boot-rom> <cartridge-rom>",
		Short: "dmgcore - a Game Boy SM83 CPU core",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], frameRate, perfEnabled, maxFrames)
		},
	}

	rootCmd.Flags().Float64Var(&frameRate, "frame-rate", 59.7, "video frames per second to pace execution against")
	rootCmd.Flags().BoolVar(&perfEnabled, "perf", false, "report MIPS once a second while running")
	rootCmd.Flags().IntVar(&maxFrames, "max-frames", 0, "stop after this many frames (0 = run indefinitely)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(bootRomPath, cartridgeRomPath string, frameRate float64, perfEnabled bool, maxFrames int) error {
	logger := log.New(os.Stderr, "dmg: ", log.LstdFlags)

	bootImage, err := os.ReadFile(bootRomPath)
	if err != nil {
		return fmt.Errorf("reading boot rom: %w", err)
	}
	boot, err := newBootROM(bootImage)
	if err != nil {
		return err
	}

	cartImage, err := os.ReadFile(cartridgeRomPath)
	if err != nil {
		return fmt.Errorf("reading cartridge rom: %w", err)
	}

	diag := newDiagnostics(logger)
	cartridge := newCartridge(cartImage, diag)
	logger.Printf("cartridge: %s", cartridge.Header())

	if want := romBytesForSize(cartridge.Header().ROMSize); len(cartImage) != want {
		return fmt.Errorf("cartridge rom size mismatch: got %d bytes, header declares %d", len(cartImage), want)
	}

	bus := NewSystemBus(boot, cartridge, diag)
	cpu := NewCPU(bus, diag)

	device := NewDevice(cpu, bus, diag, frameRate)
	device.PerfEnabled = perfEnabled
	device.RunFrames(maxFrames)

	return nil
}
