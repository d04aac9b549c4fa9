// diagnostics.go - non-fatal operational diagnostics, per spec.md §7: an
// unimplemented opcode, an out-of-range memory access, or an unrecognized
// MBC type should be reported, not silently ignored and not fatal to the
// running core.
//
// Grounded on the teacher engine's debug_cpu_z80.go, which routes CPU
// anomalies through a dedicated logger rather than panicking mid-run;
// here that's pared down to the stdlib log package per the CLI's ambient
// logging convention (main.go configures the "dmg: " prefix).

package main

import (
	"fmt"
	"log"
)

// diagnostics collects warnings a caller can inspect after a run instead
// of just watching them scroll past on stderr.
type diagnostics struct {
	logger   *log.Logger
	warnings []string
}

func newDiagnostics(logger *log.Logger) *diagnostics {
	return &diagnostics{logger: logger}
}

func (d *diagnostics) record(msg string) {
	d.warnings = append(d.warnings, msg)
	if d.logger != nil {
		d.logger.Println(msg)
	}
}

func (d *diagnostics) unimplementedOpcode(opcode byte, pc uint16) {
	d.record(fmt.Sprintf("unimplemented opcode 0x%02X at pc=0x%04X", opcode, pc))
}

func (d *diagnostics) unimplementedCBOpcode(opcode byte, pc uint16) {
	d.record(fmt.Sprintf("unimplemented CB opcode 0x%02X at pc=0x%04X", opcode, pc))
}

func (d *diagnostics) outOfRangeAccess(op string, addr uint16) {
	d.record(fmt.Sprintf("out-of-range %s at 0x%04X", op, addr))
}

func (d *diagnostics) unimplementedMBC(cartType byte) {
	d.record(fmt.Sprintf("unimplemented MBC type 0x%02X, falling back to ROM-only", cartType))
}
