package main

import "testing"

func TestRegisterPairComposition(t *testing.T) {
	var r registers
	r.B, r.C = 0x12, 0x34
	requireEqualU16(t, "BC", r.BC(), 0x1234)

	r.SetDE(0xBEEF)
	requireEqualU8(t, "D", r.D, 0xBE)
	requireEqualU8(t, "E", r.E, 0xEF)

	r.SetHL(0xCAFE)
	requireEqualU16(t, "HL", r.HL(), 0xCAFE)
}

func TestAFMasksLowNibbleOfF(t *testing.T) {
	var r registers
	r.A = 0x42
	r.F = 0xFF
	requireEqualU16(t, "AF", r.AF(), 0x42F0)

	r.SetAF(0x1234)
	requireEqualU8(t, "A", r.A, 0x12)
	requireEqualU8(t, "F", r.F, 0x30)
}

func TestSetFlagKeepsLowNibbleClear(t *testing.T) {
	var r registers
	r.setFlag(flagZ, true)
	r.setFlag(flagC, true)
	requireEqualU8(t, "F", r.F, flagZ|flagC)
	requireFlag(t, &r, flagN, "N", false)

	r.setFlag(flagZ, false)
	requireEqualU8(t, "F", r.F, flagC)
}

func TestResetZeroesAllFields(t *testing.T) {
	r := registers{A: 1, F: 2, B: 3, C: 4, D: 5, E: 6, H: 7, L: 8}
	r.reset()
	if r != (registers{}) {
		t.Fatalf("reset() left non-zero state: %+v", r)
	}
}
