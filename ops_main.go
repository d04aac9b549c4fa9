// ops_main.go - Primary opcode table (0x00-0xFF), built per spec.md §4.1:
// the high block (0x40-0xBF, LD r,r' / ALU r, with 0x76 carved out as
// HALT) is filled by range loops keyed on the opcode's own bit fields;
// everything else is assigned individually. This mirrors the teacher
// engine's initBaseOps (cpu_z80.go), which fills 0x40-0x7F and 0x80-0xBF
// with closures built from range loops before assigning the irregular
// opcodes one at a time.

package main

func (c *CPU) initBaseOps() {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) { cpu.opLDRegReg(dest, src) }
	}
	c.baseOps[0x76] = (*CPU).opHALT

	for op := 0x80; op <= 0xBF; op++ {
		group := aluOp((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) { cpu.opALUReg(group, src) }
	}

	// 8-bit INC/DEC/LD r,n over B,C,D,E,H,L,(HL),A.
	incOpcodes := [8]byte{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	decOpcodes := [8]byte{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	ldImmOpcodes := [8]byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for i := byte(0); i < 8; i++ {
		reg := i
		c.baseOps[incOpcodes[i]] = func(cpu *CPU) { cpu.opINC8(reg) }
		c.baseOps[decOpcodes[i]] = func(cpu *CPU) { cpu.opDEC8(reg) }
		c.baseOps[ldImmOpcodes[i]] = func(cpu *CPU) { cpu.opLDRegImm(reg) }
	}

	// 16-bit register group: LD rr,d16 / INC rr / DEC rr / ADD HL,rr.
	ld16Opcodes := [4]byte{0x01, 0x11, 0x21, 0x31}
	inc16Opcodes := [4]byte{0x03, 0x13, 0x23, 0x33}
	dec16Opcodes := [4]byte{0x0B, 0x1B, 0x2B, 0x3B}
	addHL16Opcodes := [4]byte{0x09, 0x19, 0x29, 0x39}
	for i := byte(0); i < 4; i++ {
		sel := i
		c.baseOps[ld16Opcodes[i]] = func(cpu *CPU) { cpu.opLD16Imm(sel) }
		c.baseOps[inc16Opcodes[i]] = func(cpu *CPU) { cpu.opINC16(sel) }
		c.baseOps[dec16Opcodes[i]] = func(cpu *CPU) { cpu.opDEC16(sel) }
		c.baseOps[addHL16Opcodes[i]] = func(cpu *CPU) { cpu.opADDHL16(sel) }
	}

	// PUSH/POP over BC, DE, HL, AF.
	popOpcodes := [4]byte{0xC1, 0xD1, 0xE1, 0xF1}
	pushOpcodes := [4]byte{0xC5, 0xD5, 0xE5, 0xF5}
	for i := byte(0); i < 4; i++ {
		sel := i
		c.baseOps[popOpcodes[i]] = func(cpu *CPU) { cpu.opPOP(sel) }
		c.baseOps[pushOpcodes[i]] = func(cpu *CPU) { cpu.opPUSH(sel) }
	}

	// Conditional JR/JP/CALL/RET over NZ, Z, NC, C.
	jrCcOpcodes := [4]byte{0x20, 0x28, 0x30, 0x38}
	jpCcOpcodes := [4]byte{0xC2, 0xCA, 0xD2, 0xDA}
	callCcOpcodes := [4]byte{0xC4, 0xCC, 0xD4, 0xDC}
	retCcOpcodes := [4]byte{0xC0, 0xC8, 0xD0, 0xD8}
	for i := byte(0); i < 4; i++ {
		cc := i
		c.baseOps[jrCcOpcodes[i]] = func(cpu *CPU) { cpu.opJRcc(cc) }
		c.baseOps[jpCcOpcodes[i]] = func(cpu *CPU) { cpu.opJPcc(cc) }
		c.baseOps[callCcOpcodes[i]] = func(cpu *CPU) { cpu.opCALLcc(cc) }
		c.baseOps[retCcOpcodes[i]] = func(cpu *CPU) { cpu.opRETcc(cc) }
	}

	// RST vectors.
	for i := byte(0); i < 8; i++ {
		op := 0xC7 + i*8
		vector := uint16(i) * 8
		c.baseOps[op] = func(cpu *CPU) { cpu.opRST(vector) }
	}

	// ALU A,d8 immediate forms.
	aluImmOpcodes := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for i := byte(0); i < 8; i++ {
		group := aluOp(i)
		c.baseOps[aluImmOpcodes[i]] = func(cpu *CPU) { cpu.performALU(group, cpu.fetchByte()) }
	}

	c.baseOps[0x00] = (*CPU).opNOP
	c.baseOps[0x02] = func(cpu *CPU) { cpu.write(cpu.reg.BC(), cpu.reg.A) }
	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x08] = (*CPU).opLDa16SP
	c.baseOps[0x0A] = func(cpu *CPU) { cpu.reg.A = cpu.read(cpu.reg.BC()) }
	c.baseOps[0x0F] = (*CPU).opRRCA

	c.baseOps[0x10] = (*CPU).opSTOP
	c.baseOps[0x12] = func(cpu *CPU) { cpu.write(cpu.reg.DE(), cpu.reg.A) }
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x18] = (*CPU).opJR
	c.baseOps[0x1A] = func(cpu *CPU) { cpu.reg.A = cpu.read(cpu.reg.DE()) }
	c.baseOps[0x1F] = (*CPU).opRRA

	c.baseOps[0x22] = func(cpu *CPU) {
		addr := cpu.reg.HL()
		cpu.write(addr, cpu.reg.A)
		cpu.reg.SetHL(addr + 1)
	}
	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2A] = func(cpu *CPU) {
		addr := cpu.reg.HL()
		cpu.reg.A = cpu.read(addr)
		cpu.reg.SetHL(addr + 1)
	}
	c.baseOps[0x2F] = (*CPU).opCPL

	c.baseOps[0x32] = func(cpu *CPU) {
		addr := cpu.reg.HL()
		cpu.write(addr, cpu.reg.A)
		cpu.reg.SetHL(addr - 1)
	}
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3A] = func(cpu *CPU) {
		addr := cpu.reg.HL()
		cpu.reg.A = cpu.read(addr)
		cpu.reg.SetHL(addr - 1)
	}
	c.baseOps[0x3F] = (*CPU).opCCF

	c.baseOps[0xC3] = (*CPU).opJP
	c.baseOps[0xC9] = (*CPU).opRET
	c.baseOps[0xCB] = (*CPU).opPrefixCB
	c.baseOps[0xCD] = (*CPU).opCALL
	c.baseOps[0xD9] = (*CPU).opRETI

	c.baseOps[0xE0] = func(cpu *CPU) { cpu.write(0xFF00+uint16(cpu.fetchByte()), cpu.reg.A) }
	c.baseOps[0xE2] = func(cpu *CPU) { cpu.write(0xFF00+uint16(cpu.reg.C), cpu.reg.A) }
	c.baseOps[0xE8] = (*CPU).opADDSPe8
	c.baseOps[0xE9] = func(cpu *CPU) { cpu.pc = cpu.reg.HL() }
	c.baseOps[0xEA] = func(cpu *CPU) { cpu.write(cpu.fetchWord(), cpu.reg.A) }

	c.baseOps[0xF0] = func(cpu *CPU) { cpu.reg.A = cpu.read(0xFF00 + uint16(cpu.fetchByte())) }
	c.baseOps[0xF2] = func(cpu *CPU) { cpu.reg.A = cpu.read(0xFF00 + uint16(cpu.reg.C)) }
	c.baseOps[0xF3] = func(cpu *CPU) { cpu.ime = false; cpu.eiDelay = 0 }
	c.baseOps[0xF8] = (*CPU).opLDHLSPe8
	c.baseOps[0xF9] = func(cpu *CPU) { cpu.sp = cpu.reg.HL(); cpu.tick(4) }
	c.baseOps[0xFA] = func(cpu *CPU) { cpu.reg.A = cpu.read(cpu.fetchWord()) }
	c.baseOps[0xFB] = func(cpu *CPU) { cpu.eiDelay = 2 }
}

func (c *CPU) opNOP() {}

func (c *CPU) opLDRegReg(dest, src byte) {
	c.writeReg8(dest, c.readReg8(src))
}

func (c *CPU) opLDRegImm(dest byte) {
	c.writeReg8(dest, c.fetchByte())
}

func (c *CPU) opALUReg(op aluOp, src byte) {
	c.performALU(op, c.readReg8(src))
}

func (c *CPU) opINC8(reg byte) {
	c.writeReg8(reg, c.inc8(c.readReg8(reg)))
}

func (c *CPU) opDEC8(reg byte) {
	c.writeReg8(reg, c.dec8(c.readReg8(reg)))
}

func (c *CPU) get16(sel byte) uint16 {
	switch sel {
	case 0:
		return c.reg.BC()
	case 1:
		return c.reg.DE()
	case 2:
		return c.reg.HL()
	default:
		return c.sp
	}
}

func (c *CPU) set16(sel byte, v uint16) {
	switch sel {
	case 0:
		c.reg.SetBC(v)
	case 1:
		c.reg.SetDE(v)
	case 2:
		c.reg.SetHL(v)
	default:
		c.sp = v
	}
}

func (c *CPU) opLD16Imm(sel byte) {
	c.set16(sel, c.fetchWord())
}

func (c *CPU) opINC16(sel byte) {
	c.set16(sel, c.get16(sel)+1)
	c.tick(4)
}

func (c *CPU) opDEC16(sel byte) {
	c.set16(sel, c.get16(sel)-1)
	c.tick(4)
}

func (c *CPU) opADDHL16(sel byte) {
	hl := c.reg.HL()
	v := c.get16(sel)
	res := hl + v
	c.reg.setFlag(flagN, false)
	c.reg.setFlag(flagH, (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
	c.reg.setFlag(flagC, uint32(hl)+uint32(v) > 0xFFFF)
	c.reg.SetHL(res)
	c.tick(4)
}

func (c *CPU) get16Stack(sel byte) uint16 {
	if sel == 3 {
		return c.reg.AF()
	}
	return c.get16(sel)
}

func (c *CPU) set16Stack(sel byte, v uint16) {
	if sel == 3 {
		c.reg.SetAF(v)
		return
	}
	c.set16(sel, v)
}

func (c *CPU) opPUSH(sel byte) {
	c.tick(4)
	c.pushWord(c.get16Stack(sel))
}

func (c *CPU) opPOP(sel byte) {
	c.set16Stack(sel, c.popWord())
}

func (c *CPU) opLDa16SP() {
	addr := c.fetchWord()
	c.write(addr, byte(c.sp))
	c.write(addr+1, byte(c.sp>>8))
}

func (c *CPU) opRLCA() {
	res, carry := rotateLeftCircular(c.reg.A)
	c.reg.A = res
	c.reg.F = 0
	c.reg.setFlag(flagC, carry)
}

func (c *CPU) opRRCA() {
	res, carry := rotateRightCircular(c.reg.A)
	c.reg.A = res
	c.reg.F = 0
	c.reg.setFlag(flagC, carry)
}

func (c *CPU) opRLA() {
	res, carry := rotateLeft(c.reg.A, c.reg.flag(flagC))
	c.reg.A = res
	c.reg.F = 0
	c.reg.setFlag(flagC, carry)
}

func (c *CPU) opRRA() {
	res, carry := rotateRight(c.reg.A, c.reg.flag(flagC))
	c.reg.A = res
	c.reg.F = 0
	c.reg.setFlag(flagC, carry)
}

func (c *CPU) opDAA() { c.daa() }
func (c *CPU) opCPL() { c.cpl() }
func (c *CPU) opSCF() { c.scf() }
func (c *CPU) opCCF() { c.ccf() }

func (c *CPU) opHALT() {
	c.halted = true
}

// opSTOP consumes the mandatory padding byte; this core models no speed
// switch and no button-press wakeup, so STOP otherwise behaves as a NOP.
func (c *CPU) opSTOP() {
	c.fetchByte()
}

func (c *CPU) jumpRelative() {
	offset := int8(c.fetchByte())
	c.pc = uint16(int32(c.pc) + int32(offset))
}

func (c *CPU) opJR() {
	c.jumpRelative()
	c.tick(4)
}

func (c *CPU) opJRcc(cc byte) {
	taken := c.condition(cc)
	offset := int8(c.fetchByte())
	if taken {
		c.pc = uint16(int32(c.pc) + int32(offset))
		c.tick(4)
	}
}

func (c *CPU) opJP() {
	c.pc = c.fetchWord()
	c.tick(4)
}

func (c *CPU) opJPcc(cc byte) {
	taken := c.condition(cc)
	addr := c.fetchWord()
	if taken {
		c.pc = addr
		c.tick(4)
	}
}

func (c *CPU) opCALL() {
	addr := c.fetchWord()
	c.tick(4)
	c.pushWord(c.pc)
	c.pc = addr
}

func (c *CPU) opCALLcc(cc byte) {
	taken := c.condition(cc)
	addr := c.fetchWord()
	if taken {
		c.tick(4)
		c.pushWord(c.pc)
		c.pc = addr
	}
}

func (c *CPU) opRET() {
	c.pc = c.popWord()
	c.tick(4)
}

func (c *CPU) opRETI() {
	c.pc = c.popWord()
	c.tick(4)
	c.ime = true
	c.eiDelay = 0
}

func (c *CPU) opRETcc(cc byte) {
	c.tick(4)
	if c.condition(cc) {
		c.pc = c.popWord()
		c.tick(4)
	}
}

func (c *CPU) opRST(vector uint16) {
	c.tick(4)
	c.pushWord(c.pc)
	c.pc = vector
}

// addSPSigned implements the unsigned-low-byte flag rule spec.md §4.3
// specifies for ADD SP,e8 and LD HL,SP+e8.
func (c *CPU) addSPSigned() (uint16, byte) {
	imm := c.fetchByte()
	e8 := int8(imm)
	sp := c.sp
	result := uint16(int32(sp) + int32(e8))

	var f byte
	if (sp&0x0F)+(uint16(imm)&0x0F) > 0x0F {
		f |= flagH
	}
	if (sp&0xFF)+uint16(imm) > 0xFF {
		f |= flagC
	}
	return result, f
}

func (c *CPU) opADDSPe8() {
	result, f := c.addSPSigned()
	c.sp = result
	c.reg.F = f
	c.tick(8)
}

func (c *CPU) opLDHLSPe8() {
	result, f := c.addSPSigned()
	c.reg.SetHL(result)
	c.reg.F = f
	c.tick(4)
}
