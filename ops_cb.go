// ops_cb.go - CB-prefixed opcode table (0x00-0xFF after the 0xCB lead-in),
// per spec.md §4.1: eight 8-wide shift/rotate groups, then BIT/RES/SET each
// spanning 64 opcodes keyed by (bit, register). Built with range loops,
// mirroring the teacher engine's initCBOps (cpu_z80.go).

package main

func (c *CPU) initCBOps() {
	shiftOps := [8]func(*CPU, byte){
		(*CPU).opRLC,
		(*CPU).opRRC,
		(*CPU).opRL,
		(*CPU).opRR,
		(*CPU).opSLA,
		(*CPU).opSRA,
		(*CPU).opSWAP,
		(*CPU).opSRL,
	}
	for group := byte(0); group < 8; group++ {
		fn := shiftOps[group]
		for reg := byte(0); reg < 8; reg++ {
			r := reg
			c.cbOps[int(group)*8+int(r)] = func(cpu *CPU) { fn(cpu, r) }
		}
	}

	for bit := byte(0); bit < 8; bit++ {
		for reg := byte(0); reg < 8; reg++ {
			b, r := bit, reg
			c.cbOps[0x40+int(b)*8+int(r)] = func(cpu *CPU) { cpu.opBIT(b, r) }
			c.cbOps[0x80+int(b)*8+int(r)] = func(cpu *CPU) { cpu.opRES(b, r) }
			c.cbOps[0xC0+int(b)*8+int(r)] = func(cpu *CPU) { cpu.opSET(b, r) }
		}
	}
}

func (c *CPU) opPrefixCB() {
	opcode := c.fetchByte()
	op := c.cbOps[opcode]
	if op == nil {
		if c.diag != nil {
			c.diag.unimplementedCBOpcode(opcode, c.pc-1)
		}
		return
	}
	op(c)
}

func (c *CPU) opRLC(reg byte) {
	v := c.readReg8(reg)
	res, carry := rotateLeftCircular(v)
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opRRC(reg byte) {
	v := c.readReg8(reg)
	res, carry := rotateRightCircular(v)
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opRL(reg byte) {
	v := c.readReg8(reg)
	res, carry := rotateLeft(v, c.reg.flag(flagC))
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opRR(reg byte) {
	v := c.readReg8(reg)
	res, carry := rotateRight(v, c.reg.flag(flagC))
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opSLA(reg byte) {
	v := c.readReg8(reg)
	res, carry := shiftLeftArithmetic(v)
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opSRA(reg byte) {
	v := c.readReg8(reg)
	res, carry := shiftRightArithmetic(v)
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

func (c *CPU) opSWAP(reg byte) {
	res := swapNibbles(c.readReg8(reg))
	c.writeReg8(reg, res)
	c.reg.F = 0
	c.reg.setFlag(flagZ, res == 0)
}

func (c *CPU) opSRL(reg byte) {
	v := c.readReg8(reg)
	res, carry := shiftRightLogical(v)
	c.writeReg8(reg, res)
	c.setShiftFlags(res, carry)
}

// setShiftFlags applies the common flag rule for every CB rotate/shift
// group: Z from the result, N and H cleared, C from the bit shifted out.
func (c *CPU) setShiftFlags(result byte, carryOut bool) {
	c.reg.F = 0
	c.reg.setFlag(flagZ, result == 0)
	c.reg.setFlag(flagC, carryOut)
}

func (c *CPU) opBIT(bit, reg byte) {
	v := c.readReg8(reg)
	set := v&(1<<bit) != 0
	c.reg.setFlag(flagZ, !set)
	c.reg.setFlag(flagN, false)
	c.reg.setFlag(flagH, true)
}

func (c *CPU) opRES(bit, reg byte) {
	v := c.readReg8(reg)
	c.writeReg8(reg, v&^(1<<bit))
}

func (c *CPU) opSET(bit, reg byte) {
	v := c.readReg8(reg)
	c.writeReg8(reg, v|(1<<bit))
}
