package cpu

// addrResolver computes an effective 16-bit address, consuming whatever
// cycles that computation costs on real silicon. Immediate mode has no
// resolver since it never computes an address.
type addrResolver func(c *CPU, cycles *int) uint16

// addrZeroPage implements the d addressing mode.
func addrZeroPage(c *CPU, cycles *int) uint16 {
	return uint16(c.fetchByte(cycles))
}

// addrZeroPageX implements the d,x addressing mode: the base is always
// wrapped modulo 256, never crossing into page $01.
func addrZeroPageX(c *CPU, cycles *int) uint16 {
	return c.addrZeroPageIndexed(cycles, c.X)
}

// addrZeroPageY implements the d,y addressing mode.
func addrZeroPageY(c *CPU, cycles *int) uint16 {
	return c.addrZeroPageIndexed(cycles, c.Y)
}

func (c *CPU) addrZeroPageIndexed(cycles *int, index uint8) uint16 {
	base := c.fetchByte(cycles)
	// The hardware reads the unindexed zero-page address while the ALU
	// computes base+index; the result is discarded here.
	c.dummyRead(uint16(base), cycles)
	return uint16(base + index)
}

// addrAbsolute implements the a addressing mode.
func addrAbsolute(c *CPU, cycles *int) uint16 {
	return c.fetchWord(cycles)
}

// addrAbsoluteIndexed implements the a,x / a,y addressing modes. The
// forcePenalty flag models the write/RMW rule of spec.md §4.2: those
// instruction forms always pay the page-cross cycle, while reads pay it
// only when the index addition actually crosses a page boundary.
func (c *CPU) addrAbsoluteIndexed(cycles *int, index uint8, forcePenalty bool) uint16 {
	base := c.fetchWord(cycles)
	lo := uint8(base) + index
	eff := (base & 0xFF00) | uint16(lo)
	crossed := uint16(uint8(base))+uint16(index) > 0xFF
	if crossed {
		eff += 0x0100
	}
	if crossed || forcePenalty {
		c.burnCycle(cycles)
	}
	return eff
}

// addrAbsoluteXRead/addrAbsoluteXWrite and the Y equivalents are the two
// penalty variants of absolute indexed addressing used by the dispatch
// table: read forms only penalize an actual page cross, write/RMW forms
// always penalize.
func addrAbsoluteXRead(c *CPU, cycles *int) uint16  { return c.addrAbsoluteIndexed(cycles, c.X, false) }
func addrAbsoluteXWrite(c *CPU, cycles *int) uint16 { return c.addrAbsoluteIndexed(cycles, c.X, true) }
func addrAbsoluteYRead(c *CPU, cycles *int) uint16  { return c.addrAbsoluteIndexed(cycles, c.Y, false) }
func addrAbsoluteYWrite(c *CPU, cycles *int) uint16 { return c.addrAbsoluteIndexed(cycles, c.Y, true) }

// addrIndirectX implements the (d,x) addressing mode: ptr = (fetch+X) mod
// 256, then a little-endian word is read from the zero page at ptr/ptr+1
// (mod 256, never crossing into page $01).
func addrIndirectX(c *CPU, cycles *int) uint16 {
	zp := c.fetchByte(cycles)
	c.dummyRead(uint16(zp), cycles)
	ptr := zp + c.X
	lo := c.readByte(uint16(ptr), cycles)
	hi := c.readByte(uint16(ptr+1), cycles)
	return uint16(hi)<<8 | uint16(lo)
}

// addrIndirectYIndexed implements the (d),y addressing mode: a base
// pointer is read from the zero page at the fetched address, then Y is
// added to it with the same forced-penalty rule as absolute indexed modes.
func (c *CPU) addrIndirectYIndexed(cycles *int, forcePenalty bool) uint16 {
	zp := c.fetchByte(cycles)
	lo := c.readByte(uint16(zp), cycles)
	hi := c.readByte(uint16(zp+1), cycles)
	baseLo := lo
	effLo := baseLo + c.Y
	eff := (uint16(hi) << 8) | uint16(effLo)
	crossed := uint16(baseLo)+uint16(c.Y) > 0xFF
	if crossed {
		eff += 0x0100
	}
	if crossed || forcePenalty {
		c.burnCycle(cycles)
	}
	return eff
}

func addrIndirectYRead(c *CPU, cycles *int) uint16  { return c.addrIndirectYIndexed(cycles, false) }
func addrIndirectYWrite(c *CPU, cycles *int) uint16 { return c.addrIndirectYIndexed(cycles, true) }

// loadOp is the effect of a load-class instruction given the value fetched
// from memory or the immediate stream: it updates a register and/or flags.
type loadOp func(c *CPU, val uint8)

// rmwOp is the effect of a read-modify-write instruction: given the value
// read from memory it returns the value to write back (having already
// updated flags as a side effect).
type rmwOp func(c *CPU, val uint8) uint8

// doLoad resolves addr, reads the operand, and applies op. Used for every
// non-immediate load-class instruction (LDA, AND, ORA, ADC, CMP, BIT, ...).
func (c *CPU) doLoad(resolve addrResolver, op loadOp, cycles *int) {
	addr := resolve(c, cycles)
	val := c.readByte(addr, cycles)
	op(c, val)
}

// doLoadImmediate applies op directly to the fetched operand byte with no
// address computation.
func (c *CPU) doLoadImmediate(op loadOp, cycles *int) {
	val := c.fetchByte(cycles)
	op(c, val)
}

// doStore resolves addr and writes val there. Used for STA/STX/STY/SAX.
func (c *CPU) doStore(resolve addrResolver, val uint8, cycles *int) {
	addr := resolve(c, cycles)
	c.writeByte(addr, val, cycles)
}

// doRMW resolves addr, reads the operand, performs the documented dummy
// write-back of the unchanged value (as real silicon does), applies op,
// and writes the new value back.
func (c *CPU) doRMW(resolve addrResolver, op rmwOp, cycles *int) {
	addr := resolve(c, cycles)
	val := c.readByte(addr, cycles)
	c.writeByte(addr, val, cycles)
	c.writeByte(addr, op(c, val), cycles)
}
