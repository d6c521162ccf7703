package cpu

// Single-byte implied-mode instructions all cost 2 cycles: the opcode
// fetch plus one spurious read of the following byte (PC is not advanced
// by it). transferCycle captures that shared shape.
func (c *CPU) transferCycle(cycles *int) {
	c.burnCycle(cycles)
}

func (c *CPU) iTAX(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.X, c.A) }
func (c *CPU) iTAY(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.Y, c.A) }
func (c *CPU) iTXA(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.A, c.X) }
func (c *CPU) iTYA(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.A, c.Y) }

func (c *CPU) iINX(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.X, c.X+1) }
func (c *CPU) iINY(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.Y, c.Y+1) }
func (c *CPU) iDEX(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.X, c.X-1) }
func (c *CPU) iDEY(cycles *int) { c.transferCycle(cycles); c.loadRegister(&c.Y, c.Y-1) }

// iTXS copies X into S without touching any flag.
func (c *CPU) iTXS(cycles *int) {
	c.transferCycle(cycles)
	c.S = c.X
}

// iTSX copies S into X and updates N/Z from the new X.
func (c *CPU) iTSX(cycles *int) {
	c.transferCycle(cycles)
	c.loadRegister(&c.X, c.S)
}

// iNOP is the single-byte documented NOP, $EA, and every undocumented
// single-byte NOP alias ($1A/$3A/$5A/$7A/$DA/$FA).
func (c *CPU) iNOP(cycles *int) {
	c.transferCycle(cycles)
}

// Accumulator-mode ASL/LSR/ROL/ROR: 2 cycles, operate directly on A.
func (c *CPU) iASLAcc(cycles *int) { c.transferCycle(cycles); c.A = c.aluASL(c.A) }
func (c *CPU) iLSRAcc(cycles *int) { c.transferCycle(cycles); c.A = c.aluLSR(c.A) }
func (c *CPU) iROLAcc(cycles *int) { c.transferCycle(cycles); c.A = c.aluROL(c.A) }
func (c *CPU) iRORAcc(cycles *int) { c.transferCycle(cycles); c.A = c.aluROR(c.A) }

// Flag set/clear instructions: 2 cycles, exactly one flag bit affected.
func (c *CPU) iCLC(cycles *int) { c.transferCycle(cycles); c.P &^= P_CARRY }
func (c *CPU) iSEC(cycles *int) { c.transferCycle(cycles); c.P |= P_CARRY }
func (c *CPU) iCLD(cycles *int) { c.transferCycle(cycles); c.P &^= P_DECIMAL }
func (c *CPU) iSED(cycles *int) { c.transferCycle(cycles); c.P |= P_DECIMAL }
func (c *CPU) iCLI(cycles *int) { c.transferCycle(cycles); c.P &^= P_INTERRUPT }
func (c *CPU) iSEI(cycles *int) { c.transferCycle(cycles); c.P |= P_INTERRUPT }
func (c *CPU) iCLV(cycles *int) { c.transferCycle(cycles); c.P &^= P_OVERFLOW }

// opLDA/opLDX/opLDY are the plain load-register loadOps.
func (c *CPU) opLDA(v uint8) { c.loadRegister(&c.A, v) }
func (c *CPU) opLDX(v uint8) { c.loadRegister(&c.X, v) }
func (c *CPU) opLDY(v uint8) { c.loadRegister(&c.Y, v) }

// compareA/compareX/compareY curry compare against a fixed register so it
// can be used as a loadOp.
func (c *CPU) compareA(v uint8) { c.compare(c.A, v) }
func (c *CPU) compareX(v uint8) { c.compare(c.X, v) }
func (c *CPU) compareY(v uint8) { c.compare(c.Y, v) }

// noOp discards its operand; used for the undocumented multi-byte NOPs
// ($04/$0C/$14/... with a ZP/absolute/indexed operand) and for the
// inert forms of the unstable undocumented store family (see DESIGN.md).
func (c *CPU) noOp(uint8) {}

// opLAX loads the fetched byte into both A and X (undocumented family,
// e.g. $A7/$B7/$AF/$BF/$A3/$B3).
func (c *CPU) opLAX(v uint8) {
	c.A = v
	c.X = v
	c.nz(v)
}

// opOAL implements $AB (OAL, the immediate-mode "magic" LAX): the result
// is (A|MAGIC_LAX)&imm, assigned to both A and X. See spec.md §4.8.
func (c *CPU) opOAL(v uint8) {
	res := (c.A | MAGIC_LAX) & v
	c.A = res
	c.X = res
	c.nz(res)
}

// opANC implements the undocumented AND-then-copy-N-into-C opcode
// ($0B/$2B).
func (c *CPU) opANC(v uint8) {
	c.aluAND(v)
	c.P &^= P_CARRY
	if c.A&P_NEGATIVE != 0 {
		c.P |= P_CARRY
	}
}

// opALR implements the undocumented AND-then-LSR opcode ($4B), sometimes
// called ASR.
func (c *CPU) opALR(v uint8) {
	c.aluAND(v)
	c.A = c.aluLSR(c.A)
}

// opARR implements the undocumented AND-then-ROR opcode ($6B) with its
// documented (non-decimal) C/V quirk derived from bits 6 and 5 of the
// result.
func (c *CPU) opARR(v uint8) {
	c.A &= v
	carry := c.P & P_CARRY
	c.A = (c.A >> 1) | (carry << 7)
	c.nz(c.A)
	c.P &^= P_CARRY
	if c.A&0x40 != 0 {
		c.P |= P_CARRY
	}
	c.P &^= P_OVERFLOW
	if (c.A>>6)&1 != (c.A>>5)&1 {
		c.P |= P_OVERFLOW
	}
}

// opAXS implements the undocumented AXS/SBX opcode ($CB): X <- (A&X)-imm,
// with C reflecting "no borrow" and no V change.
func (c *CPU) opAXS(v uint8) {
	t := c.A & c.X
	res := t - v
	c.P &^= P_CARRY
	if t >= v {
		c.P |= P_CARRY
	}
	c.X = res
	c.nz(res)
}

// opXAA implements the undocumented, hardware-unstable XAA opcode ($8B).
// The (A|MAGIC_LAX)&X&imm formula mirrors the same silicon-constant
// pattern as OAL; no source in the retrieval pack pins this down more
// precisely.
func (c *CPU) opXAA(v uint8) {
	c.loadRegister(&c.A, (c.A|MAGIC_LAX)&c.X&v)
}

// comboSLO/RLA/SRE/RRA/DCP/ISC implement the RMW+ALU undocumented combo
// opcodes: a normal shift/rotate/inc/dec RMW step immediately folded into
// an ORA/AND/EOR/ADC/CMP/SBC against A. The fold sets N and Z; for
// SLO/RLA/SRE, whose fold leaves C alone, C is the bit shifted out by the
// shift/rotate step.
func (c *CPU) comboSLO(v uint8) uint8 {
	res := c.aluASL(v)
	c.loadRegister(&c.A, c.A|res)
	return res
}

func (c *CPU) comboRLA(v uint8) uint8 {
	res := c.aluROL(v)
	c.loadRegister(&c.A, c.A&res)
	return res
}

func (c *CPU) comboSRE(v uint8) uint8 {
	res := c.aluLSR(v)
	c.loadRegister(&c.A, c.A^res)
	return res
}

func (c *CPU) comboRRA(v uint8) uint8 {
	res := c.aluROR(v)
	c.adc(res)
	return res
}

func (c *CPU) comboDCP(v uint8) uint8 {
	res := v - 1
	c.compare(c.A, res)
	return res
}

func (c *CPU) comboISC(v uint8) uint8 {
	res := v + 1
	c.sbc(res)
	return res
}
