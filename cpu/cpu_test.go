package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/oneColdCanuck/ace64cpu/memory"
)

func newCPU(t *testing.T) *CPU {
	t.Helper()
	c, err := New(CPU_NMOS, memory.New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Reset()
	return c
}

func dump(t *testing.T, c *CPU) {
	t.Helper()
	t.Logf("cpu state: %s", spew.Sdump(c))
}

// Scenario (a): LDA zero-page.
func TestLDAZeroPage(t *testing.T) {
	c := newCPU(t)
	c.Mem.Write(0xFFFC, 0xA5)
	c.Mem.Write(0xFFFD, 0x42)
	c.Mem.Write(0x0042, 0x37)

	cycles, err := c.Execute()
	if err != nil {
		dump(t, c)
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x37 {
		t.Errorf("A = %.2X, want 37", c.A)
	}
	if c.P&P_ZERO != 0 {
		t.Errorf("Z flag set, want clear")
	}
	if c.P&P_NEGATIVE != 0 {
		t.Errorf("N flag set, want clear")
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3", cycles)
	}
}

// Scenario (b): LDA absolute,X with an actual page cross.
func TestLDAAbsoluteXPageCross(t *testing.T) {
	c := newCPU(t)
	c.X = 0xFF
	c.Mem.Write(0xFFFC, 0xBD)
	c.Mem.Write(0xFFFD, 0x80)
	c.Mem.Write(0xFFFE, 0x44)
	c.Mem.Write(0x457F, 0x77)

	cycles, err := c.Execute()
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x77 {
		t.Errorf("A = %.2X, want 77", c.A)
	}
	if cycles != 5 {
		t.Errorf("cycles = %d, want 5", cycles)
	}
}

// Scenario (c): the JMP (indirect) page-wrap bug.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c := newCPU(t)
	c.PC = 0x0000
	c.Mem.Write(0x0000, 0x6C)
	c.Mem.Write(0x0001, 0xFF)
	c.Mem.Write(0x0002, 0x10)
	c.Mem.Write(0x10FF, 0xAD)
	c.Mem.Write(0x1000, 0xDE)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.PC != 0xDEAD {
		t.Errorf("PC = %.4X, want DEAD", c.PC)
	}
}

// Scenario (d): JSR / RTS round trip.
func TestJSRRTSRoundTrip(t *testing.T) {
	c := newCPU(t)
	c.PC = 0x1000
	c.S = 0xFF
	c.Mem.Write(0x1000, 0x20) // JSR $2000
	c.Mem.Write(0x1001, 0x00)
	c.Mem.Write(0x1002, 0x20)
	c.Mem.Write(0x1003, 0xA2) // LDX #$42
	c.Mem.Write(0x1004, 0x42)
	c.Mem.Write(0x2000, 0x60) // RTS

	var total int
	for i := 0; i < 3; i++ {
		n, err := c.Execute()
		if err != nil {
			t.Fatalf("Execute[%d]: %v", i, err)
		}
		total += n
	}
	if c.PC != 0x1005 {
		t.Errorf("PC = %.4X, want 1005", c.PC)
	}
	if c.S != 0xFF {
		t.Errorf("SP = %.2X, want FF", c.S)
	}
	if c.X != 0x42 {
		t.Errorf("X = %.2X, want 42", c.X)
	}
	if total != 14 {
		t.Errorf("total cycles = %d, want 14", total)
	}
}

// Scenario (e): BRK / RTI round trip.
func TestBRKRTIRoundTrip(t *testing.T) {
	c := newCPU(t)
	c.PC = 0x1000
	c.S = 0xFF
	c.Mem.Write(0xFFFE, 0x00)
	c.Mem.Write(0xFFFF, 0x90)
	c.Mem.Write(0x1000, 0x00) // BRK
	c.Mem.Write(0x1001, 0xEA)
	c.Mem.Write(0x1002, 0x38)
	c.Mem.Write(0x9000, 0x40) // RTI

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute(BRK): %v", err)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after BRK = %.4X, want 9000", c.PC)
	}
	if c.S != 0xFC {
		t.Errorf("SP after BRK = %.2X, want FC", c.S)
	}
	if c.P&P_INTERRUPT == 0 {
		t.Errorf("I flag not set after BRK")
	}
	if got := c.Mem.Read(0x01FF); got != 0x10 {
		t.Errorf("stack[01FF] = %.2X, want 10", got)
	}
	if got := c.Mem.Read(0x01FE); got != 0x02 {
		t.Errorf("stack[01FE] = %.2X, want 02", got)
	}
	if c.Mem.Read(0x01FD)&0x30 == 0 {
		t.Errorf("stacked P has neither B nor unused bit set")
	}

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute(RTI): %v", err)
	}
	if c.PC != 0x1002 {
		t.Errorf("PC after RTI = %.4X, want 1002", c.PC)
	}
	if c.S != 0xFF {
		t.Errorf("SP after RTI = %.2X, want FF", c.S)
	}
}

// Scenario (f): the NMOS decimal ADC quirk.
func TestDecimalADCQuirk(t *testing.T) {
	c := newCPU(t)
	c.P |= P_DECIMAL
	c.P &^= P_CARRY
	c.A = 0x50
	c.Mem.Write(0xFFFC, 0x69)
	c.Mem.Write(0xFFFD, 0x50)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x00 {
		t.Errorf("A = %.2X, want 00", c.A)
	}
	if c.P&P_CARRY == 0 {
		t.Errorf("C flag clear, want set")
	}
	if c.P&P_OVERFLOW == 0 {
		t.Errorf("V flag clear, want set")
	}
	if c.P&P_NEGATIVE == 0 {
		t.Errorf("N flag clear, want set")
	}
}

// Invariant 1: documented cycle counts, spot-checked across addressing
// modes and instruction classes.
func TestCycleCounts(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(c *CPU)
		cycles int
	}{
		{"NOP implied", func(c *CPU) { c.Mem.Write(0xFFFC, 0xEA) }, 2},
		{"LDA immediate", func(c *CPU) { c.Mem.Write(0xFFFC, 0xA9); c.Mem.Write(0xFFFD, 0x01) }, 2},
		{"LDA zero page,X", func(c *CPU) {
			c.X = 1
			c.Mem.Write(0xFFFC, 0xB5)
			c.Mem.Write(0xFFFD, 0x10)
		}, 4},
		{"STA absolute,X (forced penalty, no actual cross)", func(c *CPU) {
			c.X = 1
			c.Mem.Write(0xFFFC, 0x9D)
			c.Mem.Write(0xFFFD, 0x00)
			c.Mem.Write(0xFFFE, 0x40)
		}, 5},
		{"INC zero page", func(c *CPU) {
			c.Mem.Write(0xFFFC, 0xE6)
			c.Mem.Write(0xFFFD, 0x10)
		}, 5},
		{"INC absolute,X", func(c *CPU) {
			c.X = 1
			c.Mem.Write(0xFFFC, 0xFE)
			c.Mem.Write(0xFFFD, 0x00)
			c.Mem.Write(0xFFFE, 0x40)
		}, 7},
		{"branch not taken", func(c *CPU) {
			c.PC = 0x1000
			c.Mem.Write(0x1000, 0xF0) // BEQ, Z is clear after reset
			c.Mem.Write(0x1001, 0x10)
		}, 2},
		{"branch taken, same page", func(c *CPU) {
			c.PC = 0x1000
			c.P |= P_ZERO
			c.Mem.Write(0x1000, 0xF0) // BEQ
			c.Mem.Write(0x1001, 0x10)
		}, 3},
		{"branch taken, page cross", func(c *CPU) {
			c.PC = 0x10F0
			c.P |= P_ZERO
			c.Mem.Write(0x10F0, 0xF0) // BEQ
			c.Mem.Write(0x10F1, 0x7F) // crosses from 10F2 to 1171
		}, 4},
		{"PHA", func(c *CPU) { c.Mem.Write(0xFFFC, 0x48) }, 3},
		{"PLA", func(c *CPU) { c.Mem.Write(0xFFFC, 0x68) }, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newCPU(t)
			tc.setup(c)
			got, err := c.Execute()
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got != tc.cycles {
				dump(t, c)
				t.Errorf("cycles = %d, want %d", got, tc.cycles)
			}
		})
	}
}

// Invariant 2: nz-convention instructions update only N and Z, leaving
// V/D/I/C untouched.
func TestNZOnlyTouchesNAndZ(t *testing.T) {
	c := newCPU(t)
	c.P |= P_OVERFLOW | P_DECIMAL | P_INTERRUPT | P_CARRY
	preserved := c.P & (P_OVERFLOW | P_DECIMAL | P_INTERRUPT | P_CARRY)
	c.A = 0x80
	c.Mem.Write(0xFFFC, 0x29) // AND #$FF
	c.Mem.Write(0xFFFD, 0xFF)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.P&P_NEGATIVE == 0 {
		t.Errorf("N not set for result with bit 7 set")
	}
	if c.P&P_ZERO != 0 {
		t.Errorf("Z incorrectly set")
	}
	if got := c.P & (P_OVERFLOW | P_DECIMAL | P_INTERRUPT | P_CARRY); got != preserved {
		t.Errorf("V/D/I/C changed: got %.2X, want %.2X", got, preserved)
	}
}

// Invariant 3: compare instructions never modify a register.
func TestCompareDoesNotModifyRegister(t *testing.T) {
	c := newCPU(t)
	c.A = 0x10
	c.Mem.Write(0xFFFC, 0xC9) // CMP #$20
	c.Mem.Write(0xFFFD, 0x20)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x10 {
		t.Errorf("A changed by CMP: got %.2X, want 10", c.A)
	}
	if c.P&P_CARRY != 0 {
		t.Errorf("C set, want clear (0x10 < 0x20)")
	}
	if c.P&P_ZERO != 0 {
		t.Errorf("Z incorrectly set")
	}
	if c.P&P_NEGATIVE == 0 {
		t.Errorf("N not set for negative difference")
	}
}

// Invariant 4: a push/pop round trip restores SP and the pushed byte.
func TestPushPopRoundTrip(t *testing.T) {
	c := newCPU(t)
	startS := c.S
	var cycles int
	c.A = 0x99
	c.pushStack(c.A, &cycles)
	popped := c.popStack(&cycles)
	if popped != 0x99 {
		t.Errorf("popped = %.2X, want 99", popped)
	}
	if c.S != startS {
		t.Errorf("SP = %.2X, want %.2X", c.S, startS)
	}
}

// Invariant 5: binary ADC/SBC round-trip. ADC with carry clear followed by
// SBC with carry set (no borrow) of the same operand restores A; the SBC
// borrows exactly when the ADC carried out.
func TestADCSBCRoundTrip(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			c := newCPU(t)
			c.A = uint8(a)
			c.P &^= P_CARRY
			c.aluADC(uint8(b))
			adcCarry := c.P & P_CARRY
			c.P |= P_CARRY
			c.aluSBC(uint8(b))
			if c.A != uint8(a) {
				t.Fatalf("ADC/SBC round trip failed for a=%.2X b=%.2X: got A=%.2X", a, b, c.A)
			}
			if got, want := c.P&P_CARRY != 0, adcCarry == 0; got != want {
				t.Fatalf("ADC/SBC round trip: C = %v after SBC, want %v for a=%.2X b=%.2X", got, want, a, b)
			}
		}
	}
}

// Invariant 6: JMP indirect never carries into the pointer's next page.
func TestJMPIndirectNeverCarries(t *testing.T) {
	c := newCPU(t)
	c.PC = 0x2000
	c.Mem.Write(0x2000, 0x6C)
	c.Mem.Write(0x2001, 0xFF)
	c.Mem.Write(0x2002, 0x30)
	c.Mem.Write(0x30FF, 0x11) // would-be low byte
	c.Mem.Write(0x3100, 0x99) // linear next byte (must NOT be read as high byte)
	c.Mem.Write(0x3000, 0x22) // actual (wrapped) high byte source

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.PC != 0x2211 {
		t.Errorf("PC = %.4X, want 2211 (high byte must come from $3000, not $3100)", c.PC)
	}
}

// Invariant 7: zero-page indexed addressing always wraps within page $00.
func TestZeroPageIndexedWrap(t *testing.T) {
	c := newCPU(t)
	c.X = 0x20
	c.Mem.Write(0xFFFC, 0xB5) // LDA $F0,X
	c.Mem.Write(0xFFFD, 0xF0)
	c.Mem.Write(0x0010, 0x55) // (0xF0+0x20) mod 256 == 0x10

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x55 {
		t.Errorf("A = %.2X, want 55 (effective address should wrap to 0010)", c.A)
	}
}

// Invariant 8: stack pointer wrap law.
func TestStackPointerWrap(t *testing.T) {
	c := newCPU(t)
	c.S = 0x00
	var cycles int
	c.pushStack(0x42, &cycles)
	if c.S != 0xFF {
		t.Errorf("SP after push at 00 = %.2X, want FF", c.S)
	}
	if got := c.Mem.Read(0x0100); got != 0x42 {
		t.Errorf("Memory[0100] = %.2X, want 42", got)
	}

	c2 := newCPU(t)
	c2.S = 0xFF
	c2.Mem.Write(0x0100, 0x77)
	got := c2.popStack(&cycles)
	if got != 0x77 {
		t.Errorf("popped = %.2X, want 77", got)
	}
	if c2.S != 0x00 {
		t.Errorf("SP after pop at FF = %.2X, want 00", c2.S)
	}
}

// LAX loads both A and X from the same fetched byte.
func TestLAX(t *testing.T) {
	c := newCPU(t)
	c.Mem.Write(0xFFFC, 0xA7) // LAX $10
	c.Mem.Write(0xFFFD, 0x10)
	c.Mem.Write(0x0010, 0x80)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x80 || c.X != 0x80 {
		t.Errorf("A=%.2X X=%.2X, want both 80", c.A, c.X)
	}
	if c.P&P_NEGATIVE == 0 {
		t.Errorf("N not set")
	}
}

// OAL ($AB) applies the documented magic-constant formula to both A and X.
func TestOALMagicConstant(t *testing.T) {
	c := newCPU(t)
	c.A = 0xFF
	c.Mem.Write(0xFFFC, 0xAB)
	c.Mem.Write(0xFFFD, 0x0F)

	if _, err := c.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := uint8((0xFF | MAGIC_LAX) & 0x0F)
	if c.A != want || c.X != want {
		t.Errorf("A=%.2X X=%.2X, want both %.2X", c.A, c.X, want)
	}
}

// Reset must zero memory apart from the two 6510 port bytes and put the
// register file into the documented power-on state.
func TestReset(t *testing.T) {
	c := newCPU(t)
	want := &CPU{
		A: 0, X: 0, Y: 0,
		S:    0xFF,
		P:    P_UNUSED | P_INTERRUPT,
		PC:   RESET_VECTOR,
		Mem:  c.Mem,
		Type: CPU_NMOS,
	}
	if diff := deep.Equal(c, want); diff != nil {
		t.Errorf("post-reset state differs: %v", diff)
	}
	if got := c.Mem.Read(0x0000); got != 0xFF {
		t.Errorf("Memory[0000] = %.2X, want FF", got)
	}
	if got := c.Mem.Read(0x0001); got != 0x07 {
		t.Errorf("Memory[0001] = %.2X, want 07", got)
	}
}

func TestInvalidCPUType(t *testing.T) {
	if _, err := New(CPU_MAX, memory.New()); err == nil {
		t.Errorf("New with invalid type did not return an error")
	}
	if _, err := New(CPU_NMOS, nil); err == nil {
		t.Errorf("New with nil memory did not return an error")
	}
}

// Unmapped/JAM opcodes must not crash dispatch and must cost at least the
// fetch cycle.
func TestEveryOpcodeDispatches(t *testing.T) {
	for op := 0; op < 256; op++ {
		c := newCPU(t)
		c.Mem.Write(0xFFFC, uint8(op))
		cycles, err := c.Execute()
		if err != nil {
			t.Errorf("opcode %.2X: Execute returned error: %v", op, err)
		}
		if cycles < 1 {
			t.Errorf("opcode %.2X: cycles = %d, want >= 1", op, cycles)
		}
	}
}
