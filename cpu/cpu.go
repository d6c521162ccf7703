// Package cpu implements the NMOS 6502/6510 instruction interpreter: the
// register file, the addressing-mode and ALU machinery, the 256-entry
// opcode dispatch, and the cycle accounting for a single executed
// instruction. Peripheral chips, asynchronous IRQ/NMI lines, and CMOS
// 65C02 semantics are explicitly out of scope; see the package-level
// design notes in the repository root for rationale.
package cpu

import (
	"fmt"

	"github.com/oneColdCanuck/ace64cpu/memory"
)

// CPUType distinguishes the handful of NMOS variants this package supports.
// Only the decimal-mode availability differs between them (the Ricoh
// variant used in the NES has BCD wired off in silicon).
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                         // Basic NMOS 6502/6510 including undocumented opcodes.
	CPU_NMOS_RICOH                   // Ricoh variant (NES): identical except BCD mode is unimplemented.
	CPU_MAX                          // End of cpu enumerations.
)

const (
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_UNUSED    = uint8(0x20) // Always observed as 1 when P is pushed or restored.
	P_BREAK     = uint8(0x10) // Only meaningful in a stacked copy of P (PHP/BRK).
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)

	// MAGIC_LAX is the NMOS "magic" constant the silicon ANDs into the OAL
	// (undocumented LAX #i, opcode $AB) result. Not fully stable across
	// real parts; $EE is the conventional, testable choice.
	MAGIC_LAX = uint8(0xEE)
)

// InvalidCPUState represents an internal precondition failure in the
// emulator, never a property of the emulated 6502 program itself (every
// 8-bit opcode byte is legal per spec; see Non-goals).
type InvalidCPUState struct {
	Reason string
}

// Error implements the error interface.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// CPU holds the full processor state: the register file plus the 64 KiB
// address space it owns exclusively. It is a value processed synchronously
// by repeated calls to Execute; there is no internal concurrency.
type CPU struct {
	A    uint8  // Accumulator
	X    uint8  // X index register
	Y    uint8  // Y index register
	S    uint8  // Stack pointer (implicit page $01)
	P    uint8  // Processor status
	PC   uint16 // Program counter
	Mem  *memory.Memory
	Type CPUType
}

// New creates a powered-down CPU of the given type wired to mem. Call Reset
// before the first Execute.
func New(cpuType CPUType, mem *memory.Memory) (*CPU, error) {
	if cpuType <= CPU_UNIMPLEMENTED || cpuType >= CPU_MAX {
		return nil, InvalidCPUState{Reason: fmt.Sprintf("CPU type %d is invalid", cpuType)}
	}
	if mem == nil {
		return nil, InvalidCPUState{Reason: "memory must not be nil"}
	}
	return &CPU{Type: cpuType, Mem: mem}, nil
}

// Reset puts the CPU into the documented power-on state: PC fixed at the
// reset vector address, SP at $FF, A/X/Y cleared, P with the unused bit and
// interrupt-disable set, all of memory zeroed apart from the two 6510 I/O
// port bytes. This is intentionally a stub matching the real kernel-ROM
// reset sequence only in its externally visible effect on registers; the
// actual cartridge-detect/init sequence is a host concern.
func (c *CPU) Reset() {
	c.PC = RESET_VECTOR
	c.S = 0xFF
	c.A, c.X, c.Y = 0, 0, 0
	c.P = P_UNUSED | P_INTERRUPT
	c.Mem.Reset()
}

// fetchByte returns the byte at PC and advances PC. Costs one cycle.
func (c *CPU) fetchByte(cycles *int) uint8 {
	v := c.Mem.Read(c.PC)
	c.PC++
	*cycles++
	return v
}

// fetchWord fetches a little-endian 16-bit value from PC, advancing it by
// two. Costs two cycles (one per byte).
func (c *CPU) fetchWord(cycles *int) uint16 {
	lo := c.fetchByte(cycles)
	hi := c.fetchByte(cycles)
	return uint16(hi)<<8 | uint16(lo)
}

// readByte returns the byte at addr. Costs one cycle.
func (c *CPU) readByte(addr uint16, cycles *int) uint8 {
	*cycles++
	return c.Mem.Read(addr)
}

// writeByte stores val at addr. Costs one cycle.
func (c *CPU) writeByte(addr uint16, val uint8, cycles *int) {
	*cycles++
	c.Mem.Write(addr, val)
}

// dummyRead performs a bus read whose result is discarded, matching a
// spurious read cycle on real silicon. Costs one cycle.
func (c *CPU) dummyRead(addr uint16, cycles *int) {
	_ = c.Mem.Read(addr)
	*cycles++
}

// burnCycle performs a dummy read of PC, the form most instructions use for
// their spurious bus cycles.
func (c *CPU) burnCycle(cycles *int) {
	c.dummyRead(c.PC, cycles)
}

// pushStack writes val to the stack page at the current S and decrements S,
// wrapping modulo 256 within page $01.
func (c *CPU) pushStack(val uint8, cycles *int) {
	c.writeByte(0x0100+uint16(c.S), val, cycles)
	c.S--
}

// popStack increments S, wrapping modulo 256, and reads the byte now on top
// of the stack.
func (c *CPU) popStack(cycles *int) uint8 {
	c.S++
	return c.readByte(0x0100+uint16(c.S), cycles)
}

// Execute fetches one opcode byte and runs it to completion, returning the
// total number of bus cycles it consumed. Every 8-bit opcode value is a
// legal dispatch target (documented, undocumented, or inert); Execute only
// returns an error for an internal precondition failure, never as a
// property of the emulated instruction stream.
func (c *CPU) Execute() (int, error) {
	cycles := 0
	op := c.fetchByte(&cycles)
	if err := c.dispatch(op, &cycles); err != nil {
		return cycles, err
	}
	return cycles, nil
}
