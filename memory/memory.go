// Package memory defines the flat 64 KiB address space used by the 6502/6510
// core. Unlike a multi-chip system there's no memory-mapped peripheral
// banking to arbitrate here: a single Memory value is owned exclusively by
// one cpu.CPU and addresses wrap modulo 2^16.
package memory

// Size is the full 6502 address space.
const Size = 1 << 16

// Memory is a flat, byte-addressable 64 KiB RAM. The Data field is exported
// so host/test code can seed programs and inspect results directly, per the
// interpreter's external interface contract.
type Memory struct {
	Data [Size]byte
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. Addressing wraps modulo 2^16 by construction
// since addr is a uint16.
func (m *Memory) Read(addr uint16) uint8 {
	return m.Data[addr]
}

// Write stores val at addr.
func (m *Memory) Write(addr uint16, val uint8) {
	m.Data[addr] = val
}

// Reset zeroes every byte and then writes the two 6510 I/O port bytes the
// reset sequence documents: $FF at $0000 (data direction register) and $07
// at $0001 (port data register). This mimics the stubbed kernel-ROM reset
// sequence; a real cartridge-detect/init path is a host concern.
func (m *Memory) Reset() {
	for i := range m.Data {
		m.Data[i] = 0
	}
	m.Data[0x0000] = 0xFF
	m.Data[0x0001] = 0x07
}
