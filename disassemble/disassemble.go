// Package disassemble renders a single 6502 instruction at a given address
// as human-readable text, without executing or following control flow.
package disassemble

import (
	"fmt"

	"github.com/oneColdCanuck/ace64cpu/memory"
)

type mode int

const (
	modeImmediate mode = iota
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeImplied
	modeRelative
)

// Step disassembles the instruction at pc and returns its text and the
// number of bytes (1-3) the caller should advance pc by to reach the next
// instruction. It always reads up to two bytes past pc, so pc+2 must be a
// valid address even for single-byte instructions; it never interprets the
// instruction, so a JMP target is never followed.
func Step(pc uint16, mem *memory.Memory) (string, int) {
	op := mem.Read(pc)
	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)
	rel := uint16(int16(int8(b1)))

	mnemonic, m := decode(op)

	count := 2
	var out string
	switch m {
	case modeImmediate:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s #%.2X", pc, op, b1, mnemonic, b1)
	case modeZP:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s %.2X", pc, op, b1, mnemonic, b1)
	case modeZPX:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s %.2X,X", pc, op, b1, mnemonic, b1)
	case modeZPY:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s %.2X,Y", pc, op, b1, mnemonic, b1)
	case modeIndirectX:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s (%.2X,X)", pc, op, b1, mnemonic, b1)
	case modeIndirectY:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s (%.2X),Y", pc, op, b1, mnemonic, b1)
	case modeAbsolute:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X   %s %.2X%.2X", pc, op, b1, b2, mnemonic, b2, b1)
		count++
	case modeAbsoluteX:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X   %s %.2X%.2X,X", pc, op, b1, b2, mnemonic, b2, b1)
		count++
	case modeAbsoluteY:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X   %s %.2X%.2X,Y", pc, op, b1, b2, mnemonic, b2, b1)
		count++
	case modeIndirect:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X   %s (%.2X%.2X)", pc, op, b1, b2, mnemonic, b2, b1)
		count++
	case modeRelative:
		out = fmt.Sprintf("%.4X %.2X %.2X      %s %.2X (%.4X)", pc, op, b1, mnemonic, b1, pc+rel+2)
	default: // modeImplied
		out = fmt.Sprintf("%.4X %.2X         %s", pc, op, mnemonic)
		count--
	}
	return out, count
}

// decode returns the mnemonic and addressing mode for a single opcode byte.
// Every one of the 256 byte values is handled explicitly, matching the
// same exhaustive dispatch as the cpu package's opcode table; the unstable
// undocumented family (SHY/SHX/AHX/TAS/LAS) and the JAM/HLT opcodes are
// labeled for what they are rather than silently aliased to NOP.
func decode(op uint8) (string, mode) {
	switch op {
	case 0x00:
		return "BRK", modeImplied
	case 0x01:
		return "ORA", modeIndirectX
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		return "JAM", modeImplied
	case 0x03:
		return "SLO", modeIndirectX
	case 0x04, 0x44, 0x64:
		return "NOP", modeZP
	case 0x05:
		return "ORA", modeZP
	case 0x06:
		return "ASL", modeZP
	case 0x07:
		return "SLO", modeZP
	case 0x08:
		return "PHP", modeImplied
	case 0x09:
		return "ORA", modeImmediate
	case 0x0A:
		return "ASL", modeImplied
	case 0x0B, 0x2B:
		return "ANC", modeImmediate
	case 0x0C:
		return "NOP", modeAbsolute
	case 0x0D:
		return "ORA", modeAbsolute
	case 0x0E:
		return "ASL", modeAbsolute
	case 0x0F:
		return "SLO", modeAbsolute
	case 0x10:
		return "BPL", modeRelative
	case 0x11:
		return "ORA", modeIndirectY
	case 0x13:
		return "SLO", modeIndirectY
	case 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4:
		return "NOP", modeZPX
	case 0x15:
		return "ORA", modeZPX
	case 0x16:
		return "ASL", modeZPX
	case 0x17:
		return "SLO", modeZPX
	case 0x18:
		return "CLC", modeImplied
	case 0x19:
		return "ORA", modeAbsoluteY
	case 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA:
		return "NOP", modeImplied
	case 0x1B:
		return "SLO", modeAbsoluteY
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return "NOP", modeAbsoluteX
	case 0x1D:
		return "ORA", modeAbsoluteX
	case 0x1E:
		return "ASL", modeAbsoluteX
	case 0x1F:
		return "SLO", modeAbsoluteX
	case 0x20:
		return "JSR", modeAbsolute
	case 0x21:
		return "AND", modeIndirectX
	case 0x23:
		return "RLA", modeIndirectX
	case 0x24:
		return "BIT", modeZP
	case 0x25:
		return "AND", modeZP
	case 0x26:
		return "ROL", modeZP
	case 0x27:
		return "RLA", modeZP
	case 0x28:
		return "PLP", modeImplied
	case 0x29:
		return "AND", modeImmediate
	case 0x2A:
		return "ROL", modeImplied
	case 0x2C:
		return "BIT", modeAbsolute
	case 0x2D:
		return "AND", modeAbsolute
	case 0x2E:
		return "ROL", modeAbsolute
	case 0x2F:
		return "RLA", modeAbsolute
	case 0x30:
		return "BMI", modeRelative
	case 0x31:
		return "AND", modeIndirectY
	case 0x33:
		return "RLA", modeIndirectY
	case 0x35:
		return "AND", modeZPX
	case 0x36:
		return "ROL", modeZPX
	case 0x37:
		return "RLA", modeZPX
	case 0x38:
		return "SEC", modeImplied
	case 0x39:
		return "AND", modeAbsoluteY
	case 0x3B:
		return "RLA", modeAbsoluteY
	case 0x3D:
		return "AND", modeAbsoluteX
	case 0x3E:
		return "ROL", modeAbsoluteX
	case 0x3F:
		return "RLA", modeAbsoluteX
	case 0x40:
		return "RTI", modeImplied
	case 0x41:
		return "EOR", modeIndirectX
	case 0x43:
		return "SRE", modeIndirectX
	case 0x45:
		return "EOR", modeZP
	case 0x46:
		return "LSR", modeZP
	case 0x47:
		return "SRE", modeZP
	case 0x48:
		return "PHA", modeImplied
	case 0x49:
		return "EOR", modeImmediate
	case 0x4A:
		return "LSR", modeImplied
	case 0x4B:
		return "ALR", modeImmediate
	case 0x4C:
		return "JMP", modeAbsolute
	case 0x4D:
		return "EOR", modeAbsolute
	case 0x4E:
		return "LSR", modeAbsolute
	case 0x4F:
		return "SRE", modeAbsolute
	case 0x50:
		return "BVC", modeRelative
	case 0x51:
		return "EOR", modeIndirectY
	case 0x53:
		return "SRE", modeIndirectY
	case 0x55:
		return "EOR", modeZPX
	case 0x56:
		return "LSR", modeZPX
	case 0x57:
		return "SRE", modeZPX
	case 0x58:
		return "CLI", modeImplied
	case 0x59:
		return "EOR", modeAbsoluteY
	case 0x5B:
		return "SRE", modeAbsoluteY
	case 0x5D:
		return "EOR", modeAbsoluteX
	case 0x5E:
		return "LSR", modeAbsoluteX
	case 0x5F:
		return "SRE", modeAbsoluteX
	case 0x60:
		return "RTS", modeImplied
	case 0x61:
		return "ADC", modeIndirectX
	case 0x63:
		return "RRA", modeIndirectX
	case 0x65:
		return "ADC", modeZP
	case 0x66:
		return "ROR", modeZP
	case 0x67:
		return "RRA", modeZP
	case 0x68:
		return "PLA", modeImplied
	case 0x69:
		return "ADC", modeImmediate
	case 0x6A:
		return "ROR", modeImplied
	case 0x6B:
		return "ARR", modeImmediate
	case 0x6C:
		return "JMP", modeIndirect
	case 0x6D:
		return "ADC", modeAbsolute
	case 0x6E:
		return "ROR", modeAbsolute
	case 0x6F:
		return "RRA", modeAbsolute
	case 0x70:
		return "BVS", modeRelative
	case 0x71:
		return "ADC", modeIndirectY
	case 0x73:
		return "RRA", modeIndirectY
	case 0x75:
		return "ADC", modeZPX
	case 0x76:
		return "ROR", modeZPX
	case 0x77:
		return "RRA", modeZPX
	case 0x78:
		return "SEI", modeImplied
	case 0x79:
		return "ADC", modeAbsoluteY
	case 0x7B:
		return "RRA", modeAbsoluteY
	case 0x7D:
		return "ADC", modeAbsoluteX
	case 0x7E:
		return "ROR", modeAbsoluteX
	case 0x7F:
		return "RRA", modeAbsoluteX
	case 0x80, 0x82, 0x89, 0xC2, 0xE2:
		return "NOP", modeImmediate
	case 0x81:
		return "STA", modeIndirectX
	case 0x83:
		return "SAX", modeIndirectX
	case 0x84:
		return "STY", modeZP
	case 0x85:
		return "STA", modeZP
	case 0x86:
		return "STX", modeZP
	case 0x87:
		return "SAX", modeZP
	case 0x88:
		return "DEY", modeImplied
	case 0x8A:
		return "TXA", modeImplied
	case 0x8B:
		return "XAA", modeImmediate
	case 0x8C:
		return "STY", modeAbsolute
	case 0x8D:
		return "STA", modeAbsolute
	case 0x8E:
		return "STX", modeAbsolute
	case 0x8F:
		return "SAX", modeAbsolute
	case 0x90:
		return "BCC", modeRelative
	case 0x91:
		return "STA", modeIndirectY
	case 0x93:
		return "AHX", modeIndirectY
	case 0x94:
		return "STY", modeZPX
	case 0x95:
		return "STA", modeZPX
	case 0x96:
		return "STX", modeZPY
	case 0x97:
		return "SAX", modeZPY
	case 0x98:
		return "TYA", modeImplied
	case 0x99:
		return "STA", modeAbsoluteY
	case 0x9A:
		return "TXS", modeImplied
	case 0x9B:
		return "TAS", modeAbsoluteY
	case 0x9C:
		return "SHY", modeAbsoluteX
	case 0x9D:
		return "STA", modeAbsoluteX
	case 0x9E:
		return "SHX", modeAbsoluteY
	case 0x9F:
		return "AHX", modeAbsoluteY
	case 0xA0:
		return "LDY", modeImmediate
	case 0xA1:
		return "LDA", modeIndirectX
	case 0xA2:
		return "LDX", modeImmediate
	case 0xA3:
		return "LAX", modeIndirectX
	case 0xA4:
		return "LDY", modeZP
	case 0xA5:
		return "LDA", modeZP
	case 0xA6:
		return "LDX", modeZP
	case 0xA7:
		return "LAX", modeZP
	case 0xA8:
		return "TAY", modeImplied
	case 0xA9:
		return "LDA", modeImmediate
	case 0xAA:
		return "TAX", modeImplied
	case 0xAB:
		return "OAL", modeImmediate
	case 0xAC:
		return "LDY", modeAbsolute
	case 0xAD:
		return "LDA", modeAbsolute
	case 0xAE:
		return "LDX", modeAbsolute
	case 0xAF:
		return "LAX", modeAbsolute
	case 0xB0:
		return "BCS", modeRelative
	case 0xB1:
		return "LDA", modeIndirectY
	case 0xB3:
		return "LAX", modeIndirectY
	case 0xB4:
		return "LDY", modeZPX
	case 0xB5:
		return "LDA", modeZPX
	case 0xB6:
		return "LDX", modeZPY
	case 0xB7:
		return "LAX", modeZPY
	case 0xB8:
		return "CLV", modeImplied
	case 0xB9:
		return "LDA", modeAbsoluteY
	case 0xBA:
		return "TSX", modeImplied
	case 0xBB:
		return "LAS", modeAbsoluteY
	case 0xBC:
		return "LDY", modeAbsoluteX
	case 0xBD:
		return "LDA", modeAbsoluteX
	case 0xBE:
		return "LDX", modeAbsoluteY
	case 0xBF:
		return "LAX", modeAbsoluteY
	case 0xC0:
		return "CPY", modeImmediate
	case 0xC1:
		return "CMP", modeIndirectX
	case 0xC3:
		return "DCP", modeIndirectX
	case 0xC4:
		return "CPY", modeZP
	case 0xC5:
		return "CMP", modeZP
	case 0xC6:
		return "DEC", modeZP
	case 0xC7:
		return "DCP", modeZP
	case 0xC8:
		return "INY", modeImplied
	case 0xC9:
		return "CMP", modeImmediate
	case 0xCA:
		return "DEX", modeImplied
	case 0xCB:
		return "AXS", modeImmediate
	case 0xCC:
		return "CPY", modeAbsolute
	case 0xCD:
		return "CMP", modeAbsolute
	case 0xCE:
		return "DEC", modeAbsolute
	case 0xCF:
		return "DCP", modeAbsolute
	case 0xD0:
		return "BNE", modeRelative
	case 0xD1:
		return "CMP", modeIndirectY
	case 0xD3:
		return "DCP", modeIndirectY
	case 0xD5:
		return "CMP", modeZPX
	case 0xD6:
		return "DEC", modeZPX
	case 0xD7:
		return "DCP", modeZPX
	case 0xD8:
		return "CLD", modeImplied
	case 0xD9:
		return "CMP", modeAbsoluteY
	case 0xDB:
		return "DCP", modeAbsoluteY
	case 0xDD:
		return "CMP", modeAbsoluteX
	case 0xDE:
		return "DEC", modeAbsoluteX
	case 0xDF:
		return "DCP", modeAbsoluteX
	case 0xE0:
		return "CPX", modeImmediate
	case 0xE1:
		return "SBC", modeIndirectX
	case 0xE3:
		return "ISC", modeIndirectX
	case 0xE4:
		return "CPX", modeZP
	case 0xE5:
		return "SBC", modeZP
	case 0xE6:
		return "INC", modeZP
	case 0xE7:
		return "ISC", modeZP
	case 0xE8:
		return "INX", modeImplied
	case 0xE9:
		return "SBC", modeImmediate
	case 0xEA:
		return "NOP", modeImplied
	case 0xEB:
		return "SBC", modeImmediate
	case 0xEC:
		return "CPX", modeAbsolute
	case 0xED:
		return "SBC", modeAbsolute
	case 0xEE:
		return "INC", modeAbsolute
	case 0xEF:
		return "ISC", modeAbsolute
	case 0xF0:
		return "BEQ", modeRelative
	case 0xF1:
		return "SBC", modeIndirectY
	case 0xF3:
		return "ISC", modeIndirectY
	case 0xF5:
		return "SBC", modeZPX
	case 0xF6:
		return "INC", modeZPX
	case 0xF7:
		return "ISC", modeZPX
	case 0xF8:
		return "SED", modeImplied
	case 0xF9:
		return "SBC", modeAbsoluteY
	case 0xFB:
		return "ISC", modeAbsoluteY
	case 0xFD:
		return "SBC", modeAbsoluteX
	case 0xFE:
		return "INC", modeAbsoluteX
	case 0xFF:
		return "ISC", modeAbsoluteX
	}
	return "???", modeImplied
}
