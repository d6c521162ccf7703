package disassemble

import (
	"strings"
	"testing"

	"github.com/oneColdCanuck/ace64cpu/memory"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *memory.Memory)
		pc       uint16
		wantLen  int
		contains string
	}{
		{
			name: "LDA immediate",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0xA9)
				m.Write(0x1001, 0x42)
			},
			pc:       0x1000,
			wantLen:  2,
			contains: "LDA #42",
		},
		{
			name: "JMP absolute",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0x4C)
				m.Write(0x1001, 0x00)
				m.Write(0x1002, 0xC0)
			},
			pc:       0x1000,
			wantLen:  3,
			contains: "JMP C000",
		},
		{
			name: "BRK implied",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0x00)
			},
			pc:       0x1000,
			wantLen:  1,
			contains: "BRK",
		},
		{
			name: "branch target shown",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0xF0) // BEQ
				m.Write(0x1001, 0x05)
			},
			pc:       0x1000,
			wantLen:  2,
			contains: "(1007)",
		},
		{
			name: "backward branch target",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0xD0) // BNE
				m.Write(0x1001, 0xFE) // -2
			},
			pc:       0x1000,
			wantLen:  2,
			contains: "(1000)",
		},
		{
			name: "undocumented LAX zero page",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0xA7)
				m.Write(0x1001, 0x10)
			},
			pc:       0x1000,
			wantLen:  2,
			contains: "LAX 10",
		},
		{
			name: "JMP indirect",
			setup: func(m *memory.Memory) {
				m.Write(0x1000, 0x6C)
				m.Write(0x1001, 0xFF)
				m.Write(0x1002, 0x02)
			},
			pc:       0x1000,
			wantLen:  3,
			contains: "JMP (02FF)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := memory.New()
			tc.setup(m)
			got, n := Step(tc.pc, m)
			if n != tc.wantLen {
				t.Errorf("Step() length = %d, want %d (text: %q)", n, tc.wantLen, got)
			}
			if !strings.Contains(got, tc.contains) {
				t.Errorf("Step() = %q, want substring %q", got, tc.contains)
			}
		})
	}
}

func TestStepEveryOpcodeDecodes(t *testing.T) {
	m := memory.New()
	for op := 0; op < 256; op++ {
		m.Write(0x2000, uint8(op))
		got, n := Step(0x2000, m)
		if strings.Contains(got, "???") {
			t.Errorf("opcode %.2X has no decode table entry: %q", op, got)
		}
		if n < 1 || n > 3 {
			t.Errorf("opcode %.2X: Step returned implausible length %d", op, n)
		}
	}
}
