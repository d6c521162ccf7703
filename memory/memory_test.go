package memory

import (
	"testing"

	"github.com/go-test/deep"
)

func TestReadWrite(t *testing.T) {
	tests := []struct {
		name string
		addr uint16
		val  uint8
	}{
		{"zero page", 0x0042, 0x37},
		{"stack page", 0x01FF, 0xAA},
		{"top of space", 0xFFFF, 0xEE},
		{"bottom of space", 0x0000, 0x01},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := New()
			m.Write(test.addr, test.val)
			if got, want := m.Read(test.addr), test.val; got != want {
				t.Errorf("Read(%#04x): got %#02x want %#02x", test.addr, got, want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	m := New()
	for i := range m.Data {
		m.Data[i] = 0xAB
	}
	m.Reset()

	want := Memory{}
	want.Data[0x0000] = 0xFF
	want.Data[0x0001] = 0x07
	if diff := deep.Equal(*m, want); diff != nil {
		t.Errorf("Reset() diff: %v", diff)
	}
}
