package cpu

import (
	"errors"
	"testing"
)

type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read(addr uint16) uint8     { return m.data[addr] }
func (m *flatMem) Write(addr uint16, v uint8) { m.data[addr] = v }

func newTestCPU() (*CPU, *flatMem) {
	m := &flatMem{}
	m.data[vectorReset] = 0x00
	m.data[vectorReset+1] = 0x80
	c := New(m)
	return c, m
}

func (m *flatMem) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.data[addr+uint16(i)] = b
	}
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Errorf("PC after reset = %#04x, want 0x8000", c.PC)
	}
}

func TestCycleCountsAndPageCrossing(t *testing.T) {
	c, m := newTestCPU()

	cases := []struct {
		name       string
		setup      func()
		wantPC     uint16
		wantCycles int
	}{
		{
			name: "ADC immediate",
			setup: func() {
				c.PC, c.A = 0x8000, 0
				m.load(0x8000, 0x69, 0x02)
			},
			wantPC: 0x8002, wantCycles: 2,
		},
		{
			name: "ADC abs,X no page cross",
			setup: func() {
				c.PC, c.X = 0x8000, 0
				m.load(0x8000, 0x7D, 0x00, 0x03)
			},
			wantPC: 0x8003, wantCycles: 4,
		},
		{
			name: "ADC abs,X page cross",
			setup: func() {
				c.PC, c.X = 0x8000, 0x01
				m.load(0x8000, 0x7D, 0xFF, 0x01)
			},
			wantPC: 0x8003, wantCycles: 5,
		},
		{
			name: "BCC taken, no page cross",
			setup: func() {
				c.PC = 0x8000
				c.clearFlags(FlagCarry)
				m.load(0x8000, 0x90, 0x20)
			},
			wantPC: 0x8022, wantCycles: 3,
		},
		{
			name: "BCC not taken",
			setup: func() {
				c.PC = 0x8000
				c.setFlags(FlagCarry)
				m.load(0x8000, 0x90, 0x20)
			},
			wantPC: 0x8002, wantCycles: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			got := c.Step()
			if c.PC != tc.wantPC || got != tc.wantCycles {
				t.Errorf("PC=%#04x cycles=%d, want PC=%#04x cycles=%d", c.PC, got, tc.wantPC, tc.wantCycles)
			}
		})
	}
}

func TestLDASetsZeroAndNegativeFlags(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x8000
	m.load(0x8000, 0xA9, 0x00)
	c.Step()
	if !c.flag(FlagZero) {
		t.Errorf("zero flag not set after LDA #0")
	}

	c.PC = 0x8000
	m.load(0x8000, 0xA9, 0x80)
	c.Step()
	if !c.flag(FlagNegative) {
		t.Errorf("negative flag not set after LDA #$80")
	}
	if c.flag(FlagZero) {
		t.Errorf("zero flag set after LDA #$80")
	}
}

func TestADCOverflowAndCarry(t *testing.T) {
	c, m := newTestCPU()
	c.PC, c.A = 0x8000, 0x7F
	c.clearFlags(FlagCarry)
	m.load(0x8000, 0x69, 0x01) // 0x7F + 1 -> signed overflow
	c.Step()
	if c.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", c.A)
	}
	if !c.flag(FlagOverflow) {
		t.Errorf("overflow flag not set for 0x7F+1")
	}
	if c.flag(FlagCarry) {
		t.Errorf("carry flag set unexpectedly for 0x7F+1")
	}

	c.PC, c.A = 0x8000, 0xFF
	c.clearFlags(FlagCarry)
	m.load(0x8000, 0x69, 0x01) // 0xFF + 1 -> carry, no signed overflow
	c.Step()
	if c.A != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c.A)
	}
	if !c.flag(FlagCarry) {
		t.Errorf("carry flag not set for 0xFF+1")
	}
	if c.flag(FlagOverflow) {
		t.Errorf("overflow flag set unexpectedly for 0xFF+1")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, m := newTestCPU()
	c.PC, c.A = 0x8000, 0x00
	c.setFlags(FlagCarry) // carry set means "no borrow" going in
	m.load(0x8000, 0xE9, 0x01)
	c.Step()
	if c.A != 0xFF {
		t.Errorf("A = %#02x, want 0xFF", c.A)
	}
	if c.flag(FlagCarry) {
		t.Errorf("carry should be clear (borrow occurred)")
	}
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x8000
	m.load(0x8000, 0x6C, 0xFF, 0x02) // JMP ($02FF)
	m.data[0x02FF] = 0x34
	m.data[0x0200] = 0x12 // hardware bug: high byte wraps to $0200, not $0300
	m.data[0x0300] = 0xFF
	c.Step()
	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234 (page-wrap bug)", c.PC)
	}
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	c, m := newTestCPU()
	c.PC, c.SP = 0x8000, 0xFD
	m.load(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	m.data[0x9000] = 0x60            // RTS
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("PC after JSR = %#04x, want 0x9000", c.PC)
	}
	c.Step()
	if c.PC != 0x8003 {
		t.Errorf("PC after RTS = %#04x, want 0x8003", c.PC)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, m := newTestCPU()
	m.data[vectorIRQ] = 0x00
	m.data[vectorIRQ+1] = 0x90
	c.PC, c.SP = 0x8000, 0xFD
	m.load(0x8000, 0x00, 0x00) // BRK
	m.data[0x9000] = 0x40      // RTI
	savedStatus := c.Status
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("PC after BRK = %#04x, want 0x9000", c.PC)
	}
	if !c.flag(FlagInterrupt) {
		t.Errorf("interrupt disable flag not set after BRK")
	}
	c.Step()
	if c.PC != 0x8002 {
		t.Errorf("PC after RTI = %#04x, want 0x8002", c.PC)
	}
	if c.Status&^FlagBreak != savedStatus&^FlagBreak {
		t.Errorf("status after RTI = %#02x, want %#02x", c.Status, savedStatus)
	}
}

func TestNMITakesPriorityAndCosts7Cycles(t *testing.T) {
	c, m := newTestCPU()
	m.data[vectorNMI] = 0x00
	m.data[vectorNMI+1] = 0x90
	c.PC = 0x8000
	m.load(0x8000, 0xEA) // NOP, never executed
	c.TriggerNMI()
	got := c.Step()
	if got != 7 {
		t.Errorf("NMI service cost %d cycles, want 7", got)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after NMI = %#04x, want 0x9000", c.PC)
	}
}

func TestInvalidOpcodeSetsErr(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x8000
	m.load(0x8000, 0x02) // KIL
	c.Step()
	if !errors.Is(c.Err, ErrInvalidOpcode) {
		t.Errorf("Err = %v, want wrapping ErrInvalidOpcode", c.Err)
	}
}

func TestUndocumentedLAXAndSAX(t *testing.T) {
	c, m := newTestCPU()
	c.PC = 0x8000
	m.data[0x10] = 0x42
	m.load(0x8000, 0xA7, 0x10) // LAX $10
	c.Step()
	if c.A != 0x42 || c.X != 0x42 {
		t.Errorf("A=%#02x X=%#02x after LAX, want both 0x42", c.A, c.X)
	}

	c.PC, c.A, c.X = 0x8000, 0x0F, 0xF0
	m.load(0x8000, 0x87, 0x20) // SAX $20
	c.Step()
	if got := m.Read(0x20); got != 0x00 {
		t.Errorf("SAX wrote %#02x, want A&X = 0x00", got)
	}
}

func TestUndocumentedDCPAndISC(t *testing.T) {
	c, m := newTestCPU()
	c.PC, c.A = 0x8000, 0x10
	m.data[0x30] = 0x11
	m.load(0x8000, 0xC7, 0x30) // DCP $30: mem-- then CMP A
	c.Step()
	if m.Read(0x30) != 0x10 {
		t.Errorf("DCP decremented to %#02x, want 0x10", m.Read(0x30))
	}
	if !c.flag(FlagZero) {
		t.Errorf("zero flag not set: A should equal decremented memory")
	}

	c.PC, c.A = 0x8000, 0x10
	c.setFlags(FlagCarry)
	m.data[0x31] = 0x00
	m.load(0x8000, 0xE7, 0x31) // ISC $31: mem++ then SBC
	c.Step()
	if m.Read(0x31) != 0x01 {
		t.Errorf("ISC incremented to %#02x, want 0x01", m.Read(0x31))
	}
	if c.A != 0x0F {
		t.Errorf("A after ISC = %#02x, want 0x0F", c.A)
	}
}
