package bus

import (
	"bytes"
	"testing"

	"github.com/claude/gintendo/cartridge"
	"github.com/claude/gintendo/ppu"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0})
	buf.Write(make([]byte, 8))
	buf.Write(bytes.Repeat([]byte{0}, 16384))
	buf.Write(bytes.Repeat([]byte{0}, 8192))
	c, err := cartridge.New(buf.Bytes())
	if err != nil {
		t.Fatalf("cartridge.New: %v", err)
	}
	return c
}

func newTestBus(t *testing.T) *Bus {
	c := testCartridge(t)
	b := New(c)
	b.SetPPU(ppu.New(b))
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0000, 0x42)
	if got := b.Read(0x0800); got != 0x42 {
		t.Errorf("mirrored ram read = %#02x, want 0x42", got)
	}
	if got := b.Read(0x1800); got != 0x42 {
		t.Errorf("second mirror read = %#02x, want 0x42", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x2000, 0x03) // PPUCTRL
	if got := b.Read(0x2002); got&ppu.StatusVBlank != 0 {
		t.Errorf("fresh PPUSTATUS should not report vblank")
	}
	// 0x2008 mirrors 0x2000; writing it again should not panic or
	// touch unrelated state.
	b.Write(0x2008, 0x00)
}

func TestControllerStrobeAndShiftOut(t *testing.T) {
	b := newTestBus(t)
	var c StandardController
	b.SetController(0, &c)
	c.SetButtons(ButtonA | ButtonStart)

	b.Write(0x4016, 1) // strobe high: continuously reload
	b.Write(0x4016, 0) // strobe low: latch and begin shifting

	if got := b.Read(0x4016); got != 1 {
		t.Errorf("bit 0 (A) = %d, want 1", got)
	}
	if got := b.Read(0x4016); got != 0 {
		t.Errorf("bit 1 (B) = %d, want 0", got)
	}
	for i := 0; i < 6; i++ {
		b.Read(0x4016)
	}
	if got := b.Read(0x4016); got != 1 {
		t.Errorf("past bit 7, expected open-bus 1, got %d", got)
	}
}

func TestOAMDMACopiesPageIntoOAM(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i)
	}
	b.Write(0x4014, 0x00)

	if got := b.TakeDMACycles(); got != 513 {
		t.Errorf("dma cycles = %d, want 513 (even start)", got)
	}
	b.Write(0x2003, 0x05) // OAMADDR
	if got := b.Read(0x2004); got != 0x05 {
		t.Errorf("oam[5] after dma = %#02x, want 0x05", got)
	}

	b.cycles = 1
	b.Write(0x4014, 0x00)
	if got := b.TakeDMACycles(); got != 514 {
		t.Errorf("dma cycles = %d, want 514 (odd start)", got)
	}
}

func TestPRGWindowForwardsToCartridge(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x6000, 0x77) // PRG-RAM
	if got := b.Read(0x6000); got != 0x77 {
		t.Errorf("prg-ram roundtrip = %#02x, want 0x77", got)
	}
}
