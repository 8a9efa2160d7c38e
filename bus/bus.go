// Package bus implements the NES CPU memory map: 2KiB of work RAM,
// the PPU register window, controller ports and a window onto
// cartridge PRG space, plus the separate PPU-facing address mapping
// used to reach CHR and nametable RAM.
package bus

import (
	"github.com/claude/gintendo/cartridge"
	"github.com/claude/gintendo/ppu"
)

const ramSize = 0x0800

// ioSinkSize covers 0x4000-0x4017: the APU and remaining I/O
// registers, none of which this emulator implements. Reads return
// whatever was last written there (open-bus-ish, but simpler and
// good enough for software that merely probes these registers).
const ioSinkSize = 0x18

// Controller is the two-wire shift-register protocol NES joypads use:
// a strobe write resets the internal bit counter (and, while held
// high, continuously reloads it from live input), and each read pops
// the next button bit.
type Controller interface {
	Write(strobe uint8)
	Read() uint8
}

// Bus owns CPU work RAM and routes CPU reads/writes to the PPU,
// controllers and cartridge. It also implements ppu.Bus, the PPU's
// narrower view onto CHR and nametable mirroring.
type Bus struct {
	ram  [ramSize]byte
	ppu  *ppu.PPU
	cart *cartridge.Cartridge

	controllers [2]Controller
	ioSink      [ioSinkSize]byte

	cycles    uint64
	dmaCycles int
}

// New creates a Bus over the given cartridge. The PPU is wired in
// afterward via SetPPU, since the PPU's own constructor takes the bus
// as its CHR/mirroring view, and the two can't each be constructed
// first without the other already existing.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{cart: cart}
}

// SetPPU completes construction by attaching the PPU this bus drives
// register reads/writes and OAM DMA against.
func (b *Bus) SetPPU(p *ppu.PPU) {
	b.ppu = p
}

// SetController attaches a controller to port 0 or 1.
func (b *Bus) SetController(port int, c Controller) {
	b.controllers[port] = c
}

// Tick advances the bus's own CPU-cycle counter, used only to decide
// OAM DMA's 513/514-cycle charge. The clock calls this once per CPU
// cycle it executes.
func (b *Bus) Tick() {
	b.cycles++
}

// TakeDMACycles returns and clears the number of extra CPU cycles
// charged by a pending OAM DMA transfer.
func (b *Bus) TakeDMACycles() int {
	c := b.dmaCycles
	b.dmaCycles = 0
	return c
}

// Read implements the CPU memory map. https://www.nesdev.org/wiki/CPU_memory_map
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%ramSize]
	case addr < 0x4000:
		return b.ppu.ReadRegister((addr - 0x2000) % 8)
	case addr == 0x4016:
		return b.readController(0)
	case addr == 0x4017:
		return b.readController(1)
	case addr < 0x4000+ioSinkSize:
		return b.ioSink[addr-0x4000]
	case addr < 0x4020:
		return 0 // $4018-$401F: unused APU/IO test registers
	default:
		return b.cart.ReadPRG(addr)
	}
}

// Write implements the CPU memory map.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%ramSize] = val
	case addr < 0x4000:
		b.ppu.WriteRegister((addr-0x2000)%8, val)
	case addr == 0x4014:
		b.ioSink[addr-0x4000] = val
		b.runOAMDMA(val)
	case addr == 0x4016:
		b.ioSink[addr-0x4000] = val
		// Real hardware strobes both controller ports from a single
		// write to 0x4016; port 1 has no corresponding write register.
		if b.controllers[0] != nil {
			b.controllers[0].Write(val)
		}
		if b.controllers[1] != nil {
			b.controllers[1].Write(val)
		}
	case addr < 0x4000+ioSinkSize:
		b.ioSink[addr-0x4000] = val
	case addr < 0x4020:
		// $4018-$401F: unused APU/IO test registers, not sunk.
	default:
		b.cart.WritePRG(addr, val)
	}
}

func (b *Bus) readController(port int) uint8 {
	if b.controllers[port] == nil {
		return 0
	}
	return b.controllers[port].Read()
}

// runOAMDMA copies 256 bytes from CPU page val*0x100 into OAM. It
// charges 513 CPU cycles, or 514 if the transfer starts on an odd CPU
// cycle.
func (b *Bus) runOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}

	cycles := 513
	if b.cycles%2 == 1 {
		cycles = 514
	}
	b.dmaCycles += cycles
}

// ReadCHR, WriteCHR and MirrorVRAM implement ppu.Bus: the PPU reaches
// CHR and nametable mirroring through the cartridge but never touches
// CPU RAM directly.
func (b *Bus) ReadCHR(addr uint16) uint8 {
	v, _ := b.cart.ReadCHR(addr)
	return v
}

func (b *Bus) WriteCHR(addr uint16, val uint8) {
	_ = b.cart.WriteCHR(addr, val)
}

func (b *Bus) MirrorVRAM(addr uint16) uint16 {
	return b.cart.MirrorVRAM(addr)
}
