// Package ppu implements the NES Picture Processing Unit: the
// scanline/dot state machine that turns nametable, pattern table and
// OAM data into a 256x240 RGBA frame buffer.
package ppu

const (
	VRAMSize    = 2048
	OAMSize     = 256
	PaletteSize = 32

	Width  = 256
	Height = 240
)

// Bus is the PPU's view of the wider memory system: cartridge CHR
// access and nametable mirroring. The PPU never touches CPU RAM, and
// the bus never exposes palette or OAM, so the two halves of the
// console can't alias each other's owned memory.
type Bus interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	MirrorVRAM(addr uint16) uint16
}

// Register offsets, as exposed by the CPU bus mirrored every 8 bytes
// starting at 0x2000.
const (
	RegCTRL = iota
	RegMASK
	RegSTATUS
	RegOAMADDR
	RegOAMDATA
	RegSCROLL
	RegADDR
	RegDATA
)

// PPUCTRL bits.
const (
	CtrlNametableX   = 1 << 0
	CtrlNametableY   = 1 << 1
	CtrlIncrement    = 1 << 2
	CtrlSpritePat    = 1 << 3
	CtrlBgPat        = 1 << 4
	CtrlSpriteHeight = 1 << 5
	CtrlMasterSlave  = 1 << 6
	CtrlNMIEnable    = 1 << 7
)

// PPUMASK bits.
const (
	MaskGrayscale      = 1 << 0
	MaskShowBgLeft     = 1 << 1
	MaskShowSpriteLeft = 1 << 2
	MaskShowBackground = 1 << 3
	MaskShowSprites    = 1 << 4
	MaskEmphasizeRed   = 1 << 5
	MaskEmphasizeGreen = 1 << 6
	MaskEmphasizeBlue  = 1 << 7
)

// PPUSTATUS bits. Overflow is set by sprite evaluation, sprite-0 hit
// during pixel composition and vblank at dot 1 of scanline 241. All
// three are cleared at dot 1 of the pre-render line; a PPUSTATUS read
// also clears vblank.
const (
	StatusSpriteOverflow = 1 << 5
	StatusSprite0Hit     = 1 << 6
	StatusVBlank         = 1 << 7
)

// evalSprite holds one entry that survived sprite evaluation for the
// scanline currently being rendered.
type evalSprite struct {
	x        uint8
	attr     uint8
	patLo    uint8
	patHi    uint8
	oamIndex uint8
}

func (s evalSprite) palette() uint8 { return s.attr & attrPaletteMask }
func (s evalSprite) behind() bool   { return s.attr&attrPriority != 0 }

// PPU owns nametable VRAM, OAM, palette RAM and the output frame
// buffer, and drives the scanline/dot state machine that fills it.
type PPU struct {
	bus Bus

	vram    [VRAMSize]byte
	oam     [OAMSize]byte
	palette [PaletteSize]byte

	frame [Width * Height * 4]byte

	ctrl, mask, status uint8
	oamAddr            uint8

	// busLatch is the last byte written to any PPU register (or the
	// last value returned by a PPUSTATUS read), which bleeds into the
	// unused low bits of a PPUSTATUS read on real hardware (the PPU's
	// internal data bus has no dedicated latch for status; it just
	// reflects whatever was on the bus last).
	busLatch uint8

	// loopy scroll state: v is the current VRAM address, t the
	// temporary address latched by writes, x the fine-x scroll and w
	// the shared write toggle for PPUSCROLL/PPUADDR.
	v, t uint16
	x    uint8
	w    uint8

	dataBuffer uint8

	dot      int // 0..340
	scanline int // -1 (pre-render) .. 260
	frameNum uint64

	nmiPending bool

	bgNextTileID   uint8
	bgNextTileAttr uint8
	bgNextTileLo   uint8
	bgNextTileHi   uint8
	bgShiftPatLo   uint16
	bgShiftPatHi   uint16
	bgShiftAttrLo  uint16
	bgShiftAttrHi  uint16

	sprites          [8]evalSprite
	spriteCount      int
	spriteZeroOnLine bool
}

// New creates a PPU wired to bus, starting on the pre-render scanline
// as on power-on/reset.
func New(bus Bus) *PPU {
	return &PPU{bus: bus, scanline: -1}
}

// FrameBuffer returns the current 256x240 RGBA pixel buffer, row
// major with no padding and alpha always 255. The slice aliases the
// PPU's internal storage and is overwritten by subsequent rendering.
func (p *PPU) FrameBuffer() []byte {
	return p.frame[:]
}

// FrameCount returns the number of frames completed so far; the clock
// uses the change in this value to detect a frame boundary.
func (p *PPU) FrameCount() uint64 {
	return p.frameNum
}

// PendingNMI reports whether an NMI edge has been latched since the
// last call, and clears it. The clock polls this once per CPU
// instruction boundary.
func (p *PPU) PendingNMI() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

func (p *PPU) showBackground() bool {
	return p.mask&MaskShowBackground != 0
}

func (p *PPU) showSprites() bool {
	return p.mask&MaskShowSprites != 0
}

func (p *PPU) renderingEnabled() bool {
	return p.showBackground() || p.showSprites()
}

func (p *PPU) spriteHeight() int {
	if p.ctrl&CtrlSpriteHeight != 0 {
		return 16
	}
	return 8
}

// readVRAM reads the PPU's own 14-bit address space: pattern tables
// through the cartridge, nametables through mirroring, palette RAM
// directly.
func (p *PPU) readVRAM(addr uint16) uint8 {
	addr &= 0x3FFF

	switch {
	case addr < 0x2000:
		return p.bus.ReadCHR(addr)
	case addr < 0x3F00:
		a := 0x2000 + (addr-0x2000)%0x1000
		return p.vram[p.bus.MirrorVRAM(a)]
	default:
		return p.palette[paletteIndex(addr)]
	}
}

func (p *PPU) writeVRAM(addr uint16, val uint8) {
	addr &= 0x3FFF

	switch {
	case addr < 0x2000:
		p.bus.WriteCHR(addr, val)
	case addr < 0x3F00:
		a := 0x2000 + (addr-0x2000)%0x1000
		p.vram[p.bus.MirrorVRAM(a)] = val
	default:
		p.palette[paletteIndex(addr)] = val
	}
}

// paletteIndex applies the mirror-into-background rule for
// 0x10/0x14/0x18/0x1C and reduces the address to a 0..31 offset.
func paletteIndex(addr uint16) uint16 {
	a := (addr - 0x3F00) % 0x20
	switch a {
	case 0x10, 0x14, 0x18, 0x1C:
		a -= 0x10
	}
	return a
}
