package ppu

// OAM attribute byte layout.
const (
	attrPaletteMask = 0x03
	attrPriority    = 1 << 5 // 0: in front of background, 1: behind
	attrFlipH       = 1 << 6
	attrFlipV       = 1 << 7
)

// spriteEntry is one 4-byte OAM record: Y, tile index, attributes, X.
type spriteEntry struct {
	y, tile, attr, x uint8
}

func (p *PPU) oamEntry(index int) spriteEntry {
	o := index * 4
	return spriteEntry{
		y:    p.oam[o],
		tile: p.oam[o+1],
		attr: p.oam[o+2],
		x:    p.oam[o+3],
	}
}

func (s spriteEntry) flipH() bool { return s.attr&attrFlipH != 0 }
func (s spriteEntry) flipV() bool { return s.attr&attrFlipV != 0 }
