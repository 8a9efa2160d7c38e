package ppu

// Loopy scroll register bit layout, shared by v and t:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// The increment helpers below wrap coarse X/Y into the next
// nametable on overflow, matching the real PPU address-increment
// hardware (nesdev.org/wiki/PPU_scrolling).

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementFineY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

// transferX copies the horizontal scroll bits (coarse X, nametable X)
// from t into v. Happens at dot 257 of visible and pre-render lines.
func (p *PPU) transferX() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

// transferY copies the vertical scroll bits (coarse Y, fine Y,
// nametable Y) from t into v. Happens at dots 280-304 of the
// pre-render line.
func (p *PPU) transferY() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}
