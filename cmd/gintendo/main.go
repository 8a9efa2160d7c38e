// Command gintendo loads an iNES ROM and runs it, presenting the PPU's
// frame buffer in an ebiten window and sampling keyboard input for
// controller 1. Update drives one emulated frame per call via
// clock.RunFrame, which blocks until that frame's worth of CPU/PPU
// cycles has run.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/claude/gintendo/bus"
	"github.com/claude/gintendo/cartridge"
	"github.com/claude/gintendo/clock"
	"github.com/claude/gintendo/cpu"
	"github.com/claude/gintendo/ppu"
)

var romFile = flag.String("nes_rom", "", "Path to the iNES ROM file to run.")

// keys maps controller button bits, in bus.Button* order, to the keys
// that drive them.
var keys = []ebiten.Key{
	ebiten.KeyA,     // A
	ebiten.KeyB,     // B
	ebiten.KeySpace, // Select
	ebiten.KeyEnter, // Start
	ebiten.KeyUp,    // Up
	ebiten.KeyDown,  // Down
	ebiten.KeyLeft,  // Left
	ebiten.KeyRight, // Right
}

// game implements ebiten.Game, driving one emulated frame per Update
// call and blitting the PPU's frame buffer in Draw.
type game struct {
	clk *clock.Clock
	pad *bus.StandardController
	img *ebiten.Image
}

func (g *game) Update() error {
	var mask uint8
	for i, key := range keys {
		if ebiten.IsKeyPressed(key) {
			mask |= 1 << i
		}
	}
	g.pad.SetButtons(mask)

	g.img.WritePixels(g.clk.RunFrame())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

func main() {
	flag.Parse()
	if *romFile == "" {
		log.Fatal("-nes_rom is required")
	}

	data, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	cart, err := cartridge.New(data)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}

	b := bus.New(cart)
	p := ppu.New(b)
	b.SetPPU(p)
	c := cpu.New(b)

	pad := &bus.StandardController{}
	b.SetController(0, pad)

	cl := clock.New(c, p, b)

	g := &game{
		clk: cl,
		pad: pad,
		img: ebiten.NewImage(ppu.Width, ppu.Height),
	}

	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
