// Package clock drives the CPU and PPU together at their native 1:3
// cycle ratio and forwards NMI edges from the PPU into the CPU,
// presenting a single synchronous RunFrame call to a host. Each CPU
// instruction's cycle count (plus any OAM DMA cycles it stole) is
// converted straight into that many PPU dots, rather than ticking
// both clocks one sub-cycle at a time.
package clock

// CPU is the subset of cpu.CPU the clock drives.
type CPU interface {
	Step() int
	TriggerNMI()
}

// PPU is the subset of ppu.PPU the clock drives.
type PPU interface {
	Step()
	FrameCount() uint64
	PendingNMI() bool
	FrameBuffer() []byte
}

// DMASource reports CPU cycles stolen by OAM DMA since the last call.
// Tick advances its own elapsed-cycle counter, which it uses to decide
// OAM DMA's odd/even-cycle start penalty.
type DMASource interface {
	Tick()
	TakeDMACycles() int
}

// Clock owns no state of its own beyond bookkeeping; all NES state
// lives in the CPU, PPU and bus it's given.
type Clock struct {
	cpu CPU
	ppu PPU
	dma DMASource
}

// New creates a Clock driving cpu and ppu, charging dma-stolen cycles
// (if dma is non-nil) against the PPU clock the same as any other CPU
// cycles.
func New(cpu CPU, ppu PPU, dma DMASource) *Clock {
	return &Clock{cpu: cpu, ppu: ppu, dma: dma}
}

// RunFrame advances emulation until one full PPU frame has completed,
// then returns its frame buffer. Each CPU instruction's cycles (plus
// any DMA cycles it triggered) are converted to PPU dots at the
// hardware's fixed 1:3 ratio; an NMI edge latched by the PPU during
// those dots is delivered to the CPU before its next instruction
// fetch.
func (c *Clock) RunFrame() []byte {
	startFrame := c.ppu.FrameCount()

	for c.ppu.FrameCount() == startFrame {
		if c.ppu.PendingNMI() {
			c.cpu.TriggerNMI()
		}

		cycles := c.cpu.Step()
		if c.dma != nil {
			for i := 0; i < cycles; i++ {
				c.dma.Tick()
			}
			cycles += c.dma.TakeDMACycles()
		}

		for i := 0; i < cycles*3; i++ {
			c.ppu.Step()
		}
	}

	return c.ppu.FrameBuffer()
}
