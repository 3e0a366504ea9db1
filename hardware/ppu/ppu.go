// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package ppu

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/dma"
	"github.com/gopheradvance/gopheradvance/hardware/interrupt"
	"github.com/gopheradvance/gopheradvance/hardware/scheduler"
	"github.com/gopheradvance/gopheradvance/logger"
)

// Dimensions of the display.
const (
	Width  = 240
	Height = 160

	// total number of lines including vertical blank
	TotalLines = 228

	CyclesPerLine  = 1232
	CyclesPerFrame = CyclesPerLine * TotalLines
)

// Sizes of the PPU's memories.
const (
	PRAMSize = 0x400
	OAMSize  = 0x400
	VRAMSize = 0x18000
)

// Phase of the PPU timing state machine.
type Phase int

// List of valid Phase values.
const (
	Visible Phase = iota
	PreHBlankWindow
	HBlank
	VBlankVisible
	VBlankHBlank
	numPhases
)

func (p Phase) String() string {
	if p >= 0 && p < numPhases {
		return transitions[p].name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// transition describes a phase: how long it lasts and what happens when it
// ends.
type transition struct {
	name     string
	cycles   int
	complete func(ppu *PPU) Phase
}

var transitions [numPhases]transition

func init() {
	transitions = [numPhases]transition{
		Visible:         {name: "visible", cycles: 960, complete: (*PPU).visibleComplete},
		PreHBlankWindow: {name: "prehblank", cycles: 46, complete: (*PPU).preHBlankComplete},
		HBlank:          {name: "hblank", cycles: 226, complete: (*PPU).hblankComplete},
		VBlankVisible:   {name: "vblank", cycles: 1006, complete: (*PPU).vblankVisibleComplete},
		VBlankHBlank:    {name: "vblank hblank", cycles: 226, complete: (*PPU).vblankHBlankComplete},
	}
}

// Cycles returns the duration of the phase.
func (p Phase) Cycles() int {
	return transitions[p].cycles
}

// DMA is the part of the DMA controller used by the PPU.
type DMA interface {
	Request(occasion dma.Occasion)
	StopVideoXferDMA()
}

// Scheduler is the part of the scheduler used by the PPU.
type Scheduler interface {
	Add(delay int, tag scheduler.Tag, payload int) scheduler.Handle
	Cancel(h scheduler.Handle)
}

// FrameRenderer implementations are sent every completed frame. The frame is
// Width*Height pixels in 0xAARRGGBB format. The slice is reused for the next
// frame so implementations must copy anything they want to keep.
type FrameRenderer interface {
	NewFrame(frame []uint32) error
}

// PPU is the picture processing unit.
type PPU struct {
	log   logger.Permission
	sched Scheduler
	irq   interrupt.Raiser
	dma   DMA

	// request HBlank DMA on the hblank of vertical blank lines as well as
	// visible lines
	HBlankDMAInVBlank bool

	PRAM []uint8
	OAM  []uint8
	VRAM []uint8

	Regs Registers

	vcount int
	phase  Phase
	event  scheduler.Handle

	// number of frames completed since reset
	frameNum int

	// line buffers
	bg  [4][Width]uint16
	obj [Width]objectPixel
	win [2][Width]bool

	output [Width * Height]uint32

	renderers []FrameRenderer
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(log logger.Permission, sched Scheduler, irq interrupt.Raiser, dma DMA) *PPU {
	ppu := &PPU{
		log:   log,
		sched: sched,
		irq:   irq,
		dma:   dma,
		PRAM:  make([]uint8, PRAMSize),
		OAM:   make([]uint8, OAMSize),
		VRAM:  make([]uint8, VRAMSize),
	}
	ppu.Reset()
	return ppu
}

// Reset the PPU to the start of a frame. Memories are cleared and the first
// event is added to the scheduler. The scheduler should be reset before the
// PPU.
func (ppu *PPU) Reset() {
	clear(ppu.PRAM)
	clear(ppu.OAM)
	clear(ppu.VRAM)
	ppu.Regs.Reset()
	ppu.vcount = 0
	ppu.frameNum = 0
	clear(ppu.output[:])

	ppu.checkVCount()

	ppu.sched.Cancel(ppu.event)
	ppu.enter(Visible, 0)
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d line=%d phase=%s", ppu.frameNum, ppu.vcount, ppu.phase)
}

// AddFrameRenderer adds a FrameRenderer to the list of renderers.
func (ppu *PPU) AddFrameRenderer(r FrameRenderer) {
	ppu.renderers = append(ppu.renderers, r)
}

// VCount returns the current scanline.
func (ppu *PPU) VCount() int {
	return ppu.vcount
}

// Phase returns the current phase of the timing state machine.
func (ppu *PPU) Phase() Phase {
	return ppu.phase
}

// FrameNum returns the number of frames completed since reset.
func (ppu *PPU) FrameNum() int {
	return ppu.frameNum
}

// Frame returns the output frame. Lines below the current line are from the
// previous frame.
func (ppu *PPU) Frame() []uint32 {
	return ppu.output[:]
}

func (ppu *PPU) enter(phase Phase, cyclesLate int) {
	ppu.phase = phase
	ppu.event = ppu.sched.Add(transitions[phase].cycles-cyclesLate, scheduler.TagPPU, int(phase))
}

// HandleEvent implements the scheduler.Handler interface. The payload is the
// phase that has ended.
func (ppu *PPU) HandleEvent(payload int, cyclesLate int) {
	next := transitions[Phase(payload)].complete(ppu)
	ppu.enter(next, cyclesLate)
}

func (ppu *PPU) visibleComplete() Phase {
	ppu.RenderScanline()
	return PreHBlankWindow
}

func (ppu *PPU) preHBlankComplete() Phase {
	ppu.startHBlank()
	ppu.dma.Request(dma.OccasionHBlank)
	if ppu.vcount >= 2 {
		ppu.dma.Request(dma.OccasionVideo)
	}
	return HBlank
}

func (ppu *PPU) hblankComplete() Phase {
	ppu.Regs.DisplayStatus.HBlankFlag = false
	ppu.vcount++
	ppu.checkVCount()

	if ppu.vcount == Height {
		ppu.Regs.DisplayStatus.VBlankFlag = true
		if ppu.Regs.DisplayStatus.VBlankIRQEnable {
			ppu.irq.Raise(interrupt.VBlank, 0)
		}
		ppu.dma.Request(dma.OccasionVBlank)

		// the internal affine registers are reloaded for the next frame
		for i := range 2 {
			ppu.Regs.BGX[i].Current = ppu.Regs.BGX[i].Initial
			ppu.Regs.BGY[i].Current = ppu.Regs.BGY[i].Initial
		}
		ppu.Regs.Mosaic.BG.counterY = 0
		ppu.Regs.Mosaic.OBJ.counterY = 0

		ppu.frameNum++
		for _, r := range ppu.renderers {
			if err := r.NewFrame(ppu.output[:]); err != nil {
				logger.Log(ppu.log, "ppu", err)
			}
		}

		return VBlankVisible
	}

	for i := range 2 {
		ppu.Regs.BGX[i].Current += int32(ppu.Regs.BGPB[i])
		ppu.Regs.BGY[i].Current += int32(ppu.Regs.BGPD[i])
	}
	ppu.Regs.Mosaic.BG.advance()
	ppu.Regs.Mosaic.OBJ.advance()

	return Visible
}

func (ppu *PPU) vblankVisibleComplete() Phase {
	ppu.startHBlank()

	// HBlank DMA on vblank lines is off unless the preference asks for it
	if ppu.HBlankDMAInVBlank {
		ppu.dma.Request(dma.OccasionHBlank)
	}

	if ppu.vcount < 162 {
		ppu.dma.Request(dma.OccasionVideo)
	} else if ppu.vcount == 162 {
		ppu.dma.StopVideoXferDMA()
	}

	return VBlankHBlank
}

func (ppu *PPU) vblankHBlankComplete() Phase {
	ppu.Regs.DisplayStatus.HBlankFlag = false

	next := VBlankVisible
	if ppu.vcount == TotalLines-1 {
		ppu.vcount = 0
		next = Visible
	} else {
		ppu.vcount++

		// the vblank flag is clear on the last line of the frame
		if ppu.vcount == TotalLines-1 {
			ppu.Regs.DisplayStatus.VBlankFlag = false
		}
	}
	ppu.checkVCount()

	return next
}

func (ppu *PPU) startHBlank() {
	ppu.Regs.DisplayStatus.HBlankFlag = true
	if ppu.Regs.DisplayStatus.HBlankIRQEnable {
		ppu.irq.Raise(interrupt.HBlank, 0)
	}
}

// checkVCount updates the vcount flag and raises the interrupt on a new match.
func (ppu *PPU) checkVCount() {
	match := ppu.vcount == ppu.Regs.DisplayStatus.VCountSetting
	if match && !ppu.Regs.DisplayStatus.VCountFlag && ppu.Regs.DisplayStatus.VCountIRQEnable {
		ppu.irq.Raise(interrupt.VCount, 0)
	}
	ppu.Regs.DisplayStatus.VCountFlag = match
}
