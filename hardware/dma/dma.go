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

package dma

import (
	"github.com/gopheradvance/gopheradvance/hardware/interrupt"
	"github.com/gopheradvance/gopheradvance/hardware/memory/bus"
	"github.com/gopheradvance/gopheradvance/logger"
)

// Scheduler is the part of the scheduler used by the DMA controller.
type Scheduler interface {
	GetRemainingCycleCount() int
	Step()
}

// DMA is the four channel DMA controller.
type DMA struct {
	log   logger.Permission
	mem   bus.Memory
	sched Scheduler
	irq   interrupt.Raiser

	Channels [NumChannels]Channel

	// channel currently transferring. -1 if no channel is runnable
	active int

	// the active channel changed or was disabled during Run()
	earlyExit bool

	// Run() is in its transfer loop
	running bool

	runnable channelSet
	hblank   channelSet
	vblank   channelSet
	video    channelSet

	// the value of the most recent read by any channel
	latch uint32
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(log logger.Permission, mem bus.Memory, sched Scheduler, irq interrupt.Raiser) *DMA {
	dma := &DMA{
		log:   log,
		mem:   mem,
		sched: sched,
		irq:   irq,
	}
	dma.Reset()
	return dma
}

// Reset all channels to their power-on state.
func (dma *DMA) Reset() {
	for id := range dma.Channels {
		dma.Channels[id] = Channel{ID: id}
	}
	dma.active = -1
	dma.earlyExit = false
	dma.running = false
	dma.runnable = 0
	dma.hblank = 0
	dma.vblank = 0
	dma.video = 0
	dma.latch = 0
}

// IsRunning returns true if any channel is runnable.
func (dma *DMA) IsRunning() bool {
	return dma.runnable != 0
}

// Active returns the channel that will transfer on the next call to Run().
// Returns -1 if no channel is runnable.
func (dma *DMA) Active() int {
	return dma.active
}

// IsRunnable returns true if the channel is waiting to transfer or is
// transferring.
func (dma *DMA) IsRunnable(id int) bool {
	return dma.runnable.has(id)
}

// OpenBus returns the value most recently read by a DMA transfer.
func (dma *DMA) OpenBus() uint32 {
	return dma.latch
}

func (dma *DMA) tryStart(id int) {
	if dma.runnable == 0 {
		dma.active = id
	} else if id < dma.active {
		dma.active = id
		dma.earlyExit = dma.running
	}
	dma.runnable.set(id)
}

func (dma *DMA) selectNext() {
	dma.active = dma.runnable.highest()
}

// Request transfers for an occasion. Channels waiting for the occasion become
// runnable.
func (dma *DMA) Request(occasion Occasion) {
	switch occasion {
	case OccasionHBlank:
		dma.requestSet(dma.hblank)
	case OccasionVBlank:
		dma.requestSet(dma.vblank)
	case OccasionVideo:
		dma.requestSet(dma.video)
	case OccasionFIFO0, OccasionFIFO1:
		addr := uint32(FIFOA)
		if occasion == OccasionFIFO1 {
			addr = FIFOB
		}
		for id := 1; id <= 2; id++ {
			ch := &dma.Channels[id]
			if ch.Enable && ch.Time == Special && ch.DstAddr == addr {
				dma.tryStart(id)
			}
		}
	}
}

func (dma *DMA) requestSet(set channelSet) {
	if id := set.highest(); id >= 0 {
		dma.tryStart(id)
		dma.runnable |= set
	}
}

// StopVideoXferDMA disables channel 3 if it is waiting for the video capture
// occasion. Called by the PPU when video capture ends for the frame.
func (dma *DMA) StopVideoXferDMA() {
	ch := &dma.Channels[3]
	if !ch.Enable || ch.Time != Special {
		return
	}

	ch.Enable = false
	dma.video.clear(3)
	dma.runnable.clear(3)
	if dma.active == 3 {
		dma.earlyExit = dma.running
	}
	dma.selectNext()
}

// Run the active channel until it completes or until it is preempted. The
// function returns immediately if no channel is runnable.
func (dma *DMA) Run() {
	if dma.active < 0 {
		return
	}

	ch := &dma.Channels[dma.active]
	l := &ch.Latch

	srcModify := modify[l.Size][l.SrcCntl]
	dstModify := modify[l.Size][l.DstCntl]
	access := bus.Nonsequential

	dma.running = true

	for l.Length != 0 {
		if dma.sched.GetRemainingCycleCount() <= 0 {
			dma.sched.Step()
		}

		if dma.earlyExit {
			dma.earlyExit = false
			dma.running = false
			return
		}

		if l.Size == Word {
			if l.SrcAddr >= 0x02000000 {
				dma.latch = dma.mem.ReadWord(l.SrcAddr, access)
			} else {
				dma.mem.Idle()
			}
			dma.mem.WriteWord(l.DstAddr, dma.latch, access)
		} else {
			if l.SrcAddr >= 0x02000000 {
				v := uint32(dma.mem.ReadHalf(l.SrcAddr, access))
				dma.latch = v<<16 | v
			} else {
				dma.mem.Idle()
			}
			dma.mem.WriteHalf(l.DstAddr, uint16(dma.latch), access)
		}

		l.SrcAddr = uint32(int32(l.SrcAddr) + srcModify)
		l.DstAddr = uint32(int32(l.DstAddr) + dstModify)
		l.Length--
		access = bus.Sequential
	}

	dma.running = false
	dma.complete(ch)
}

func (dma *DMA) complete(ch *Channel) {
	dma.runnable.clear(ch.ID)

	if ch.Interrupt {
		dma.irq.Raise(interrupt.DMA, ch.ID)
	}

	if ch.Repeat {
		if ch.FIFO {
			ch.Latch.Length = 4
		} else {
			ch.Latch.Length = ch.unitCount()
			if ch.DstCntl == Reload {
				ch.Latch.DstAddr = ch.DstAddr & alignMask(ch.Size)
			}
		}
	} else {
		ch.Enable = false
		dma.hblank.clear(ch.ID)
		dma.vblank.clear(ch.ID)
		dma.video.clear(ch.ID)
	}

	dma.selectNext()
}

func (dma *DMA) onChannelWritten(ch *Channel, enableOld bool) {
	dma.hblank.clear(ch.ID)
	dma.vblank.clear(ch.ID)
	dma.video.clear(ch.ID)

	if !ch.Enable {
		if enableOld {
			logger.Logf(dma.log, "dma", "channel %d disabled", ch.ID)
		}
		if dma.runnable.has(ch.ID) {
			dma.runnable.clear(ch.ID)
			if dma.active == ch.ID {
				dma.earlyExit = dma.running
			}
			dma.selectNext()
		}
		return
	}

	switch ch.Time {
	case HBlank:
		dma.hblank.set(ch.ID)
	case VBlank:
		dma.vblank.set(ch.ID)
	case Special:
		if ch.ID == 3 {
			dma.video.set(ch.ID)
		}
	}

	// changes to the control register of a channel that is already enabled
	// do not reload the latch
	if enableOld {
		return
	}

	l := &ch.Latch
	l.SrcAddr = ch.SrcAddr
	l.DstAddr = ch.DstAddr
	l.SrcCntl = ch.SrcCntl
	l.DstCntl = ch.DstCntl
	l.Size = ch.Size

	// the source address always increments when reading from ROM
	if page := l.SrcAddr >> 24; page >= 0x08 && page <= 0x0d {
		l.SrcCntl = Increment
	}

	if ch.Time == Special && (ch.ID == 1 || ch.ID == 2) {
		ch.FIFO = true
		l.Length = 4
		l.Size = Word
		l.DstCntl = Fixed
		l.SrcAddr &= alignMask(Word)
		l.DstAddr &= alignMask(Word)
	} else {
		ch.FIFO = false
		l.Length = ch.unitCount()
		l.SrcAddr &= alignMask(ch.Size)
		l.DstAddr &= alignMask(ch.Size)
	}

	logger.Logf(dma.log, "dma", "%s", ch)

	if ch.Time == Immediate {
		dma.tryStart(ch.ID)
	}
}
