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

package dma_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware/dma"
	"github.com/gopheradvance/gopheradvance/hardware/interrupt"
	"github.com/gopheradvance/gopheradvance/hardware/memory/bus"
	"github.com/gopheradvance/gopheradvance/hardware/scheduler"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/test"
)

// flat memory that charges one cycle per access.
type memory struct {
	sched  *scheduler.Scheduler
	data   map[uint32]uint8
	idles  int
	writes []uint32
}

func (m *memory) ReadByte(address uint32, _ bus.Access) uint8 {
	m.sched.AddCycles(1)
	return m.data[address]
}

func (m *memory) ReadHalf(address uint32, _ bus.Access) uint16 {
	m.sched.AddCycles(1)
	address &^= 1
	return uint16(m.data[address]) | uint16(m.data[address+1])<<8
}

func (m *memory) ReadWord(address uint32, _ bus.Access) uint32 {
	m.sched.AddCycles(1)
	address &^= 3
	return uint32(m.data[address]) | uint32(m.data[address+1])<<8 |
		uint32(m.data[address+2])<<16 | uint32(m.data[address+3])<<24
}

func (m *memory) WriteByte(address uint32, value uint8, _ bus.Access) {
	m.sched.AddCycles(1)
	m.data[address] = value
	m.writes = append(m.writes, address)
}

func (m *memory) WriteHalf(address uint32, value uint16, _ bus.Access) {
	m.sched.AddCycles(1)
	address &^= 1
	m.data[address] = uint8(value)
	m.data[address+1] = uint8(value >> 8)
	m.writes = append(m.writes, address)
}

func (m *memory) WriteWord(address uint32, value uint32, _ bus.Access) {
	m.sched.AddCycles(1)
	address &^= 3
	for i := range 4 {
		m.data[address+uint32(i)] = uint8(value >> (i * 8))
	}
	m.writes = append(m.writes, address)
}

func (m *memory) Idle() {
	m.sched.AddCycles(1)
	m.idles++
}

func (m *memory) putWord(address uint32, value uint32) {
	for i := range 4 {
		m.data[address+uint32(i)] = uint8(value >> (i * 8))
	}
}

func (m *memory) word(address uint32) uint32 {
	return uint32(m.data[address]) | uint32(m.data[address+1])<<8 |
		uint32(m.data[address+2])<<16 | uint32(m.data[address+3])<<24
}

// raised interrupts.
type raised struct {
	src   interrupt.Source
	index int
}

type irq struct {
	raised []raised
}

func (r *irq) Raise(src interrupt.Source, index int) {
	r.raised = append(r.raised, raised{src: src, index: index})
}

type harness struct {
	sched *scheduler.Scheduler
	mem   *memory
	irq   *irq
	dma   *dma.DMA
}

func newHarness() *harness {
	h := &harness{
		sched: scheduler.NewScheduler(logger.Deny),
		irq:   &irq{},
	}
	h.mem = &memory{sched: h.sched, data: make(map[uint32]uint8)}
	h.dma = dma.NewDMA(logger.Deny, h.mem, h.sched, h.irq)
	return h
}

func (h *harness) write32(id int, offset int, v uint32) {
	for i := range 4 {
		h.dma.Write(id, offset+i, uint8(v>>(i*8)))
	}
}

// configure a channel with the control register value written last, as a
// program would.
func (h *harness) configure(id int, src uint32, dst uint32, length uint16, control uint16) {
	h.write32(id, 0, src)
	h.write32(id, 4, dst)
	h.dma.Write(id, 8, uint8(length))
	h.dma.Write(id, 9, uint8(length>>8))
	h.dma.Write(id, 10, uint8(control))
	h.dma.Write(id, 11, uint8(control>>8))
}

// control register values
const (
	ctrlEnable    = 0x8000
	ctrlIRQ       = 0x4000
	ctrlWord      = 0x0400
	ctrlRepeat    = 0x0200
	ctrlVBlank    = 0x1000
	ctrlHBlank    = 0x2000
	ctrlSpecial   = 0x3000
	ctrlDstFixed  = 0x0040
	ctrlDstReload = 0x0060
	ctrlSrcDec    = 0x0080
	ctrlSrcFixed  = 0x0100
)

func TestImmediateTransfer(t *testing.T) {
	h := newHarness()
	for i := range uint32(4) {
		h.mem.putWord(0x02000000+i*4, 0x11111111*(i+1))
	}

	h.configure(3, 0x02000000, 0x03000000, 4, ctrlEnable|ctrlWord|ctrlIRQ)
	test.ExpectSuccess(t, h.dma.IsRunning())
	test.ExpectEquality(t, h.dma.Active(), 3)

	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, h.dma.Active(), -1)
	for i := range uint32(4) {
		test.ExpectEquality(t, h.mem.word(0x03000000+i*4), 0x11111111*(i+1), i)
	}

	// the channel disables itself and raises its interrupt
	test.ExpectFailure(t, h.dma.Channels[3].Enable)
	test.DemandEquality(t, len(h.irq.raised), 1)
	test.ExpectEquality(t, h.irq.raised[0], raised{src: interrupt.DMA, index: 3})

	// eight cycles for four reads and four writes
	test.ExpectEquality(t, h.sched.Now(), 8)
}

func TestHalfTransferAndControls(t *testing.T) {
	h := newHarness()
	h.mem.putWord(0x02000000, 0xbbbbaaaa)
	h.mem.putWord(0x02000004, 0xddddcccc)

	// decrementing source and fixed destination
	h.configure(0, 0x02000006, 0x03000000, 4, ctrlEnable|ctrlSrcDec|ctrlDstFixed)
	h.dma.Run()

	test.DemandEquality(t, len(h.mem.writes), 4)
	for _, a := range h.mem.writes {
		test.ExpectEquality(t, a, 0x03000000)
	}

	// the last value written is the first half-word of the source
	test.ExpectEquality(t, h.mem.word(0x03000000)&0xffff, 0xaaaa)

	// half-word reads are duplicated in both halves of the latch
	test.ExpectEquality(t, h.dma.OpenBus(), 0xaaaaaaaa)
	test.ExpectEquality(t, h.dma.Channels[0].Latch.SrcAddr, 0x01fffffe)
}

func TestZeroLength(t *testing.T) {
	h := newHarness()

	h.configure(0, 0x02000000, 0x03000000, 0, ctrlEnable|ctrlVBlank)
	test.ExpectEquality(t, h.dma.Channels[0].Latch.Length, 0x4000)

	h.configure(3, 0x02000000, 0x03000000, 0, ctrlEnable|ctrlVBlank)
	test.ExpectEquality(t, h.dma.Channels[3].Latch.Length, 0x10000)

	// vblank timing means neither channel is runnable yet
	test.ExpectFailure(t, h.dma.IsRunning())
}

func TestRegisters(t *testing.T) {
	h := newHarness()

	// addresses are masked to the width of the channel
	h.write32(0, 0, 0xffffffff)
	h.write32(0, 4, 0xffffffff)
	test.ExpectEquality(t, h.dma.Channels[0].SrcAddr, 0x07ffffff)
	test.ExpectEquality(t, h.dma.Channels[0].DstAddr, 0x07ffffff)
	h.write32(3, 0, 0xffffffff)
	h.write32(3, 4, 0xffffffff)
	test.ExpectEquality(t, h.dma.Channels[3].SrcAddr, 0x0fffffff)
	test.ExpectEquality(t, h.dma.Channels[3].DstAddr, 0x0fffffff)

	// addresses and length are write-only
	for offset := range 10 {
		test.ExpectEquality(t, h.dma.Read(0, offset), 0, offset)
	}

	// control register reads back
	h.dma.Write(1, 10, 0xe0)
	h.dma.Write(1, 11, 0x77)
	test.ExpectEquality(t, h.dma.Read(1, 10), 0xe0)
	test.ExpectEquality(t, h.dma.Read(1, 11), 0x77)
	test.ExpectEquality(t, h.dma.Channels[1].SrcCntl, dma.Reload)
	test.ExpectEquality(t, h.dma.Channels[1].DstCntl, dma.Reload)
	test.ExpectEquality(t, h.dma.Channels[1].Time, dma.Special)

	// the gamepak bit only exists for channel 3
	h.dma.Write(2, 11, 0x08)
	test.ExpectEquality(t, h.dma.Read(2, 11), 0x00)
	h.dma.Write(3, 11, 0x08)
	test.ExpectEquality(t, h.dma.Read(3, 11), 0x08)

	// the repeat bit can't be set for immediate transfers
	h.dma.Write(2, 11, 0x02)
	test.ExpectEquality(t, h.dma.Read(2, 11), 0x00)
	h.dma.Write(2, 11, 0x12)
	test.ExpectEquality(t, h.dma.Read(2, 11), 0x12)

	// the register block as a unit
	r := h.dma.Register(2)
	r.Write(10, 0x40)
	test.ExpectEquality(t, r.Read(10), 0x40)
}

func TestPreemption(t *testing.T) {
	h := newHarness()

	// channel 0 waits for hblank
	h.configure(0, 0x02000000, 0x03000000, 2, ctrlEnable|ctrlHBlank|ctrlWord)

	// an event part way through the transfer requests hblank
	h.sched.Register(scheduler.TagUser, scheduler.HandlerFunc(func(_ int, _ int) {
		h.dma.Request(dma.OccasionHBlank)
	}))
	h.sched.Add(10, scheduler.TagUser, 0)

	h.configure(3, 0x02001000, 0x03001000, 100, ctrlEnable|ctrlWord)
	test.ExpectEquality(t, h.dma.Active(), 3)

	// channel 3 is interrupted by channel 0
	h.dma.Run()
	test.ExpectEquality(t, h.dma.Active(), 0)
	test.ExpectSuccess(t, h.dma.IsRunnable(3))
	remaining := h.dma.Channels[3].Latch.Length
	test.ExpectSuccess(t, remaining < 100 && remaining > 0)

	// channel 0 completes and channel 3 becomes active again
	h.dma.Run()
	test.ExpectEquality(t, h.dma.Active(), 3)
	test.ExpectFailure(t, h.dma.IsRunnable(0))
	test.ExpectEquality(t, h.dma.Channels[3].Latch.Length, remaining)

	// channel 3 completes from where it left off
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, len(h.mem.writes), 102)
}

func TestLowerPriorityDoesNotPreempt(t *testing.T) {
	h := newHarness()
	h.configure(3, 0x02000000, 0x03000000, 2, ctrlEnable|ctrlHBlank)
	h.configure(0, 0x02001000, 0x03001000, 2, ctrlEnable)
	test.ExpectEquality(t, h.dma.Active(), 0)

	h.dma.Request(dma.OccasionHBlank)
	test.ExpectEquality(t, h.dma.Active(), 0)
	test.ExpectSuccess(t, h.dma.IsRunnable(3))

	h.dma.Run()
	test.ExpectEquality(t, h.dma.Active(), 3)
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
}

func TestRepeat(t *testing.T) {
	h := newHarness()
	h.configure(1, 0x02000000, 0x03000000, 2, ctrlEnable|ctrlHBlank|ctrlRepeat|ctrlDstReload)

	for range 3 {
		h.dma.Request(dma.OccasionHBlank)
		test.ExpectEquality(t, h.dma.Active(), 1)
		h.dma.Run()
		test.ExpectFailure(t, h.dma.IsRunning())

		// the channel remains enabled with its length and destination reloaded
		test.ExpectSuccess(t, h.dma.Channels[1].Enable)
		test.ExpectEquality(t, h.dma.Channels[1].Latch.Length, 2)
		test.ExpectEquality(t, h.dma.Channels[1].Latch.DstAddr, 0x03000000)
	}

	// the source address continues from where it left off
	test.ExpectEquality(t, h.dma.Channels[1].Latch.SrcAddr, 0x0200000c)
}

func TestUnreadableSource(t *testing.T) {
	h := newHarness()
	h.mem.putWord(0x02000000, 0x12345678)
	h.configure(0, 0x02000000, 0x03000000, 1, ctrlEnable|ctrlWord)
	h.dma.Run()

	// the BIOS can't be read by DMA so the latch is written unchanged
	h.configure(0, 0x00000000, 0x03000010, 2, ctrlEnable|ctrlWord)
	h.dma.Run()
	test.ExpectEquality(t, h.mem.idles, 2)
	test.ExpectEquality(t, h.mem.word(0x03000010), 0x12345678)
	test.ExpectEquality(t, h.mem.word(0x03000014), 0x12345678)
}

func TestROMSourceIncrements(t *testing.T) {
	h := newHarness()
	h.configure(3, 0x08000000, 0x03000000, 2, ctrlEnable|ctrlVBlank|ctrlSrcFixed)
	test.ExpectEquality(t, h.dma.Channels[3].Latch.SrcCntl, dma.Increment)

	// the register keeps the value that was written
	test.ExpectEquality(t, h.dma.Channels[3].SrcCntl, dma.Fixed)
}

func TestFIFO(t *testing.T) {
	h := newHarness()
	h.configure(1, 0x02000000, dma.FIFOA, 0, ctrlEnable|ctrlSpecial|ctrlRepeat)
	h.configure(2, 0x02000100, dma.FIFOB, 0, ctrlEnable|ctrlSpecial|ctrlRepeat)

	ch := h.dma.Channels[1]
	test.ExpectSuccess(t, ch.FIFO)
	test.ExpectEquality(t, ch.Latch.Length, 4)
	test.ExpectEquality(t, ch.Latch.Size, dma.Word)
	test.ExpectFailure(t, h.dma.IsRunning())

	// only the channel writing to FIFO A responds
	h.dma.Request(dma.OccasionFIFO0)
	test.ExpectEquality(t, h.dma.Active(), 1)
	test.ExpectFailure(t, h.dma.IsRunnable(2))

	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.DemandEquality(t, len(h.mem.writes), 4)
	for _, a := range h.mem.writes {
		test.ExpectEquality(t, a, dma.FIFOA)
	}
	test.ExpectEquality(t, h.dma.Channels[1].Latch.Length, 4)
	test.ExpectEquality(t, h.dma.Channels[1].Latch.SrcAddr, 0x02000010)
}

func TestVideoCapture(t *testing.T) {
	h := newHarness()
	h.configure(3, 0x06000000, 0x02000000, 120, ctrlEnable|ctrlSpecial|ctrlRepeat)

	h.dma.Request(dma.OccasionVideo)
	test.ExpectEquality(t, h.dma.Active(), 3)
	h.dma.Run()
	test.ExpectSuccess(t, h.dma.Channels[3].Enable)

	h.dma.StopVideoXferDMA()
	test.ExpectFailure(t, h.dma.Channels[3].Enable)

	// no longer responds to the video occasion
	h.dma.Request(dma.OccasionVideo)
	test.ExpectFailure(t, h.dma.IsRunning())
}

func TestDisableWhileRunnable(t *testing.T) {
	h := newHarness()
	h.configure(2, 0x02000000, 0x03000000, 10, ctrlEnable)
	test.ExpectEquality(t, h.dma.Active(), 2)

	h.dma.Write(2, 11, 0x00)
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, h.dma.Active(), -1)

	// disabling outside of Run() does not hold up the next transfer
	h.configure(3, 0x02000000, 0x03000000, 1, ctrlEnable)
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, len(h.mem.writes), 1)
}

func TestDisableDuringTransfer(t *testing.T) {
	h := newHarness()
	h.sched.Register(scheduler.TagUser, scheduler.HandlerFunc(func(_ int, _ int) {
		h.dma.Write(3, 11, 0x00)
	}))
	h.sched.Add(4, scheduler.TagUser, 0)

	h.configure(3, 0x02000000, 0x03000000, 10, ctrlEnable)
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, len(h.mem.writes), 2)

	// the channel is not resumed
	h.dma.Run()
	test.ExpectEquality(t, len(h.mem.writes), 2)
}

func TestPriorityOrder(t *testing.T) {
	h := newHarness()
	h.configure(2, 0x02000000, 0x03002000, 2, ctrlEnable|ctrlVBlank)
	h.configure(0, 0x02000000, 0x03000000, 2, ctrlEnable|ctrlVBlank)
	test.ExpectFailure(t, h.dma.IsRunning())

	h.dma.Request(dma.OccasionVBlank)
	test.ExpectEquality(t, h.dma.Active(), 0)
	test.ExpectSuccess(t, h.dma.IsRunnable(2))

	h.dma.Run()
	test.ExpectEquality(t, h.dma.Active(), 2)
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())

	test.DemandEquality(t, len(h.mem.writes), 4)
	test.ExpectEquality(t, h.mem.writes[0], 0x03000000)
	test.ExpectEquality(t, h.mem.writes[1], 0x03000002)
	test.ExpectEquality(t, h.mem.writes[2], 0x03002000)
	test.ExpectEquality(t, h.mem.writes[3], 0x03002002)
}

func TestFIFOPreempted(t *testing.T) {
	h := newHarness()
	h.configure(1, 0x02000000, dma.FIFOA, 0, ctrlEnable|ctrlSpecial|ctrlRepeat)
	h.dma.Request(dma.OccasionFIFO0)
	test.ExpectEquality(t, h.dma.Active(), 1)

	// channel 0 takes over before the FIFO transfer has moved anything
	h.configure(0, 0x02001000, 0x03000000, 2, ctrlEnable|ctrlWord)
	test.ExpectEquality(t, h.dma.Active(), 0)
	test.ExpectSuccess(t, h.dma.IsRunnable(1))

	h.dma.Run()
	test.ExpectEquality(t, h.dma.Active(), 1)
	test.ExpectEquality(t, h.dma.Channels[1].Latch.Length, 4)
	test.ExpectEquality(t, len(h.mem.writes), 2)

	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.DemandEquality(t, len(h.mem.writes), 6)
	for _, a := range h.mem.writes[2:] {
		test.ExpectEquality(t, a, dma.FIFOA)
	}
}

func TestCompletedChannelIgnoresOccasion(t *testing.T) {
	h := newHarness()
	h.configure(0, 0x02000000, 0x03000000, 2, ctrlEnable|ctrlHBlank)
	h.configure(1, 0x02000000, 0x03001000, 2, ctrlEnable|ctrlVBlank)

	h.dma.Request(dma.OccasionHBlank)
	h.dma.Request(dma.OccasionVBlank)
	h.dma.Run()
	h.dma.Run()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectFailure(t, h.dma.Channels[0].Enable)
	test.ExpectFailure(t, h.dma.Channels[1].Enable)
	test.ExpectEquality(t, len(h.mem.writes), 4)

	h.dma.Request(dma.OccasionHBlank)
	h.dma.Request(dma.OccasionVBlank)
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, h.dma.Active(), -1)
	h.dma.Run()
	test.ExpectEquality(t, len(h.mem.writes), 4)
}

func TestReset(t *testing.T) {
	h := newHarness()
	h.configure(0, 0x02000000, 0x03000000, 10, ctrlEnable)
	h.dma.Reset()
	test.ExpectFailure(t, h.dma.IsRunning())
	test.ExpectEquality(t, h.dma.Read(0, 11), 0)
}
