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
	"fmt"
)

// Latch is the working state of a channel. It is loaded from the channel's
// registers when the channel is enabled and is advanced by each transfer unit.
type Latch struct {
	Length  uint32
	SrcAddr uint32
	DstAddr uint32

	// the effective controls and size. these can differ from the register
	// values: ROM sources always increment and FIFO transfers are always
	// word-sized with a fixed destination
	SrcCntl Control
	DstCntl Control
	Size    Size
}

// Channel is a single DMA channel. The register fields hold the values that
// have been written by the processor. Addresses are stored already masked to
// the channel's address width.
type Channel struct {
	ID int

	SrcAddr uint32
	DstAddr uint32

	// the raw 16bit length register. zero means the maximum length for the
	// channel
	Length uint16

	SrcCntl   Control
	DstCntl   Control
	Size      Size
	Time      Timing
	Repeat    bool
	GamePak   bool
	Interrupt bool
	Enable    bool

	// channel is transferring to an audio FIFO
	FIFO bool

	Latch Latch
}

func (ch Channel) String() string {
	return fmt.Sprintf("dma%d: %08x (%s) -> %08x (%s) len=%d %s %s repeat=%v irq=%v",
		ch.ID, ch.SrcAddr, ch.SrcCntl, ch.DstAddr, ch.DstCntl, ch.Length,
		ch.Size, ch.Time, ch.Repeat, ch.Interrupt)
}

// the number of units for a transfer. a zero length register means the
// maximum length plus one.
func (ch *Channel) unitCount() uint32 {
	l := uint32(ch.Length) & lenMask[ch.ID]
	if l == 0 {
		return lenMask[ch.ID] + 1
	}
	return l
}

// the alignment mask for addresses of the specified size.
func alignMask(sz Size) uint32 {
	if sz == Word {
		return ^uint32(3)
	}
	return ^uint32(1)
}

// cntLow packs the low byte of the control register. only the destination
// control and bit zero of the source control are in this byte.
func (ch *Channel) cntLow() uint8 {
	return uint8(ch.DstCntl)<<5 | uint8(ch.SrcCntl&1)<<7
}

func (ch *Channel) setCntLow(v uint8) {
	ch.DstCntl = Control((v >> 5) & 0x03)
	ch.SrcCntl = (ch.SrcCntl & 2) | Control(v>>7)
}

// cntHigh packs the high byte of the control register.
func (ch *Channel) cntHigh() uint8 {
	v := uint8(ch.SrcCntl>>1) | uint8(ch.Size)<<2 | uint8(ch.Time)<<4
	if ch.Repeat {
		v |= 0x02
	}
	if ch.GamePak {
		v |= 0x08
	}
	if ch.Interrupt {
		v |= 0x40
	}
	if ch.Enable {
		v |= 0x80
	}
	return v
}

func (ch *Channel) setCntHigh(v uint8) {
	ch.SrcCntl = (ch.SrcCntl & 1) | Control(v&1)<<1
	ch.Size = Size((v >> 2) & 0x01)
	ch.Time = Timing((v >> 4) & 0x03)
	ch.Repeat = v&0x02 == 0x02 && ch.Time != Immediate
	ch.GamePak = v&0x08 == 0x08 && ch.ID == 3
	ch.Interrupt = v&0x40 == 0x40
	ch.Enable = v&0x80 == 0x80
}

// the byte at the shift position of a 32bit value is replaced with v.
func replaceByte(value uint32, shift int, v uint8) uint32 {
	return (value &^ (0xff << shift)) | uint32(v)<<shift
}
