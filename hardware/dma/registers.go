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

	"github.com/gopheradvance/gopheradvance/hardware/mmio"
)

// Read a byte of a channel's register block. The offset is from the start of
// the channel's block, which is 12 bytes long. Only the control register can
// be read. All other bytes read as zero.
func (dma *DMA) Read(id int, offset int) uint8 {
	ch := &dma.Channels[id]
	switch offset {
	case 10:
		return ch.cntLow()
	case 11:
		return ch.cntHigh()
	}
	return 0
}

// Write a byte of a channel's register block. The offset is from the start of
// the channel's block.
func (dma *DMA) Write(id int, offset int, value uint8) {
	ch := &dma.Channels[id]
	switch offset {
	case 0, 1, 2, 3:
		ch.SrcAddr = replaceByte(ch.SrcAddr, offset*8, value) & srcMask[id]
	case 4, 5, 6, 7:
		ch.DstAddr = replaceByte(ch.DstAddr, (offset-4)*8, value) & dstMask[id]
	case 8, 9:
		ch.Length = uint16(replaceByte(uint32(ch.Length), (offset-8)*8, value))
	case 10:
		ch.setCntLow(value)
	case 11:
		enableOld := ch.Enable
		ch.setCntHigh(value)
		dma.onChannelWritten(ch, enableOld)
	}
}

// Register is a channel's block of registers presented as a single unit.
type Register struct {
	dma *DMA
	id  int
}

// Register returns the register block for a channel.
func (dma *DMA) Register(id int) Register {
	return Register{dma: dma, id: id}
}

// Read implements the mmio.Register interface.
func (r Register) Read(offset int) uint8 {
	return r.dma.Read(r.id, offset)
}

// Write implements the mmio.Register interface.
func (r Register) Write(offset int, value uint8) {
	r.dma.Write(r.id, offset, value)
}

// MapRegisters adds the register blocks of every channel to the I/O map.
func (dma *DMA) MapRegisters(m *mmio.Map) error {
	for id := range NumChannels {
		addr := uint32(mmio.DMA0SAD + id*mmio.DMAStride)
		if err := m.Add(fmt.Sprintf("DMA%d", id), addr, mmio.DMABlockSize, dma.Register(id)); err != nil {
			return err
		}
	}
	return nil
}
