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

package mmio

// Base address of the I/O range.
const Base = 0x04000000

// Addresses of the registers in the I/O range. Registers that are part of a
// repeating block (background control, DMA channels, timers) are given for
// the first member of the block.
const (
	DISPCNT  = Base + 0x000
	DISPSTAT = Base + 0x004
	VCOUNT   = Base + 0x006
	BG0CNT   = Base + 0x008
	BG0HOFS  = Base + 0x010
	BG0VOFS  = Base + 0x012
	BG2PA    = Base + 0x020
	BG2PB    = Base + 0x022
	BG2PC    = Base + 0x024
	BG2PD    = Base + 0x026
	BG2X     = Base + 0x028
	BG2Y     = Base + 0x02c
	WIN0H    = Base + 0x040
	WIN1H    = Base + 0x042
	WIN0V    = Base + 0x044
	WIN1V    = Base + 0x046
	WININ    = Base + 0x048
	WINOUT   = Base + 0x04a
	MOSAIC   = Base + 0x04c
	BLDCNT   = Base + 0x050
	BLDALPHA = Base + 0x052
	BLDY     = Base + 0x054

	SOUND1CNT = Base + 0x060
	SOUNDCNTL = Base + 0x080
	SOUNDCNTH = Base + 0x082
	SOUNDCNTX = Base + 0x084
	SOUNDBIAS = Base + 0x088
	WAVERAM   = Base + 0x090
	FIFOA     = Base + 0x0a0
	FIFOB     = Base + 0x0a4

	DMA0SAD = Base + 0x0b0

	TM0CNT = Base + 0x100

	IE      = Base + 0x200
	IF      = Base + 0x202
	WAITCNT = Base + 0x204
	IME     = Base + 0x208
	POSTFLG = Base + 0x300
	HALTCNT = Base + 0x301
)

// Strides between the members of repeating register blocks.
const (
	BGCNTStride  = 0x02
	BGOFSStride  = 0x04
	BGAffStride  = 0x10
	DMAStride    = 0x0c
	TimerStride  = 0x04
	DMABlockSize = 12
)
