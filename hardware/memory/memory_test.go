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

package memory_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware/memory"
	"github.com/gopheradvance/gopheradvance/hardware/memory/bus"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/test"
)

type clock struct {
	cycles int
}

func (c *clock) AddCycles(n int) {
	c.cycles += n
}

type io struct {
	regs map[uint32]uint8
}

func (i *io) Read(address uint32) uint8 {
	return i.regs[address]
}

func (i *io) Write(address uint32, value uint8) {
	i.regs[address] = value
}

func newMemory() (*memory.Memory, *clock, *io, memory.Video) {
	clk := &clock{}
	regs := &io{regs: make(map[uint32]uint8)}
	video := memory.Video{
		PRAM: make([]uint8, memory.PRAMSize),
		VRAM: make([]uint8, memory.VRAMSize),
		OAM:  make([]uint8, memory.OAMSize),
	}
	return memory.NewMemory(logger.Deny, clk, regs, video), clk, regs, video
}

func TestWorkRAM(t *testing.T) {
	mem, _, _, _ := newMemory()

	mem.WriteWord(0x02000000, 0x12345678, bus.Nonsequential)
	test.ExpectEquality(t, mem.ReadWord(0x02000000, bus.Nonsequential), 0x12345678)
	test.ExpectEquality(t, mem.ReadHalf(0x02000002, bus.Nonsequential), 0x1234)
	test.ExpectEquality(t, mem.ReadByte(0x02000001, bus.Nonsequential), 0x56)

	// EWRAM is mirrored every 256k
	test.ExpectEquality(t, mem.ReadWord(0x02040000, bus.Nonsequential), 0x12345678)

	// unaligned accesses are aligned
	test.ExpectEquality(t, mem.ReadWord(0x02000003, bus.Nonsequential), 0x12345678)

	// IWRAM is mirrored every 32k
	mem.WriteHalf(0x03007ffe, 0xabcd, bus.Nonsequential)
	test.ExpectEquality(t, mem.ReadHalf(0x03fffffe, bus.Nonsequential), 0xabcd)
}

func TestUnmapped(t *testing.T) {
	mem, _, _, _ := newMemory()
	test.ExpectEquality(t, mem.ReadWord(0x01000000, bus.Nonsequential), 0)
	test.ExpectEquality(t, mem.ReadWord(0x10000000, bus.Nonsequential), 0)
	test.ExpectEquality(t, mem.ReadWord(0x00004000, bus.Nonsequential), 0)
}

func TestIO(t *testing.T) {
	mem, _, regs, _ := newMemory()
	mem.WriteWord(0x040000b0, 0x08000000, bus.Nonsequential)
	test.ExpectEquality(t, regs.regs[0x040000b3], 0x08)
	test.ExpectEquality(t, regs.regs[0x040000b0], 0x00)
	test.ExpectEquality(t, mem.ReadHalf(0x040000b2, bus.Nonsequential), 0x0800)
}

func TestByteWrites(t *testing.T) {
	mem, _, _, video := newMemory()

	// palette RAM and background VRAM store the byte in both halves
	mem.WriteByte(0x05000003, 0x1f, bus.Nonsequential)
	test.ExpectEquality(t, video.PRAM[2], 0x1f)
	test.ExpectEquality(t, video.PRAM[3], 0x1f)

	mem.WriteByte(0x06000010, 0x22, bus.Nonsequential)
	test.ExpectEquality(t, mem.ReadHalf(0x06000010, bus.Nonsequential), 0x2222)

	// object VRAM and OAM ignore byte writes
	mem.WriteByte(0x06010000, 0x33, bus.Nonsequential)
	test.ExpectEquality(t, video.VRAM[0x10000], 0x00)
	mem.WriteByte(0x07000000, 0x44, bus.Nonsequential)
	test.ExpectEquality(t, video.OAM[0], 0x00)

	// the debugger can poke single bytes anywhere
	mem.Poke(0x07000000, 0x44)
	test.ExpectEquality(t, video.OAM[0], 0x44)
	test.ExpectEquality(t, video.OAM[1], 0x00)
	test.ExpectEquality(t, mem.Peek(0x07000000), 0x44)
}

func TestVRAMMirror(t *testing.T) {
	mem, _, _, video := newMemory()

	// the upper 32k of the 128k mirror is a copy of the 32k object area
	mem.WriteHalf(0x06018000, 0x5555, bus.Nonsequential)
	test.ExpectEquality(t, video.VRAM[0x10000], 0x55)
	test.ExpectEquality(t, mem.ReadHalf(0x06010000, bus.Nonsequential), 0x5555)
	test.ExpectEquality(t, mem.ReadHalf(0x06030000, bus.Nonsequential), 0x5555)
}

func TestROM(t *testing.T) {
	mem, _, _, _ := newMemory()
	mem.LoadROM([]uint8{0x01, 0x02, 0x03, 0x04})

	test.ExpectEquality(t, mem.ReadWord(0x08000000, bus.Nonsequential), 0x04030201)

	// the same ROM appears in all three wait state regions
	test.ExpectEquality(t, mem.ReadWord(0x0a000000, bus.Nonsequential), 0x04030201)
	test.ExpectEquality(t, mem.ReadWord(0x0c000000, bus.Nonsequential), 0x04030201)

	// beyond the end of the ROM
	test.ExpectEquality(t, mem.ReadHalf(0x08000010, bus.Nonsequential), 0x0008)

	// ROM is not writable
	mem.WriteWord(0x08000000, 0, bus.Nonsequential)
	test.ExpectEquality(t, mem.ReadWord(0x08000000, bus.Nonsequential), 0x04030201)
}

func TestSRAM(t *testing.T) {
	mem, _, _, _ := newMemory()
	mem.WriteHalf(0x0e000001, 0xaabb, bus.Nonsequential)
	test.ExpectEquality(t, mem.Peek(0x0e000001), 0xaa)
	test.ExpectEquality(t, mem.ReadHalf(0x0e000001, bus.Nonsequential), 0xaaaa)
	test.ExpectEquality(t, mem.ReadWord(0x0e000001, bus.Nonsequential), 0xaaaaaaaa)
}

func TestWaitStates(t *testing.T) {
	mem, clk, _, _ := newMemory()

	mem.ReadHalf(0x03000000, bus.Nonsequential)
	test.ExpectEquality(t, clk.cycles, 1)

	clk.cycles = 0
	mem.ReadWord(0x02000000, bus.Nonsequential)
	test.ExpectEquality(t, clk.cycles, 6)

	// default wait states for ROM are 4 and 2
	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Nonsequential, 2), 5)
	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Sequential, 2), 3)
	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Nonsequential, 4), 8)
	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Sequential, 4), 6)

	// the values most commonly used by cartridges: 3,1 for ws0 and 8 for sram
	mem.WriteWaitControl(0, 0x17)
	mem.WriteWaitControl(1, 0x40)
	test.ExpectEquality(t, mem.ReadWaitControl(0), 0x17)
	test.ExpectEquality(t, mem.ReadWaitControl(1), 0x40)
	test.ExpectSuccess(t, mem.WaitControl().Prefetch)

	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Nonsequential, 2), 4)
	test.ExpectEquality(t, mem.Cost(0x08000000, bus.Sequential, 2), 2)
	test.ExpectEquality(t, mem.Cost(0x0e000000, bus.Nonsequential, 1), 9)

	clk.cycles = 0
	mem.Idle()
	test.ExpectEquality(t, clk.cycles, 1)
}

func TestReset(t *testing.T) {
	mem, _, _, _ := newMemory()
	mem.WriteWord(0x02000000, 0x12345678, bus.Nonsequential)
	mem.WriteWord(0x0e000000, 0xff, bus.Nonsequential)
	mem.WriteWaitControl(0, 0xff)
	mem.WritePostFlag(0, 0x01)

	mem.Reset()
	test.ExpectEquality(t, mem.Peek(0x02000000), 0)
	test.ExpectEquality(t, mem.ReadWaitControl(0), 0)
	test.ExpectEquality(t, mem.ReadPostFlag(0), 0)

	// SRAM survives a reset
	test.ExpectEquality(t, mem.Peek(0x0e000000), 0xff)
}
