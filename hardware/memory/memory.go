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

package memory

import (
	"github.com/gopheradvance/gopheradvance/hardware/memory/bus"
	"github.com/gopheradvance/gopheradvance/logger"
)

// Clock is the part of the scheduler that the memory charges access costs to.
type Clock interface {
	AddCycles(n int)
}

// IO is the map of I/O registers.
type IO interface {
	Read(address uint32) uint8
	Write(address uint32, value uint8)
}

// Video is the memory owned by the PPU.
type Video struct {
	PRAM []uint8
	VRAM []uint8
	OAM  []uint8
}

// Memory is the console's memory map.
type Memory struct {
	log   logger.Permission
	clock Clock
	io    IO
	video Video

	BIOS  []uint8
	EWRAM []uint8
	IWRAM []uint8
	ROM   []uint8
	SRAM  []uint8

	waitcnt WaitControl
	delays  delays
	postflg uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(log logger.Permission, clock Clock, io IO, video Video) *Memory {
	mem := &Memory{
		log:   log,
		clock: clock,
		io:    io,
		video: video,
		BIOS:  make([]uint8, BIOSSize),
		EWRAM: make([]uint8, EWRAMSize),
		IWRAM: make([]uint8, IWRAMSize),
		SRAM:  make([]uint8, SRAMSize),
	}
	mem.Reset()
	return mem
}

// Reset work RAM and the memory control registers. BIOS, ROM and SRAM are
// not affected.
func (mem *Memory) Reset() {
	clear(mem.EWRAM)
	clear(mem.IWRAM)
	mem.waitcnt = WaitControl{}
	mem.delays = mem.waitcnt.delays()
	mem.postflg = 0
}

// LoadBIOS copies data into the BIOS region.
func (mem *Memory) LoadBIOS(data []uint8) {
	clear(mem.BIOS)
	copy(mem.BIOS, data)
}

// LoadROM attaches a cartridge ROM. The data is not copied.
func (mem *Memory) LoadROM(data []uint8) {
	mem.ROM = data
	logger.Logf(mem.log, "memory", "rom attached: %d bytes", len(data))
}

// Cost returns the number of cycles an access of the specified kind and size
// (in bytes) costs at the address.
func (mem *Memory) Cost(address uint32, access bus.Access, size int) int {
	page := address >> 24
	if page >= numPages {
		return 1
	}
	w := width16
	if size == 4 {
		w = width32
	}
	return mem.delays[access][w][page]
}

func (mem *Memory) charge(address uint32, access bus.Access, w width) {
	page := address >> 24
	if page >= numPages {
		mem.clock.AddCycles(1)
		return
	}
	mem.clock.AddCycles(mem.delays[access][w][page])
}

// vramOffset folds the 128k VRAM mirror into the 96k of VRAM.
func vramOffset(address uint32) uint32 {
	a := address & 0x1ffff
	if a >= VRAMSize {
		a -= 0x8000
	}
	return a
}

// read a byte without cost.
func (mem *Memory) read(address uint32) uint8 {
	switch Region(address >> 24) {
	case RegionBIOS:
		if address < BIOSSize {
			return mem.BIOS[address]
		}
	case RegionEWRAM:
		return mem.EWRAM[address&(EWRAMSize-1)]
	case RegionIWRAM:
		return mem.IWRAM[address&(IWRAMSize-1)]
	case RegionIO:
		return mem.io.Read(address)
	case RegionPRAM:
		return mem.video.PRAM[address&(PRAMSize-1)]
	case RegionVRAM:
		return mem.video.VRAM[vramOffset(address)]
	case RegionOAM:
		return mem.video.OAM[address&(OAMSize-1)]
	case RegionROM0, RegionROM0 + 1, RegionROM1, RegionROM1 + 1, RegionROM2, RegionROM2 + 1:
		a := address & (ROMMaxSize - 1)
		if a < uint32(len(mem.ROM)) {
			return mem.ROM[a]
		}

		// reads beyond the end of the ROM see the address of the half-word
		// on the cartridge bus
		return uint8((a >> 1) >> ((a & 1) * 8))
	case RegionSRAM, RegionSRAM + 1:
		return mem.SRAM[address&(SRAMSize-1)]
	}
	return 0
}

// write a 16bit or 32bit unit a byte at a time, without cost and without the
// byte write rules.
func (mem *Memory) write(address uint32, value uint8) {
	switch Region(address >> 24) {
	case RegionEWRAM:
		mem.EWRAM[address&(EWRAMSize-1)] = value
	case RegionIWRAM:
		mem.IWRAM[address&(IWRAMSize-1)] = value
	case RegionIO:
		mem.io.Write(address, value)
	case RegionPRAM:
		mem.video.PRAM[address&(PRAMSize-1)] = value
	case RegionVRAM:
		mem.video.VRAM[vramOffset(address)] = value
	case RegionOAM:
		mem.video.OAM[address&(OAMSize-1)] = value
	case RegionSRAM, RegionSRAM + 1:
		mem.SRAM[address&(SRAMSize-1)] = value
	}
}

// ReadByte implements the bus.Memory interface.
func (mem *Memory) ReadByte(address uint32, access bus.Access) uint8 {
	mem.charge(address, access, width16)
	return mem.read(address)
}

// ReadHalf implements the bus.Memory interface.
func (mem *Memory) ReadHalf(address uint32, access bus.Access) uint16 {
	mem.charge(address, access, width16)

	// SRAM has an eight bit bus
	if r := Region(address >> 24); r == RegionSRAM || r == RegionSRAM+1 {
		return uint16(mem.read(address)) * 0x0101
	}

	address &^= 1

	return uint16(mem.read(address)) | uint16(mem.read(address+1))<<8
}

// ReadWord implements the bus.Memory interface.
func (mem *Memory) ReadWord(address uint32, access bus.Access) uint32 {
	mem.charge(address, access, width32)

	if r := Region(address >> 24); r == RegionSRAM || r == RegionSRAM+1 {
		return uint32(mem.read(address)) * 0x01010101
	}

	address &^= 3

	return uint32(mem.read(address)) | uint32(mem.read(address+1))<<8 |
		uint32(mem.read(address+2))<<16 | uint32(mem.read(address+3))<<24
}

// WriteByte implements the bus.Memory interface.
func (mem *Memory) WriteByte(address uint32, value uint8, access bus.Access) {
	mem.charge(address, access, width16)

	switch Region(address >> 24) {
	case RegionPRAM:
		a := address & (PRAMSize - 1) &^ 1
		mem.video.PRAM[a] = value
		mem.video.PRAM[a+1] = value
	case RegionVRAM:
		a := vramOffset(address) &^ 1
		if a < objVRAMOrigin {
			mem.video.VRAM[a] = value
			mem.video.VRAM[a+1] = value
		}
	case RegionOAM:
		// ignored
	default:
		mem.write(address, value)
	}
}

// WriteHalf implements the bus.Memory interface.
func (mem *Memory) WriteHalf(address uint32, value uint16, access bus.Access) {
	mem.charge(address, access, width16)

	// SRAM has an eight bit bus. the byte that reaches it depends on the
	// alignment of the address
	if r := Region(address >> 24); r == RegionSRAM || r == RegionSRAM+1 {
		mem.write(address, uint8(value>>((address&1)*8)))
		return
	}

	address &^= 1

	mem.write(address, uint8(value))
	mem.write(address+1, uint8(value>>8))
}

// WriteWord implements the bus.Memory interface.
func (mem *Memory) WriteWord(address uint32, value uint32, access bus.Access) {
	mem.charge(address, access, width32)

	if r := Region(address >> 24); r == RegionSRAM || r == RegionSRAM+1 {
		mem.write(address, uint8(value>>((address&3)*8)))
		return
	}

	address &^= 3

	for i := range uint32(4) {
		mem.write(address+i, uint8(value>>(i*8)))
	}
}

// Idle implements the bus.Memory interface.
func (mem *Memory) Idle() {
	mem.clock.AddCycles(1)
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint32) uint8 {
	return mem.read(address)
}

// Poke implements the bus.DebuggerBus interface. Unlike the processor, the
// debugger can write single bytes to any RAM.
func (mem *Memory) Poke(address uint32, value uint8) {
	mem.write(address, value)
}
