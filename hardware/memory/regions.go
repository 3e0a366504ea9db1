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

// Sizes of the memory regions.
const (
	BIOSSize  = 0x4000
	EWRAMSize = 0x40000
	IWRAMSize = 0x8000
	PRAMSize  = 0x400
	VRAMSize  = 0x18000
	OAMSize   = 0x400
	SRAMSize  = 0x10000

	// the maximum size of a cartridge ROM
	ROMMaxSize = 0x2000000
)

// Region is the area of memory selected by the top eight bits of an address.
type Region int

// List of valid Region values. Addresses with a page that is not listed are
// unmapped.
const (
	RegionBIOS  Region = 0x00
	RegionEWRAM Region = 0x02
	RegionIWRAM Region = 0x03
	RegionIO    Region = 0x04
	RegionPRAM  Region = 0x05
	RegionVRAM  Region = 0x06
	RegionOAM   Region = 0x07
	RegionROM0  Region = 0x08
	RegionROM1  Region = 0x0a
	RegionROM2  Region = 0x0c
	RegionSRAM  Region = 0x0e
)

// the number of pages in the address space that are decoded. pages above this
// are unmapped.
const numPages = 16

// the first address in VRAM that is for object tiles. byte writes at or above
// this address are ignored.
const objVRAMOrigin = 0x10000
