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

// Package memory implements the console's memory map. The Memory type
// satisfies the bus.Memory interface and is used by both the processor and
// the DMA controller.
//
// Every access costs a number of cycles that depends on the region being
// accessed, the width of the access and whether the access is sequential. The
// cost is charged to the scheduler immediately. The cost of accessing the
// cartridge ROM and SRAM is controlled by the WAITCNT register, which is
// implemented in this package.
//
// Palette RAM, VRAM and OAM belong to the PPU. They are given to the Memory
// type when it is created. Byte writes to palette RAM and to background VRAM
// write the same byte to both halves of the half-word. Byte writes to OAM and
// object VRAM are ignored.
//
// The I/O region is delegated byte-by-byte to the I/O map.
package memory
