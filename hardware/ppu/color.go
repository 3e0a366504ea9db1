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

// Transparent is the value of a pixel in a line buffer that has nothing drawn
// to it. Colours are 15bit so the top bit is free.
const Transparent = 0x8000

// ConvertColor converts a 15bit BGR colour to 32bit ARGB. The five bit colour
// components are expanded so that the maximum value of 31 becomes 255.
func ConvertColor(c uint16) uint32 {
	r := uint32(c & 0x1f)
	g := uint32((c >> 5) & 0x1f)
	b := uint32((c >> 10) & 0x1f)
	r = (r << 3) | (r >> 2)
	g = (g << 3) | (g >> 2)
	b = (b << 3) | (b >> 2)
	return 0xff000000 | r<<16 | g<<8 | b
}

// read a 16bit value from one of the PPU memories.
func half(mem []uint8, addr int) uint16 {
	return uint16(mem[addr]) | uint16(mem[addr+1])<<8
}

// palette returns the colour at index in palette RAM. Object colours begin at
// index 256.
func (ppu *PPU) palette(index int) uint16 {
	return half(ppu.PRAM, index*2) & 0x7fff
}
