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

// Package script runs Lua scripts against a running console. Scripts can
// inspect and change memory and I/O registers, advance the emulation and
// read the video digest. This is useful for setting up machine state in
// regression tests and for automation.
//
// The following functions are available to scripts:
//
//	peek(addr)         read a byte from the bus without cost
//	poke(addr, v)      write a byte to the bus without cost
//	read_io(addr)      read a byte from the I/O region
//	write_io(addr, v)  write a byte to the I/O region
//	run(cycles)        run the console for a number of cycles
//	frame([n])         run the console for n frames (default 1)
//	scanline()         the current value of VCOUNT
//	digest()           the video digest of every frame since the script began
//	log(msg)           add a message to the central log
//
// I/O addresses can be absolute or an offset from the start of the I/O
// region.
package script
