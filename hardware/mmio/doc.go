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

// Package mmio maps the console's I/O address range to the registers of the
// individual components.
//
// Every register is presented as a Register: a unit of one or more bytes that
// is read and written one byte at a time, by offset from the unit's first
// address. Half-word and word accesses to the I/O range are broken into byte
// accesses by the memory package.
//
// The Map is a table keyed by address range. It is built once when the console
// is created, with each component adding its own registers. Reads of addresses
// that are not mapped return zero and writes to them are ignored.
package mmio
