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

// Package bus defines the memory bus concept. The bus is the route by which
// the processor and the DMA controller reach memory. Every access through a
// bus costs time, which the bus implementation charges to the scheduler.
//
// The DebuggerBus interface describes access to memory that is outside of the
// normal operation of the machine. Peek() and Poke() cost no time and have no
// side effects other than the change to memory.
package bus
