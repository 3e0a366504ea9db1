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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GBA type is the root of the emulation and contains external references
// to all the console sub-systems. Sub-systems do not refer to each other
// through global state. Every reference is given to a sub-system when it is
// created:
//
//	scheduler
//	interrupt controller
//	I/O register map
//	PPU            (scheduler, interrupts, DMA)
//	APU            (scheduler, DMA)
//	timers         (scheduler, interrupts, APU)
//	memory         (scheduler, I/O map, PPU memories)
//	DMA controller (memory, scheduler, interrupts)
//
// The PPU and APU are created before the DMA controller so their DMA requests
// are forwarded to it once it exists.
//
// The CPU is represented by the Processor interface. The default Processor is
// permanently halted, which is enough to run the video and DMA hardware from
// state set up through the Poke() and Write() functions.
package hardware
