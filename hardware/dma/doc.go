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

// Package dma implements the four channel DMA controller.
//
// Channels are configured through their registers, by the processor writing
// to the I/O range. A channel becomes runnable either immediately when it is
// enabled, or when the occasion it waits for is requested. The PPU requests
// the HBlank, VBlank and Video occasions and the audio unit requests the
// FIFO occasions.
//
// Only one channel transfers at a time. The active channel is the runnable
// channel with the lowest number. A channel that becomes runnable while a
// channel with a higher number is transferring preempts it: Run() returns
// early, between units, and the next call to Run() continues with the new
// active channel. The preempted channel keeps its progress and resumes when
// it is the highest priority channel again.
//
// The controller is driven by the console's main loop, which calls Run()
// whenever IsRunning() is true. Run() fires scheduler events as they become
// due, which is how a PPU event in the middle of a transfer can make another
// channel runnable.
//
// Each transfer unit is a read followed by a write. The value read is held in
// a latch that is shared by all channels. Reads from addresses that DMA
// cannot reach (the BIOS) do not update the latch and an idle cycle is taken
// instead, so the previous value is written again.
package dma
