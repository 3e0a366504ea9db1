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

// Package ppu implements the picture processing unit.
//
// Timing is a state machine of five phases. Every scanline is 1232 cycles
// long and every frame is 228 scanlines, of which the first 160 are visible:
//
//	phase              cycles   next
//	Visible             960     PreHBlankWindow
//	PreHBlankWindow      46     HBlank
//	HBlank              226     Visible, or VBlankVisible after line 159
//	VBlankVisible      1006     VBlankHBlank
//	VBlankHBlank        226     VBlankVisible, or Visible after line 227
//
// The phases are driven by scheduler events. The transition out of every
// phase is described by a single table, which gives the duration of the phase
// and the function that performs the side effects of leaving it and returns
// the next phase.
//
// A scanline is rendered in one go, at the end of the Visible phase. The
// backgrounds, objects and windows are drawn into line buffers, which are
// then composited into the output frame. The completed frame is sent to all
// attached FrameRenderer implementations on entry to line 160.
package ppu
