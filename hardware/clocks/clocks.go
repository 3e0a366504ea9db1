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

// Package clocks defines the constant values that define the speed of the main
// clock in the console. All hardware timing is expressed in cycles of this
// clock.
package clocks

// Frequency of the main clock in MHz.
const MHz = 16.777216

// CyclesPerSecond is the number of main clock cycles in one second.
const CyclesPerSecond = 16777216

// CyclesPerFrame is the number of main clock cycles in one video frame of 228
// scanlines.
const CyclesPerFrame = 280896

// FrameRate is the number of frames per second.
const FrameRate = float64(CyclesPerSecond) / CyclesPerFrame
