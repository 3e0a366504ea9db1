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

// Package apu implements the direct sound part of the audio processing unit.
//
// Samples are written to the two FIFOs by the CPU or, more usually, by DMA.
// Each FIFO is bound to one of the first two timers and moves a sample into
// its output latch whenever that timer overflows. When a FIFO runs low it asks
// for more data with a FIFO DMA request.
//
// The two latches are mixed at the host sample rate and the resulting stereo
// samples are written to a Ring, from where an audio thread can consume them,
// and to any attached AudioMixer.
//
// The tone and noise channels are not synthesised. Their registers are stored
// so that they can be read back.
package apu
