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

package apu

// FIFOSize is the capacity of a direct sound FIFO in bytes.
const FIFOSize = 32

// refill threshold. the FIFO requests DMA when it holds this many bytes or
// fewer.
const fifoRefill = 16

// FIFO is a direct sound sample queue.
type FIFO struct {
	data  [FIFOSize]int8
	read  int
	count int
}

// Reset empties the FIFO.
func (f *FIFO) Reset() {
	f.read = 0
	f.count = 0
}

// Len returns the number of samples in the FIFO.
func (f *FIFO) Len() int {
	return f.count
}

// Push a sample. Pushing to a full FIFO discards the sample.
func (f *FIFO) Push(v int8) {
	if f.count == FIFOSize {
		return
	}
	f.data[(f.read+f.count)%FIFOSize] = v
	f.count++
}

// Pop the oldest sample. The second return value is false if the FIFO is
// empty.
func (f *FIFO) Pop() (int8, bool) {
	if f.count == 0 {
		return 0, false
	}
	v := f.data[f.read]
	f.read = (f.read + 1) % FIFOSize
	f.count--
	return v, true
}
