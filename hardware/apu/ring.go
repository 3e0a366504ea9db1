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

import "sync"

// Ring is a fixed size buffer of stereo samples shared between the emulation
// and an audio output running in another goroutine. Samples are interleaved
// left and right.
//
// When the ring is full the oldest samples are dropped. When a read asks for
// more samples than are available the remainder of the read is padded with
// the last sample.
type Ring struct {
	crit sync.Mutex

	data  []float32
	read  int
	count int

	last [2]float32
}

// NewRing is the preferred method of initialisation for the Ring type. The
// size is the number of stereo frames.
func NewRing(frames int) *Ring {
	return &Ring{
		data: make([]float32, max(frames, 1)*2),
	}
}

// Len returns the number of stereo frames waiting to be read.
func (r *Ring) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.count / 2
}

// Cap returns the capacity of the ring in stereo frames.
func (r *Ring) Cap() int {
	return len(r.data) / 2
}

// Write interleaved stereo samples.
func (r *Ring) Write(samples []float32) {
	r.crit.Lock()
	defer r.crit.Unlock()

	// only whole frames
	samples = samples[:len(samples)&^1]

	for _, s := range samples {
		if r.count == len(r.data) {
			// drop the oldest frame
			r.read = (r.read + 2) % len(r.data)
			r.count -= 2
		}
		r.data[(r.read+r.count)%len(r.data)] = s
		r.count++
	}
}

// Read interleaved stereo samples into dst. Always fills dst, padding with the
// most recent sample if necessary. Returns the number of samples that were
// taken from the ring.
func (r *Ring) Read(dst []float32) int {
	r.crit.Lock()
	defer r.crit.Unlock()

	n := 0
	for i := range dst {
		if r.count == 0 {
			dst[i] = r.last[i&1]
			continue
		}
		dst[i] = r.data[r.read]
		r.last[i&1] = dst[i]
		r.read = (r.read + 1) % len(r.data)
		r.count--
		n++
	}

	return n
}

// Reset empties the ring.
func (r *Ring) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.read = 0
	r.count = 0
	r.last = [2]float32{}
}
