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

// Package otoaudio plays the output of the APU through the host's audio
// device. The oto library reads from the player on its own goroutine, which
// drains the APU's shared ring buffer.
package otoaudio

import (
	"encoding/binary"

	"github.com/gopheradvance/gopheradvance/hardware/apu"
)

// bytes per stereo frame of signed 16bit samples.
const frameBytes = 4

// Reader converts the float samples in an apu.Ring to signed 16bit little
// endian stereo. It implements the io.Reader interface.
type Reader struct {
	ring *apu.Ring
	buf  []float32
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(ring *apu.Ring) *Reader {
	return &Reader{
		ring: ring,
		buf:  make([]float32, 2048),
	}
}

// Read implements the io.Reader interface. The buffer is always filled. The
// ring pads with its most recent sample when it runs dry.
func (r *Reader) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	n := frames * 2

	if len(r.buf) < n {
		r.buf = make([]float32, n)
	}
	samples := r.buf[:n]
	r.ring.Read(samples)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(int16(s*32767)))
	}

	// a partial frame at the end of p is silence
	tail := frames * frameBytes
	clear(p[tail:])

	return len(p), nil
}
