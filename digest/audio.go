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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// number of samples collected before the digest is updated.
const audioBufferLength = 4096

// Audio implements the apu.AudioMixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, sha1.Size+audioBufferLength*4),
		bufferCt: sha1.Size,
	}
}

// Hash implements the Digest interface. Samples that have not yet been flushed
// are not included in the hash.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// SetAudio implements the apu.AudioMixer interface.
func (dig *Audio) SetAudio(samples []float32) error {
	for _, s := range samples {
		binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(s))
		dig.bufferCt += 4
		if dig.bufferCt >= len(dig.buffer) {
			dig.flush()
		}
	}
	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}

// EndMixing implements the apu.AudioMixer interface. Any remaining samples are
// added to the digest.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	return nil
}
