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

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
)

const pixelDepth = 4

// Video implements the ppu.FrameRenderer interface.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+ppu.Width*ppu.Height*pixelDepth),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of frames that have been added to the digest
// since the last reset.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// NewFrame implements the ppu.FrameRenderer interface.
func (dig *Video) NewFrame(frame []uint32) error {
	if len(frame)*pixelDepth > len(dig.pixels)-sha1.Size {
		return curated.Errorf("digest: frame is too large (%d pixels)", len(frame))
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])

	for i, p := range frame {
		binary.LittleEndian.PutUint32(dig.pixels[sha1.Size+i*pixelDepth:], p)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return nil
}
