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

// Package digest contains implementations of the ppu.FrameRenderer and
// apu.AudioMixer interfaces that produce a cryptographic hash of the output.
// The hash can be used to compare the output of the emulation from one run to
// the next.
//
// Each hash is chained. The data that is hashed for a frame is prefixed with
// the previous hash value, so the final hash depends on every frame (or audio
// buffer) since the digest was reset.
package digest

// Digest implementations produce a hash of the output they have received.
type Digest interface {
	Hash() string
	ResetDigest()
}
