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

package digest_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/digest"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestVideoChaining(t *testing.T) {
	frame := make([]uint32, ppu.Width*ppu.Height)

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.ExpectSuccess(t, a.NewFrame(frame))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	// the same frame produces a different hash because the hash is chained
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(frame))
	test.ExpectInequality(t, a.Hash(), h)

	test.ExpectSuccess(t, b.NewFrame(frame))
	test.ExpectSuccess(t, b.NewFrame(frame))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frames(), 2)

	frame[100] = 0xffffffff
	test.ExpectSuccess(t, a.NewFrame(frame))
	frame[100] = 0
	test.ExpectSuccess(t, b.NewFrame(frame))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Frames(), 0)
	test.ExpectEquality(t, a.Hash(), digest.NewVideo().Hash())

	test.ExpectFailure(t, a.NewFrame(make([]uint32, ppu.Width*ppu.Height+1)))
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	test.ExpectSuccess(t, a.SetAudio([]float32{0.5, -0.5}))
	test.ExpectSuccess(t, b.SetAudio([]float32{0.5, -0.5}))

	// samples are not in the hash until flushed
	test.ExpectEquality(t, a.Hash(), digest.NewAudio().Hash())

	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), digest.NewAudio().Hash())
}
