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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopheradvance/gopheradvance/test"
	"github.com/gopheradvance/gopheradvance/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 32768)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio([]float32{0, 0, 1, -1, 2, -2}))
	test.ExpectSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 32768)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, len(buf.Data), 6)
	test.ExpectEquality(t, buf.Data[2], 32767)
	test.ExpectEquality(t, buf.Data[5], -32767)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}
