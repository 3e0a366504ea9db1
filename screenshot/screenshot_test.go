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

package screenshot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"github.com/gopheradvance/gopheradvance/screenshot"
	"github.com/gopheradvance/gopheradvance/test"
)

func testFrame() []uint32 {
	frame := make([]uint32, ppu.Width*ppu.Height)
	for i := range frame {
		frame[i] = 0xff000000
	}
	frame[0] = 0xffff0000
	frame[ppu.Width*ppu.Height-1] = 0xff0000ff
	return frame
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, screenshot.Save(fn, testFrame(), 2))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), ppu.Width*2)
	test.ExpectEquality(t, img.Bounds().Dy(), ppu.Height*2)

	// nearest neighbour keeps the corner pixels whole
	r, g, b, _ := img.At(1, 1).RGBA()
	test.ExpectEquality(t, r>>8, 0xff)
	test.ExpectEquality(t, g>>8, 0)
	test.ExpectEquality(t, b>>8, 0)

	r, _, b, _ = img.At(ppu.Width*2-2, ppu.Height*2-2).RGBA()
	test.ExpectEquality(t, r>>8, 0)
	test.ExpectEquality(t, b>>8, 0xff)
}

func TestBadInput(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.ExpectFailure(t, screenshot.Save(fn, testFrame(), 0))
	test.ExpectFailure(t, screenshot.Save(fn, make([]uint32, 10), 1))
}
