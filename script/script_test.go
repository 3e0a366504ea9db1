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

package script_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/script"
	"github.com/gopheradvance/gopheradvance/test"
)

func newScript(t *testing.T) (*hardware.GBA, *script.Script, *bytes.Buffer) {
	t.Helper()
	gba, err := hardware.NewGBA(nil)
	test.DemandSuccess(t, err)
	var out bytes.Buffer
	scr := script.NewScript(gba, &out)
	t.Cleanup(scr.Close)
	return gba, scr, &out
}

func TestPeekPoke(t *testing.T) {
	gba, scr, out := newScript(t)

	err := scr.RunString(`
		poke(0x02000010, 0x5a)
		print(peek(0x02000010))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gba.Peek(0x02000010), uint8(0x5a))
	test.ExpectEquality(t, out.String(), "90\n")

	test.ExpectFailure(t, scr.RunString(`poke(0x02000000, 300)`))
}

func TestIO(t *testing.T) {
	gba, scr, out := newScript(t)

	// DISPCNT by offset and by absolute address
	err := scr.RunString(`
		write_io(0x000, 0x03)
		print(read_io(0x04000000))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, gba.Read(mmio.DISPCNT), uint8(0x03))
	test.ExpectEquality(t, out.String(), "3\n")
}

func TestRunAndFrame(t *testing.T) {
	gba, scr, out := newScript(t)

	err := scr.RunString(`
		run(1232 * 10)
		print(scanline())
		print(frame())
		print(frame(2))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "10\n1\n3\n")
	test.ExpectEquality(t, gba.PPU.FrameNum(), 3)

	test.ExpectInequality(t, scr.Digest(), "")
	test.ExpectFailure(t, scr.RunString(`run(-1)`))
}

func TestDigest(t *testing.T) {
	_, scr, out := newScript(t)

	err := scr.RunString(`
		a = digest()
		frame()
		b = digest()
		print(a ~= b)
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.String(), "true\n")
}

func TestFile(t *testing.T) {
	gba, scr, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "setup.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("poke(0x03000000, 7)\nlog('done')\n"), 0600))

	test.ExpectSuccess(t, scr.RunFile(fn))
	test.ExpectEquality(t, gba.Peek(0x03000000), uint8(7))

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}
