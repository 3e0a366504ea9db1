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

package performance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/clocks"
	"github.com/gopheradvance/gopheradvance/performance"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectApproximate(t, accuracy, 100*60/clocks.FrameRate, 0.001)

	fps, _ = performance.CalcFPS(10, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	gba, err := hardware.NewGBA(nil)
	test.DemandSuccess(t, err)

	mv := filepath.Join(t.TempDir(), "dma.dot")

	var out bytes.Buffer
	err = performance.Check(&out, gba, performance.ProfileNone, "50ms", mv)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "fps"))

	dot, err := os.ReadFile(mv)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(dot), "digraph"))
}

func TestBadDuration(t *testing.T) {
	gba, err := hardware.NewGBA(nil)
	test.DemandSuccess(t, err)

	var out bytes.Buffer
	test.ExpectFailure(t, performance.Check(&out, gba, performance.ProfileNone, "soon", ""))
}
