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

package preferences_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
	"github.com/gopheradvance/gopheradvance/prefs"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.SampleRate.Get().(int), 48000)
	test.ExpectEquality(t, p.Scale.Get().(float64), 3.0)
	test.ExpectEquality(t, p.AudioBufferLength.Get().(int), 4096)
	test.ExpectFailure(t, p.HBlankDMAInVBlank.Get().(bool))
	test.ExpectSuccess(t, p.AllowLogging())

	test.ExpectSuccess(t, p.Logging.Set(false))
	test.ExpectFailure(t, p.AllowLogging())

	err := p.Save()
	test.ExpectSuccess(t, curated.Is(err, preferences.NoDisk))
}

func TestDisk(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	prefs.PushCommandLineStack("hardware.dma.hblankInVBlank::true")
	p, err := preferences.NewPreferences()
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.HBlankDMAInVBlank.Get().(bool))
	test.ExpectEquality(t, p.SampleRate.Get().(int), 48000)

	test.ExpectSuccess(t, p.SampleRate.Set(32768))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SampleRate.Get().(int), 32768)
	test.ExpectSuccess(t, q.HBlankDMAInVBlank.Get().(bool))
}
