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

package main

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
)

func BenchmarkFrame(b *testing.B) {
	p := preferences.NewDefaultPreferences()
	p.Logging.Set(false)

	gba, err := hardware.NewGBA(p)
	if err != nil {
		b.Fatal(err)
	}

	// mode 3 with BG2 enabled so that every line is composited
	gba.Write(0x000, 0x03)
	gba.Write(0x001, 0x04)

	for b.Loop() {
		gba.Frame()
	}
}
