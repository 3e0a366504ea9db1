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

package ppu

// prepareWindows fills the window line buffers for the current line.
func (ppu *PPU) prepareWindows(line int) {
	r := &ppu.Regs
	for i := range 2 {
		on := r.DisplayControl.Enable[EnableWin0+i] && r.WinV[i].Contains(line)
		for x := range Width {
			ppu.win[i][x] = on && r.WinH[i].Contains(x)
		}
	}
}

// windowLayers returns the layers that are visible at x. Window 0 has the
// highest priority followed by window 1 and then the object window. Pixels
// outside all windows use the outside layer selection.
func (ppu *PPU) windowLayers(x int) [6]bool {
	r := &ppu.Regs
	switch {
	case ppu.win[0][x]:
		return r.WinIn.Enable[0]
	case ppu.win[1][x]:
		return r.WinIn.Enable[1]
	case r.DisplayControl.Enable[EnableObjWin] && ppu.obj[x].window:
		return r.WinOut.Enable[1]
	}
	return r.WinOut.Enable[0]
}
