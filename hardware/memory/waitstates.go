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

package memory

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/memory/bus"
	"github.com/gopheradvance/gopheradvance/hardware/mmio"
)

// width of an access.
type width int

const (
	width16 width = iota
	width32
)

// cycle costs for every page, indexed by access kind and width. eight bit
// accesses cost the same as sixteen bit accesses.
type delays [2][2][numPages]int

var (
	// first access wait states for the three cartridge ROM regions and SRAM
	nonseqWaits = [4]int{4, 3, 2, 8}

	// subsequent access wait states for each of the three ROM regions
	seqWaits = [3][2]int{{2, 1}, {4, 1}, {8, 1}}
)

// WaitControl is the WAITCNT register.
type WaitControl struct {
	SRAM     int
	WS0N     int
	WS0S     int
	WS1N     int
	WS1S     int
	WS2N     int
	WS2S     int
	PHI      int
	Prefetch bool
}

func (w WaitControl) String() string {
	return fmt.Sprintf("sram=%d ws0=%d/%d ws1=%d/%d ws2=%d/%d prefetch=%v",
		w.SRAM, w.WS0N, w.WS0S, w.WS1N, w.WS1S, w.WS2N, w.WS2S, w.Prefetch)
}

// pack returns the 16bit register value.
func (w WaitControl) pack() uint16 {
	v := uint16(w.SRAM) | uint16(w.WS0N)<<2 | uint16(w.WS0S)<<4 |
		uint16(w.WS1N)<<5 | uint16(w.WS1S)<<7 |
		uint16(w.WS2N)<<8 | uint16(w.WS2S)<<10 | uint16(w.PHI)<<11
	if w.Prefetch {
		v |= 1 << 14
	}
	return v
}

func (w *WaitControl) unpackLow(v uint8) {
	w.SRAM = int(v & 0x03)
	w.WS0N = int((v >> 2) & 0x03)
	w.WS0S = int((v >> 4) & 0x01)
	w.WS1N = int((v >> 5) & 0x03)
	w.WS1S = int((v >> 7) & 0x01)
}

func (w *WaitControl) unpackHigh(v uint8) {
	w.WS2N = int(v & 0x03)
	w.WS2S = int((v >> 2) & 0x01)
	w.PHI = int((v >> 3) & 0x03)
	w.Prefetch = v&0x40 == 0x40
}

// build the delay table for the current wait control settings.
func (w WaitControl) delays() delays {
	var d delays

	set := func(page int, n16, s16, n32, s32 int) {
		d[bus.Nonsequential][width16][page] = n16
		d[bus.Sequential][width16][page] = s16
		d[bus.Nonsequential][width32][page] = n32
		d[bus.Sequential][width32][page] = s32
	}

	// unmapped pages cost a single cycle
	for page := range numPages {
		set(page, 1, 1, 1, 1)
	}

	set(int(RegionEWRAM), 3, 3, 6, 6)
	set(int(RegionPRAM), 1, 1, 2, 2)
	set(int(RegionVRAM), 1, 1, 2, 2)

	rom := [3][2]int{{w.WS0N, w.WS0S}, {w.WS1N, w.WS1S}, {w.WS2N, w.WS2S}}
	for i, ws := range rom {
		n := 1 + nonseqWaits[ws[0]]
		s := 1 + seqWaits[i][ws[1]]

		// 32bit accesses are two 16bit accesses, the second always sequential
		page := int(RegionROM0) + i*2
		set(page, n, s, n+s, s*2)
		set(page+1, n, s, n+s, s*2)
	}

	sram := 1 + nonseqWaits[w.SRAM]
	set(int(RegionSRAM), sram, sram, sram, sram)
	set(int(RegionSRAM)+1, sram, sram, sram, sram)

	return d
}

// ReadWaitControl implements the I/O register read for WAITCNT.
func (mem *Memory) ReadWaitControl(offset int) uint8 {
	switch offset {
	case 0:
		return uint8(mem.waitcnt.pack())
	case 1:
		return uint8(mem.waitcnt.pack() >> 8)
	}
	return 0
}

// WriteWaitControl implements the I/O register write for WAITCNT.
func (mem *Memory) WriteWaitControl(offset int, value uint8) {
	switch offset {
	case 0:
		mem.waitcnt.unpackLow(value)
	case 1:
		mem.waitcnt.unpackHigh(value)
	default:
		return
	}
	mem.delays = mem.waitcnt.delays()
}

// WaitControl returns a copy of the WAITCNT register.
func (mem *Memory) WaitControl() WaitControl {
	return mem.waitcnt
}

// ReadPostFlag implements the I/O register read for POSTFLG.
func (mem *Memory) ReadPostFlag(_ int) uint8 {
	return mem.postflg
}

// WritePostFlag implements the I/O register write for POSTFLG.
func (mem *Memory) WritePostFlag(_ int, value uint8) {
	mem.postflg = value & 0x01
}

// MapRegisters adds the WAITCNT and POSTFLG registers to the I/O map.
func (mem *Memory) MapRegisters(m *mmio.Map) error {
	if err := m.Add("WAITCNT", mmio.WAITCNT, 4, mmio.Funcs{R: mem.ReadWaitControl, W: mem.WriteWaitControl}); err != nil {
		return err
	}
	return m.Add("POSTFLG", mmio.POSTFLG, 1, mmio.Funcs{R: mem.ReadPostFlag, W: mem.WritePostFlag})
}
