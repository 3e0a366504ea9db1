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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/govern"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/hardware/clocks"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
	"github.com/gopheradvance/gopheradvance/test"
)

type capture struct {
	frames int
	first  uint32
}

func (c *capture) NewFrame(frame []uint32) error {
	c.frames++
	c.first = frame[0]
	return nil
}

func newGBA(t *testing.T) *hardware.GBA {
	t.Helper()
	prefs := preferences.NewDefaultPreferences()
	prefs.Logging.Set(false)
	gba, err := hardware.NewGBA(prefs)
	test.DemandSuccess(t, err)
	return gba
}

func writeDMA(gba *hardware.GBA, id int, src, dst uint32, length uint16, control uint16) {
	base := uint32(0xb0 + id*0x0c)
	for i := range 4 {
		gba.Write(base+uint32(i), uint8(src>>(i*8)))
		gba.Write(base+4+uint32(i), uint8(dst>>(i*8)))
	}
	gba.Write(base+8, uint8(length))
	gba.Write(base+9, uint8(length>>8))
	gba.Write(base+10, uint8(control))
	gba.Write(base+11, uint8(control>>8))
}

func TestFrame(t *testing.T) {
	gba := newGBA(t)
	c := &capture{}
	gba.AddFrameRenderer(c)

	gba.Frame()
	test.ExpectEquality(t, gba.Scheduler.Now(), uint64(clocks.CyclesPerFrame))
	test.ExpectEquality(t, gba.PPU.VCount(), 0)
	test.ExpectEquality(t, gba.PPU.FrameNum(), 1)
	test.ExpectEquality(t, c.frames, 1)

	// forced blank is on after reset
	test.ExpectEquality(t, c.first, uint32(0xffffffff))
}

func TestBitmapDisplay(t *testing.T) {
	gba := newGBA(t)
	c := &capture{}
	gba.AddFrameRenderer(c)

	// mode 3 with BG2 enabled
	gba.Write(0x000, 0x03)
	gba.Write(0x001, 0x04)

	gba.Poke(0x06000000, 0x1f)
	gba.Poke(0x06000001, 0x00)

	gba.Frame()
	test.ExpectEquality(t, c.first, ppu.ConvertColor(0x001f))
}

func TestImmediateDMA(t *testing.T) {
	gba := newGBA(t)
	for i := range 16 {
		gba.Poke(0x02000000+uint32(i), uint8(i+1))
	}

	// DMA3 copying four words into VRAM with an interrupt on completion
	gba.Write(0x200, 0x00)
	writeDMA(gba, 3, 0x02000000, 0x06000000, 4, 0xc400)
	test.ExpectSuccess(t, gba.DMA.IsRunning())

	gba.Run(100)
	test.ExpectFailure(t, gba.DMA.IsRunning())
	for i := range 16 {
		test.ExpectEquality(t, gba.Peek(0x06000000+uint32(i)), uint8(i+1))
	}

	// DMA3 interrupt is bit 11 of IF
	test.ExpectEquality(t, gba.Read(0x203)&0x08, uint8(0x08))

	// channel is disabled after a non-repeating transfer
	test.ExpectEquality(t, gba.Read(0xdf)&0x80, uint8(0x00))
}

func TestVBlankDMA(t *testing.T) {
	gba := newGBA(t)
	gba.Poke(0x02000000, 0xaa)
	gba.Poke(0x02000001, 0x55)

	writeDMA(gba, 0, 0x02000000, 0x05000000, 1, 0x9000)
	gba.Run(ppu.Height*ppu.CyclesPerLine - 10)
	test.ExpectEquality(t, gba.Peek(0x05000000), uint8(0x00))

	gba.Run(100)
	test.ExpectEquality(t, gba.Peek(0x05000000), uint8(0xaa))
	test.ExpectEquality(t, gba.Peek(0x05000001), uint8(0x55))
}

func TestHBlankDMA(t *testing.T) {
	gba := newGBA(t)
	for i := range 0x200 {
		gba.Poke(0x02000000+uint32(i), uint8(i))
	}

	// repeating HBlank DMA of one half-word per line, destination reloads
	writeDMA(gba, 0, 0x02000000, 0x05000000, 1, 0xa260)

	gba.Run(3 * ppu.CyclesPerLine)
	test.ExpectSuccess(t, gba.DMA.Channels[0].Enable)

	// three lines so the source has advanced three times and the destination
	// reloaded every time
	test.ExpectEquality(t, gba.Peek(0x05000000), uint8(4))
	test.ExpectEquality(t, gba.Peek(0x05000001), uint8(5))
	test.ExpectEquality(t, gba.DMA.Channels[0].Latch.SrcAddr, uint32(0x02000006))
}

func TestVBlankInterrupt(t *testing.T) {
	gba := newGBA(t)
	gba.Write(0x004, 0x08)
	gba.Frame()
	test.ExpectEquality(t, gba.Read(0x202)&0x01, uint8(0x01))
	test.ExpectEquality(t, gba.Read(0x004)&0x01, uint8(0x00))

	// write one to clear
	gba.Write(0x202, 0x01)
	test.ExpectEquality(t, gba.Read(0x202)&0x01, uint8(0x00))
}

func TestReset(t *testing.T) {
	gba := newGBA(t)
	gba.Frame()
	gba.Poke(0x03000000, 0x12)
	gba.Reset()
	test.ExpectEquality(t, gba.Scheduler.Now(), uint64(0))
	test.ExpectEquality(t, gba.PPU.FrameNum(), 0)
	test.ExpectEquality(t, gba.Peek(0x03000000), uint8(0x00))

	// the PPU and APU events are pending again
	test.ExpectEquality(t, len(gba.Scheduler.Pending()), 2)
}

func TestLoad(t *testing.T) {
	gba := newGBA(t)
	dir := t.TempDir()

	test.ExpectEquality(t, gba.LoadGame(filepath.Join(dir, "missing.gba")), cartridgeloader.GameNotFound)
	test.ExpectEquality(t, gba.LoadBIOS(filepath.Join(dir, "missing.bin")), cartridgeloader.BIOSNotFound)

	game := filepath.Join(dir, "game.gba")
	test.DemandSuccess(t, os.WriteFile(game, []byte{0xde, 0xad, 0xbe, 0xef}, 0600))
	test.ExpectEquality(t, gba.LoadGame(game), cartridgeloader.Ok)
	test.ExpectEquality(t, gba.Peek(0x08000000), uint8(0xde))
	test.ExpectEquality(t, gba.Peek(0x0a000003), uint8(0xef))

	bios := filepath.Join(dir, "bios.bin")
	test.DemandSuccess(t, os.WriteFile(bios, []byte{1, 2, 3}, 0600))
	test.ExpectEquality(t, gba.LoadBIOS(bios), cartridgeloader.BIOSWrongSize)
}

func TestHaltControl(t *testing.T) {
	gba := newGBA(t)
	gba.Write(0x301, 0x00)
	h := gba.CPU.(*hardware.Halted)
	test.ExpectEquality(t, h.Halts, 1)
}

func TestRunForFrameCount(t *testing.T) {
	gba := newGBA(t)
	var count int
	err := gba.RunForFrameCount(10, func(frame int) (govern.State, error) {
		count = frame
		if frame == 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, count, 3)
	test.ExpectEquality(t, gba.PPU.FrameNum(), 3)

	err = gba.RunForFrameCount(1, func(frame int) (govern.State, error) {
		return govern.Paused, nil
	})
	test.ExpectFailure(t, err)
}
