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

package hardware

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/cartridgeloader"
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/apu"
	"github.com/gopheradvance/gopheradvance/hardware/dma"
	"github.com/gopheradvance/gopheradvance/hardware/interrupt"
	"github.com/gopheradvance/gopheradvance/hardware/memory"
	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"github.com/gopheradvance/gopheradvance/hardware/preferences"
	"github.com/gopheradvance/gopheradvance/hardware/scheduler"
	"github.com/gopheradvance/gopheradvance/hardware/timer"
	"github.com/gopheradvance/gopheradvance/logger"
)

// GBA is the root of the emulation.
type GBA struct {
	Prefs *preferences.Preferences

	Scheduler *scheduler.Scheduler
	IRQ       *interrupt.Controller
	IO        *mmio.Map
	PPU       *ppu.PPU
	APU       *apu.APU
	Timers    *timer.Timers
	Mem       *memory.Memory
	DMA       *dma.DMA

	CPU Processor
}

// dmaLink forwards DMA requests from the PPU and APU to the DMA controller.
type dmaLink struct {
	dma *dma.DMA
}

func (l *dmaLink) Request(occasion dma.Occasion) {
	l.dma.Request(occasion)
}

func (l *dmaLink) StopVideoXferDMA() {
	l.dma.StopVideoXferDMA()
}

// NewGBA creates a new console and everything associated with the hardware.
// The prefs argument can be nil, in which case default preferences are used.
func NewGBA(prefs *preferences.Preferences) (*GBA, error) {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	gba := &GBA{Prefs: prefs}

	gba.Scheduler = scheduler.NewScheduler(prefs)
	gba.IRQ = interrupt.NewController(prefs)
	gba.IO = mmio.NewMap(prefs)

	link := &dmaLink{}

	gba.PPU = ppu.NewPPU(prefs, gba.Scheduler, gba.IRQ, link)
	gba.PPU.HBlankDMAInVBlank = prefs.HBlankDMAInVBlank.Get().(bool)

	gba.APU = apu.NewAPU(prefs, gba.Scheduler, link,
		prefs.SampleRate.Get().(int), prefs.AudioBufferLength.Get().(int))

	gba.Timers = timer.NewTimers(prefs, gba.Scheduler, gba.IRQ, gba.APU)

	gba.Mem = memory.NewMemory(prefs, gba.Scheduler, gba.IO, memory.Video{
		PRAM: gba.PPU.PRAM,
		VRAM: gba.PPU.VRAM,
		OAM:  gba.PPU.OAM,
	})

	gba.DMA = dma.NewDMA(prefs, gba.Mem, gba.Scheduler, gba.IRQ)
	link.dma = gba.DMA

	gba.CPU = NewHalted(gba.Scheduler)

	gba.Scheduler.Register(scheduler.TagPPU, gba.PPU)
	gba.Scheduler.Register(scheduler.TagTimer, gba.Timers)
	gba.Scheduler.Register(scheduler.TagAPU, gba.APU)

	mappers := []interface{ MapRegisters(*mmio.Map) error }{
		gba.PPU, gba.APU, gba.DMA, gba.Timers, gba.IRQ, gba.Mem,
	}
	for _, m := range mappers {
		if err := m.MapRegisters(gba.IO); err != nil {
			return nil, curated.Errorf("hardware: %v", err)
		}
	}

	if err := gba.IO.Add("HALTCNT", mmio.HALTCNT, 1, mmio.Funcs{W: gba.writeHaltControl}); err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	return gba, nil
}

func (gba *GBA) writeHaltControl(_ int, value uint8) {
	if h, ok := gba.CPU.(Halter); ok {
		h.Halt(value&0x80 == 0x80)
	}
}

// Reset the console. Every component is returned to its power-on state. The
// BIOS, game and save memory are kept.
func (gba *GBA) Reset() {
	gba.Scheduler.Reset()
	gba.IRQ.Reset()
	gba.PPU.Reset()
	gba.APU.Reset()
	gba.Timers.Reset()
	gba.Mem.Reset()
	gba.DMA.Reset()
	logger.Log(gba.Prefs, "hardware", "reset")
}

// LoadBIOS loads the BIOS image from the file and resets the console.
func (gba *GBA) LoadBIOS(filename string) cartridgeloader.Status {
	data, status := cartridgeloader.LoadBIOS(filename)
	if status != cartridgeloader.Ok {
		logger.Logf(gba.Prefs, "hardware", "%s: %s", filename, status)
		return status
	}
	gba.Mem.LoadBIOS(data)
	gba.Reset()
	return status
}

// LoadGame loads the game image from the file and resets the console.
func (gba *GBA) LoadGame(filename string) cartridgeloader.Status {
	data, status := cartridgeloader.LoadGame(filename)
	if status != cartridgeloader.Ok {
		logger.Logf(gba.Prefs, "hardware", "%s: %s", filename, status)
		return status
	}
	gba.Mem.LoadROM(data)
	gba.Reset()
	return status
}

// AddFrameRenderer attaches a renderer to the PPU.
func (gba *GBA) AddFrameRenderer(r ppu.FrameRenderer) {
	gba.PPU.AddFrameRenderer(r)
}

// AddAudioMixer attaches a mixer to the APU.
func (gba *GBA) AddAudioMixer(m apu.AudioMixer) {
	gba.APU.AddAudioMixer(m)
}

// Read a byte from the I/O register region. The address can be given as an
// offset from the start of the region or as an absolute address.
func (gba *GBA) Read(address uint32) uint8 {
	return gba.IO.Read(ioAddress(address))
}

// Write a byte to the I/O register region. The address can be given as an
// offset from the start of the region or as an absolute address.
func (gba *GBA) Write(address uint32, value uint8) {
	gba.IO.Write(ioAddress(address), value)
}

func ioAddress(address uint32) uint32 {
	if address < mmio.Base {
		return address + mmio.Base
	}
	return address
}

// Peek reads a byte from anywhere on the bus without cost.
func (gba *GBA) Peek(address uint32) uint8 {
	return gba.Mem.Peek(address)
}

// Poke writes a byte to anywhere on the bus without cost.
func (gba *GBA) Poke(address uint32, value uint8) {
	gba.Mem.Poke(address, value)
}

func (gba *GBA) String() string {
	return fmt.Sprintf("cycle=%d %s", gba.Scheduler.Now(), gba.PPU)
}
