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

package apu

import (
	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/logger"
)

// ReadSoundControl reads a byte of SOUNDCNT_L, SOUNDCNT_H or SOUNDCNT_X. The
// offset is from SOUNDCNT_L.
func (apu *APU) ReadSoundControl(offset int) uint8 {
	a := &apu.Channels[0]
	b := &apu.Channels[1]

	switch offset {
	case 0, 1:
		return apu.soundcntL[offset]
	case 2:
		return uint8(apu.PSGVolume) | bit(a.FullVolume, 2) | bit(b.FullVolume, 3)
	case 3:
		return bit(a.Right, 0) | bit(a.Left, 1) | uint8(a.Timer)<<2 |
			bit(b.Right, 4) | bit(b.Left, 5) | uint8(b.Timer)<<6
	case 4:
		return bit(apu.MasterEnable, 7)
	}
	return 0
}

// WriteSoundControl writes a byte of SOUNDCNT_L, SOUNDCNT_H or SOUNDCNT_X.
func (apu *APU) WriteSoundControl(offset int, value uint8) {
	a := &apu.Channels[0]
	b := &apu.Channels[1]

	switch offset {
	case 0, 1:
		apu.soundcntL[offset] = value
	case 2:
		apu.PSGVolume = int(value & 0x03)
		a.FullVolume = value&0x04 == 0x04
		b.FullVolume = value&0x08 == 0x08
	case 3:
		a.Right = value&0x01 == 0x01
		a.Left = value&0x02 == 0x02
		a.Timer = int(value>>2) & 0x01
		if value&0x08 == 0x08 {
			a.FIFO.Reset()
		}
		b.Right = value&0x10 == 0x10
		b.Left = value&0x20 == 0x20
		b.Timer = int(value>>6) & 0x01
		if value&0x80 == 0x80 {
			b.FIFO.Reset()
		}
	case 4:
		enable := value&0x80 == 0x80
		if enable != apu.MasterEnable {
			logger.Logf(apu.log, "apu", "master enable: %v", enable)
		}
		apu.MasterEnable = enable
	}
}

// ReadBias reads a byte of SOUNDBIAS.
func (apu *APU) ReadBias(offset int) uint8 {
	switch offset {
	case 0:
		return uint8(apu.Bias)
	case 1:
		return uint8(apu.Bias>>8) | uint8(apu.Resolution)<<6
	}
	return 0
}

// WriteBias writes a byte of SOUNDBIAS.
func (apu *APU) WriteBias(offset int, value uint8) {
	switch offset {
	case 0:
		apu.Bias = (apu.Bias & 0x0300) | uint16(value&0xfe)
	case 1:
		apu.Bias = (apu.Bias & 0x00fe) | uint16(value&0x03)<<8
		apu.Resolution = int(value >> 6)
	}
}

func bit(b bool, n int) uint8 {
	if b {
		return 1 << n
	}
	return 0
}

// MapRegisters adds the APU registers to the I/O map.
func (apu *APU) MapRegisters(m *mmio.Map) error {
	regs := []struct {
		name string
		addr uint32
		size int
		reg  mmio.Register
	}{
		{"SOUND", mmio.SOUND1CNT, mmio.SOUNDCNTL - mmio.SOUND1CNT, mmio.Funcs{
			R: func(offset int) uint8 { return apu.psg[offset] },
			W: func(offset int, value uint8) { apu.psg[offset] = value },
		}},
		{"SOUNDCNT", mmio.SOUNDCNTL, 8, mmio.Funcs{R: apu.ReadSoundControl, W: apu.WriteSoundControl}},
		{"SOUNDBIAS", mmio.SOUNDBIAS, 4, mmio.Funcs{R: apu.ReadBias, W: apu.WriteBias}},
		{"WAVERAM", mmio.WAVERAM, len(apu.waveRAM), mmio.Funcs{
			R: func(offset int) uint8 { return apu.waveRAM[offset] },
			W: func(offset int, value uint8) { apu.waveRAM[offset] = value },
		}},
		{"FIFOA", mmio.FIFOA, 4, mmio.Funcs{
			W: func(_ int, value uint8) { apu.WriteFIFO(0, value) },
		}},
		{"FIFOB", mmio.FIFOB, 4, mmio.Funcs{
			W: func(_ int, value uint8) { apu.WriteFIFO(1, value) },
		}},
	}

	for _, r := range regs {
		if err := m.Add(r.name, r.addr, r.size, r.reg); err != nil {
			return err
		}
	}

	return nil
}
