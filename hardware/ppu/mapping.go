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

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/mmio"
)

// MapRegisters adds the PPU registers to the I/O map.
func (ppu *PPU) MapRegisters(m *mmio.Map) error {
	r := &ppu.Regs

	type reg struct {
		name string
		addr uint32
		size int
		reg  mmio.Register
	}

	regs := []reg{
		{"DISPCNT", mmio.DISPCNT, 2, &r.DisplayControl},
		{"DISPSTAT", mmio.DISPSTAT, 2, mmio.Funcs{
			R: r.DisplayStatus.Read,
			W: func(offset int, value uint8) {
				r.DisplayStatus.Write(offset, value)
				ppu.checkVCount()
			},
		}},
		{"VCOUNT", mmio.VCOUNT, 2, mmio.Funcs{
			R: func(offset int) uint8 {
				if offset == 0 {
					return uint8(ppu.vcount)
				}
				return 0
			},
		}},
		{"WIN0H", mmio.WIN0H, 2, mmio.Funcs{W: r.WinH[0].Write}},
		{"WIN1H", mmio.WIN1H, 2, mmio.Funcs{W: r.WinH[1].Write}},
		{"WIN0V", mmio.WIN0V, 2, mmio.Funcs{W: r.WinV[0].Write}},
		{"WIN1V", mmio.WIN1V, 2, mmio.Funcs{W: r.WinV[1].Write}},
		{"WININ", mmio.WININ, 2, &r.WinIn},
		{"WINOUT", mmio.WINOUT, 2, &r.WinOut},
		{"MOSAIC", mmio.MOSAIC, 2, mmio.Funcs{W: r.Mosaic.Write}},
		{"BLDCNT", mmio.BLDCNT, 2, &r.BlendControl},
		{"BLDALPHA", mmio.BLDALPHA, 2, mmio.Funcs{
			R: func(offset int) uint8 {
				switch offset {
				case 0:
					return uint8(r.EVA)
				case 1:
					return uint8(r.EVB)
				}
				return 0
			},
			W: func(offset int, value uint8) {
				switch offset {
				case 0:
					r.EVA = int(value & 0x1f)
				case 1:
					r.EVB = int(value & 0x1f)
				}
			},
		}},
		{"BLDY", mmio.BLDY, 2, mmio.Funcs{
			W: func(offset int, value uint8) {
				if offset == 0 {
					r.EVY = int(value & 0x1f)
				}
			},
		}},
	}

	for i := range 4 {
		regs = append(regs,
			reg{fmt.Sprintf("BG%dCNT", i), uint32(mmio.BG0CNT + i*mmio.BGCNTStride), 2, &r.BGControl[i]},
			reg{fmt.Sprintf("BG%dHOFS", i), uint32(mmio.BG0HOFS + i*mmio.BGOFSStride), 2, mmio.Funcs{
				W: func(offset int, value uint8) {
					r.BGHOffset[i] = writeHalf(r.BGHOffset[i], offset, value) & 0x1ff
				},
			}},
			reg{fmt.Sprintf("BG%dVOFS", i), uint32(mmio.BG0VOFS + i*mmio.BGOFSStride), 2, mmio.Funcs{
				W: func(offset int, value uint8) {
					r.BGVOffset[i] = writeHalf(r.BGVOffset[i], offset, value) & 0x1ff
				},
			}},
		)
	}

	for i := range 2 {
		base := uint32(i * mmio.BGAffStride)
		id := i + 2
		regs = append(regs,
			reg{fmt.Sprintf("BG%dPA", id), mmio.BG2PA + base, 2, affineParameter(&r.BGPA[i])},
			reg{fmt.Sprintf("BG%dPB", id), mmio.BG2PB + base, 2, affineParameter(&r.BGPB[i])},
			reg{fmt.Sprintf("BG%dPC", id), mmio.BG2PC + base, 2, affineParameter(&r.BGPC[i])},
			reg{fmt.Sprintf("BG%dPD", id), mmio.BG2PD + base, 2, affineParameter(&r.BGPD[i])},
			reg{fmt.Sprintf("BG%dX", id), mmio.BG2X + base, 4, mmio.Funcs{W: r.BGX[i].Write}},
			reg{fmt.Sprintf("BG%dY", id), mmio.BG2Y + base, 4, mmio.Funcs{W: r.BGY[i].Write}},
		)
	}

	for _, g := range regs {
		if err := m.Add(g.name, g.addr, g.size, g.reg); err != nil {
			return err
		}
	}

	return nil
}

// affineParameter is a write-only register for one of the affine matrix
// values of a background.
func affineParameter(p *int16) mmio.Register {
	return mmio.Funcs{
		W: func(offset int, value uint8) {
			*p = int16(writeHalf(uint16(*p), offset, value))
		},
	}
}
