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

// Layer identifiers as used by the blend and window registers.
const (
	LayerBG0 = iota
	LayerBG1
	LayerBG2
	LayerBG3
	LayerOBJ
	LayerBD
)

// index of the effects bit in the window layer selection.
const windowEffects = 5

// blendTable gives the result of blending two colour components with two
// coefficients. Coefficients are clamped to 16.
var blendTable [17][17][32][32]uint8

func init() {
	for eva := range 17 {
		for evb := range 17 {
			for a := range 32 {
				for b := range 32 {
					blendTable[eva][evb][a][b] = uint8(min(31, (a*eva+b*evb)>>4))
				}
			}
		}
	}
}

func blend(a, b uint16, eva, evb int) uint16 {
	eva = min(eva, 16)
	evb = min(evb, 16)
	r := blendTable[eva][evb][a&0x1f][b&0x1f]
	g := blendTable[eva][evb][(a>>5)&0x1f][(b>>5)&0x1f]
	bl := blendTable[eva][evb][(a>>10)&0x1f][(b>>10)&0x1f]
	return uint16(r) | uint16(g)<<5 | uint16(bl)<<10
}

func brighten(c uint16, evy int) uint16 {
	evy = min(evy, 16)
	var out uint16
	for shift := 0; shift < 15; shift += 5 {
		v := int((c >> shift) & 0x1f)
		v += ((31 - v) * evy) >> 4
		out |= uint16(v) << shift
	}
	return out
}

func darken(c uint16, evy int) uint16 {
	evy = min(evy, 16)
	var out uint16
	for shift := 0; shift < 15; shift += 5 {
		v := int((c >> shift) & 0x1f)
		v -= (v * evy) >> 4
		out |= uint16(v) << shift
	}
	return out
}

// composite the line buffers into the output frame.
func (ppu *PPU) composite(line int, bgEnabled [4]bool) {
	r := &ppu.Regs
	out := ppu.output[line*Width : (line+1)*Width]
	backdrop := ppu.palette(0)

	windowing := r.DisplayControl.Enable[EnableWin0] ||
		r.DisplayControl.Enable[EnableWin1] ||
		r.DisplayControl.Enable[EnableObjWin]

	// background drawing order. stable sort by priority so that lower
	// numbered backgrounds are in front of others with the same priority
	var order [4]int
	n := 0
	for p := range 4 {
		for bg := range 4 {
			if bgEnabled[bg] && r.BGControl[bg].Priority == p {
				order[n] = bg
				n++
			}
		}
	}

	for x := range Width {
		enabled := [6]bool{true, true, true, true, true, true}
		if windowing {
			enabled = ppu.windowLayers(x)
		}

		var layers [2]int
		var colors [2]uint16
		found := 0

		obj := ppu.obj[x]
		objVisible := enabled[LayerOBJ] && obj.color != Transparent
		objDone := !objVisible

		for i := 0; i < n && found < 2; i++ {
			bg := order[i]
			prio := r.BGControl[bg].Priority

			// objects are in front of backgrounds with the same priority
			if !objDone && obj.priority <= prio {
				layers[found] = LayerOBJ
				colors[found] = obj.color
				found++
				objDone = true
				if found == 2 {
					break
				}
			}

			c := ppu.bg[bg][x]
			if enabled[bg] && c != Transparent {
				layers[found] = bg
				colors[found] = c
				found++
			}
		}

		if found < 2 && !objDone {
			layers[found] = LayerOBJ
			colors[found] = obj.color
			found++
		}

		for found < 2 {
			layers[found] = LayerBD
			colors[found] = backdrop
			found++
		}

		c := colors[0]
		targets := &r.BlendControl.Targets

		if layers[0] == LayerOBJ && obj.alpha && targets[1][layers[1]] {
			// semi-transparent objects always blend with a second target
			c = blend(colors[0], colors[1], r.EVA, r.EVB)
		} else if enabled[windowEffects] && targets[0][layers[0]] {
			switch r.BlendControl.Effect {
			case EffectBlend:
				if targets[1][layers[1]] {
					c = blend(colors[0], colors[1], r.EVA, r.EVB)
				}
			case EffectBrighten:
				c = brighten(c, r.EVY)
			case EffectDarken:
				c = darken(c, r.EVY)
			}
		}

		out[x] = ConvertColor(c)
	}
}
