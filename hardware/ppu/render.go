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

// RenderScanline draws the current line into the output frame. It is called
// by the PPU at the end of the visible part of every line below 160 but can be
// called directly for testing.
func (ppu *PPU) RenderScanline() {
	line := ppu.vcount
	if line >= Height {
		return
	}

	r := &ppu.Regs

	if r.DisplayControl.ForcedBlank {
		out := ppu.output[line*Width : (line+1)*Width]
		for x := range out {
			out[x] = 0xffffffff
		}
		return
	}

	for i := range ppu.bg {
		for x := range Width {
			ppu.bg[i][x] = Transparent
		}
	}

	var enabled [4]bool
	mode := r.DisplayControl.Mode

	switch mode {
	case 0:
		for bg := range 4 {
			if r.DisplayControl.Enable[bg] {
				enabled[bg] = true
				ppu.renderText(bg, line)
			}
		}
	case 1:
		for bg := range 2 {
			if r.DisplayControl.Enable[bg] {
				enabled[bg] = true
				ppu.renderText(bg, line)
			}
		}
		if r.DisplayControl.Enable[EnableBG2] {
			enabled[2] = true
			ppu.renderAffine(2)
		}
	case 2:
		for bg := 2; bg < 4; bg++ {
			if r.DisplayControl.Enable[bg] {
				enabled[bg] = true
				ppu.renderAffine(bg)
			}
		}
	case 3, 4, 5:
		if r.DisplayControl.Enable[EnableBG2] {
			enabled[2] = true
			ppu.renderBitmap(mode)
		}
	}

	ppu.renderObjects(line)
	ppu.prepareWindows(line)
	ppu.composite(line, enabled)
}

// mosaicLine returns the line to use for a background with the mosaic effect
// applied.
func (ppu *PPU) mosaicLine(bg int, line int) int {
	if ppu.Regs.BGControl[bg].Mosaic {
		return line - ppu.Regs.Mosaic.BG.counterY
	}
	return line
}

// applyMosaic repeats pixels horizontally across the mosaic blocks.
func (ppu *PPU) applyMosaic(bg int) {
	size := ppu.Regs.Mosaic.BG.SizeX
	if !ppu.Regs.BGControl[bg].Mosaic || size <= 1 {
		return
	}
	buf := &ppu.bg[bg]
	for x := range Width {
		buf[x] = buf[x-x%size]
	}
}

// text backgrounds sizes in pixels, indexed by the size field of BGxCNT.
var textSizes = [4][2]int{
	{256, 256},
	{512, 256},
	{256, 512},
	{512, 512},
}

func (ppu *PPU) renderText(bg int, line int) {
	cnt := &ppu.Regs.BGControl[bg]
	w, h := textSizes[cnt.Size][0], textSizes[cnt.Size][1]

	charBase := cnt.TileBlock * 0x4000
	mapBase := cnt.MapBlock * 0x800

	y := (ppu.mosaicLine(bg, line) + int(ppu.Regs.BGVOffset[bg])) & (h - 1)
	hofs := int(ppu.Regs.BGHOffset[bg])

	for x := range Width {
		xx := (x + hofs) & (w - 1)

		// screen block. each block is 32x32 tiles
		sb := 0
		switch cnt.Size {
		case 1:
			sb = xx / 256
		case 2:
			sb = y / 256
		case 3:
			sb = (y/256)*2 + xx/256
		}

		entryAddr := mapBase + sb*0x800 + (((y/8)%32)*32+(xx/8)%32)*2
		if entryAddr+1 >= len(ppu.VRAM) {
			continue
		}
		entry := half(ppu.VRAM, entryAddr)

		tile := int(entry & 0x3ff)
		px := xx & 7
		py := y & 7
		if entry&0x0400 != 0 {
			px = 7 - px
		}
		if entry&0x0800 != 0 {
			py = 7 - py
		}

		var idx int
		if cnt.FullPalette {
			addr := charBase + tile*64 + py*8 + px
			if addr >= objVRAMOrigin {
				continue
			}
			idx = int(ppu.VRAM[addr])
		} else {
			addr := charBase + tile*32 + py*4 + px/2
			if addr >= objVRAMOrigin {
				continue
			}
			idx = int(ppu.VRAM[addr]>>((px&1)*4)) & 0x0f
			if idx != 0 {
				idx += int(entry>>12) * 16
			}
		}

		if idx != 0 {
			ppu.bg[bg][x] = ppu.palette(idx)
		}
	}

	ppu.applyMosaic(bg)
}

// affineCoords returns the texture coordinates in 20.8 fixed point for x on
// the current line of an affine background. With vertical mosaic the
// reference point is taken from the first line of the mosaic block.
func (ppu *PPU) affineCoords(bg int, x int) (int32, int32) {
	i := bg - 2
	r := &ppu.Regs
	ox, oy := r.BGX[i].Current, r.BGY[i].Current
	if r.BGControl[bg].Mosaic {
		n := int32(r.Mosaic.BG.counterY)
		ox -= int32(r.BGPB[i]) * n
		oy -= int32(r.BGPD[i]) * n
	}
	tx := ox + int32(r.BGPA[i])*int32(x)
	ty := oy + int32(r.BGPC[i])*int32(x)
	return tx, ty
}

func (ppu *PPU) renderAffine(bg int) {
	cnt := &ppu.Regs.BGControl[bg]
	size := 128 << cnt.Size
	tiles := size / 8

	charBase := cnt.TileBlock * 0x4000
	mapBase := cnt.MapBlock * 0x800

	for x := range Width {
		fx, fy := ppu.affineCoords(bg, x)
		tx := int(fx >> 8)
		ty := int(fy >> 8)

		if cnt.Wraparound {
			tx &= size - 1
			ty &= size - 1
		} else if tx < 0 || ty < 0 || tx >= size || ty >= size {
			continue
		}

		mapAddr := mapBase + (ty/8)*tiles + tx/8
		if mapAddr >= len(ppu.VRAM) {
			continue
		}
		tile := int(ppu.VRAM[mapAddr])

		addr := charBase + tile*64 + (ty&7)*8 + (tx&7)
		if addr >= objVRAMOrigin {
			continue
		}
		if idx := int(ppu.VRAM[addr]); idx != 0 {
			ppu.bg[bg][x] = ppu.palette(idx)
		}
	}

	ppu.applyMosaic(bg)
}

// size of the frame for the bitmap modes.
var bitmapSizes = [6][2]int{
	3: {240, 160},
	4: {240, 160},
	5: {160, 128},
}

// offset of the second frame in the paletted and small bitmap modes.
const bitmapFrameOffset = 0xa000

func (ppu *PPU) renderBitmap(mode int) {
	w, h := bitmapSizes[mode][0], bitmapSizes[mode][1]

	base := 0
	if mode != 3 && ppu.Regs.DisplayControl.Frame == 1 {
		base = bitmapFrameOffset
	}

	for x := range Width {
		fx, fy := ppu.affineCoords(2, x)
		tx := int(fx >> 8)
		ty := int(fy >> 8)
		if tx < 0 || ty < 0 || tx >= w || ty >= h {
			continue
		}

		switch mode {
		case 4:
			if idx := int(ppu.VRAM[base+ty*w+tx]); idx != 0 {
				ppu.bg[2][x] = ppu.palette(idx)
			}
		default:
			ppu.bg[2][x] = half(ppu.VRAM, base+(ty*w+tx)*2) & 0x7fff
		}
	}

	ppu.applyMosaic(2)
}
