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

// origin of object tiles in VRAM.
const objVRAMOrigin = 0x10000

// in the bitmap modes the lower half of the object tiles are used by the frame
// buffer.
const objBitmapTileMin = 512

// objectPixel is an entry in the object line buffer.
type objectPixel struct {
	color    uint16
	priority int

	// semi-transparent object
	alpha bool

	// pixel is part of the object window
	window bool
}

// object graphics modes.
const (
	objNormal = iota
	objSemiTransparent
	objWindow
)

// object dimensions indexed by shape and size.
var objectSizes = [3][4][2]int{
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// object is a decoded OAM entry.
type object struct {
	y, x          int
	affine        bool
	doubleSize    bool
	disabled      bool
	mode          int
	mosaic        bool
	fullPalette   bool
	width, height int
	param         int
	hflip, vflip  bool
	tile          int
	priority      int
	palette       int
}

func (ppu *PPU) decodeObject(n int) (object, bool) {
	attr0 := half(ppu.OAM, n*8)
	attr1 := half(ppu.OAM, n*8+2)
	attr2 := half(ppu.OAM, n*8+4)

	var o object
	o.affine = attr0&0x0100 != 0
	if o.affine {
		o.doubleSize = attr0&0x0200 != 0
	} else if attr0&0x0200 != 0 {
		return o, false
	}

	shape := int(attr0>>14) & 0x03
	if shape == 3 {
		return o, false
	}

	o.y = int(attr0 & 0xff)
	o.mode = int(attr0>>10) & 0x03
	o.mosaic = attr0&0x1000 != 0
	o.fullPalette = attr0&0x2000 != 0

	o.x = int(attr1 & 0x1ff)
	if o.x >= 256 {
		o.x -= 512
	}
	if o.affine {
		o.param = int(attr1>>9) & 0x1f
	} else {
		o.hflip = attr1&0x1000 != 0
		o.vflip = attr1&0x2000 != 0
	}
	size := int(attr1>>14) & 0x03
	o.width = objectSizes[shape][size][0]
	o.height = objectSizes[shape][size][1]

	o.tile = int(attr2 & 0x3ff)
	o.priority = int(attr2>>10) & 0x03
	o.palette = int(attr2>>12) & 0x0f

	return o, true
}

// affine parameters for an object. Each parameter group is spread over four
// OAM entries.
func (ppu *PPU) objectParameters(param int) (pa, pb, pc, pd int) {
	base := param * 32
	pa = int(int16(half(ppu.OAM, base+6)))
	pb = int(int16(half(ppu.OAM, base+14)))
	pc = int(int16(half(ppu.OAM, base+22)))
	pd = int(int16(half(ppu.OAM, base+30)))
	return pa, pb, pc, pd
}

func (ppu *PPU) renderObjects(line int) {
	for x := range ppu.obj {
		ppu.obj[x] = objectPixel{color: Transparent, priority: 4}
	}

	r := &ppu.Regs
	if !r.DisplayControl.Enable[EnableOBJ] {
		return
	}

	bitmap := r.DisplayControl.Mode >= 3

	for n := range 128 {
		o, ok := ppu.decodeObject(n)
		if !ok {
			continue
		}
		if bitmap && o.tile < objBitmapTileMin {
			continue
		}

		boundW, boundH := o.width, o.height
		if o.doubleSize {
			boundW *= 2
			boundH *= 2
		}

		y := o.y
		if y+boundH > 256 {
			y -= 256
		}

		objLine := line
		if o.mosaic {
			objLine -= r.Mosaic.OBJ.counterY
		}

		dy := objLine - y
		if dy < 0 || dy >= boundH {
			continue
		}

		var pa, pb, pc, pd int
		if o.affine {
			pa, pb, pc, pd = ppu.objectParameters(o.param)
		}

		// tile row stride in units of 32 bytes
		stride := 32
		if r.DisplayControl.OAMMapping1D {
			stride = o.width / 8
			if o.fullPalette {
				stride *= 2
			}
		}

		for i := range boundW {
			x := o.x + i
			if x < 0 || x >= Width {
				continue
			}

			sx := i
			if o.mosaic && r.Mosaic.OBJ.SizeX > 1 {
				sx -= x % r.Mosaic.OBJ.SizeX
				if sx < 0 {
					continue
				}
			}

			var tx, ty int
			if o.affine {
				cx := sx - boundW/2
				cy := dy - boundH/2
				tx = (pa*cx+pb*cy)>>8 + o.width/2
				ty = (pc*cx+pd*cy)>>8 + o.height/2
				if tx < 0 || ty < 0 || tx >= o.width || ty >= o.height {
					continue
				}
			} else {
				tx, ty = sx, dy
				if o.hflip {
					tx = o.width - 1 - tx
				}
				if o.vflip {
					ty = o.height - 1 - ty
				}
			}

			var idx int
			if o.fullPalette {
				tile := (o.tile + (ty/8)*stride + (tx/8)*2) & 0x3ff
				addr := objVRAMOrigin + tile*32 + (ty&7)*8 + (tx&7)
				if addr >= len(ppu.VRAM) {
					continue
				}
				idx = int(ppu.VRAM[addr])
			} else {
				tile := (o.tile + (ty/8)*stride + tx/8) & 0x3ff
				addr := objVRAMOrigin + tile*32 + (ty&7)*4 + (tx&7)/2
				if addr >= len(ppu.VRAM) {
					continue
				}
				idx = int(ppu.VRAM[addr]>>((tx&1)*4)) & 0x0f
				if idx != 0 {
					idx += o.palette * 16
				}
			}

			if idx == 0 {
				continue
			}

			px := &ppu.obj[x]
			if o.mode == objWindow {
				px.window = true
				continue
			}

			// the first object drawn at a pixel wins unless a later object has
			// a better priority
			if px.color == Transparent || o.priority < px.priority {
				px.color = ppu.palette(256 + idx)
				px.priority = o.priority
				px.alpha = o.mode == objSemiTransparent
			}
		}
	}
}
