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

// Package screenshot saves a copy of the PPU framebuffer to disk as a PNG
// file. The image can be scaled by any positive amount, with the
// nearest-neighbour filter so that the pixel edges stay sharp.
package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"golang.org/x/image/draw"
)

// Image converts a framebuffer of 32bit ARGB pixels into an RGBA image.
func Image(frame []uint32) (*image.RGBA, error) {
	if len(frame) != ppu.Width*ppu.Height {
		return nil, curated.Errorf("screenshot: frame has %d pixels", len(frame))
	}

	img := image.NewRGBA(image.Rect(0, 0, ppu.Width, ppu.Height))
	for i, px := range frame {
		img.SetRGBA(i%ppu.Width, i/ppu.Width, color.RGBA{
			R: uint8(px >> 16),
			G: uint8(px >> 8),
			B: uint8(px),
			A: 0xff,
		})
	}

	return img, nil
}

// Scale returns a copy of the image enlarged by the scaling factor.
func Scale(src image.Image, scale float64) *image.RGBA {
	b := src.Bounds()
	w := max(int(float64(b.Dx())*scale), 1)
	h := max(int(float64(b.Dy())*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return dst
}

// Save writes the frame to the named file as a PNG.
func Save(filename string, frame []uint32, scale float64) (rerr error) {
	if scale <= 0 {
		return curated.Errorf("screenshot: scale must be positive")
	}

	img, err := Image(frame)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("screenshot: %v", err)
		}
	}()

	if err := png.Encode(f, Scale(img, scale)); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
