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

// Package sdlplay presents the PPU framebuffer in an SDL window. It is a
// simple implementation of the ppu.FrameRenderer interface with no debugging
// features.
//
// SDL must only be called from the main thread. Callers should lock the main
// goroutine to its thread and call Service() from that thread, after each
// frame has been emulated.
package sdlplay

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/hardware/ppu"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is an SDL window showing the most recent frame.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// NewFrame() can be called by a goroutine other than the main thread so
	// the pixels are guarded
	crit   sync.Mutex
	pixels []byte
	dirty  bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The window is scaled by the scale value.
func NewSdlPlay(title string, scale float64) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels: make([]byte, ppu.Width*ppu.Height*pixelDepth),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	w := int32(float64(ppu.Width) * max(scale, 1))
	h := int32(float64(ppu.Height) * max(scale, 1))

	scr.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING), ppu.Width, ppu.Height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "window %dx%d", w, h)

	return scr, nil
}

// Destroy the window and release SDL.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// NewFrame implements the ppu.FrameRenderer interface.
func (scr *SdlPlay) NewFrame(frame []uint32) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	Pack(scr.pixels, frame)
	scr.dirty = true
	return nil
}

// Pack copies 32bit ARGB pixels into a byte slice in the order expected by an
// ARGB8888 texture.
func Pack(dst []byte, frame []uint32) {
	n := min(len(dst)/pixelDepth, len(frame))
	for i := range n {
		binary.LittleEndian.PutUint32(dst[i*pixelDepth:], frame[i])
	}
}

// Service polls for SDL events and presents the most recent frame. Returns
// false if the window has been closed or escape has been pressed.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() (bool, error) {
	running := true

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				running = false
			}
		}
	}

	scr.crit.Lock()
	dirty := scr.dirty
	if dirty {
		err := scr.texture.Update(nil, unsafe.Pointer(&scr.pixels[0]), ppu.Width*pixelDepth)
		if err != nil {
			scr.crit.Unlock()
			return running, curated.Errorf("sdlplay: %v", err)
		}
		scr.dirty = false
	}
	scr.crit.Unlock()

	if dirty {
		if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
			return running, curated.Errorf("sdlplay: %v", err)
		}
		scr.renderer.Present()
	}

	return running, nil
}
