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

package script

import (
	"fmt"
	"io"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/digest"
	"github.com/gopheradvance/gopheradvance/hardware"
	"github.com/gopheradvance/gopheradvance/logger"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua state bound to a console.
type Script struct {
	gba    *hardware.GBA
	output io.Writer
	dig    *digest.Video
	L      *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// The output of the Lua print() function is sent to output.
func NewScript(gba *hardware.GBA, output io.Writer) *Script {
	if output == nil {
		output = io.Discard
	}

	scr := &Script{
		gba:    gba,
		output: output,
		dig:    digest.NewVideo(),
		L:      lua.NewState(),
	}

	gba.AddFrameRenderer(scr.dig)

	funcs := map[string]lua.LGFunction{
		"peek":     scr.peek,
		"poke":     scr.poke,
		"read_io":  scr.readIO,
		"write_io": scr.writeIO,
		"run":      scr.run,
		"frame":    scr.frame,
		"scanline": scr.scanline,
		"digest":   scr.digest,
		"log":      scr.log,
		"print":    scr.print,
	}
	for name, fn := range funcs {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunString runs Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(filename string) error {
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// Digest returns the video digest of every frame since the script was
// created.
func (scr *Script) Digest() string {
	return scr.dig.Hash()
}

func checkAddress(L *lua.LState, n int) uint32 {
	return uint32(L.CheckInt64(n))
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.gba.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) readIO(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.Read(checkAddress(L, 1))))
	return 1
}

func (scr *Script) writeIO(L *lua.LState) int {
	scr.gba.Write(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	cycles := L.CheckInt(1)
	if cycles < 0 {
		L.ArgError(1, "negative cycle count")
	}
	scr.gba.Run(cycles)
	return 0
}

func (scr *Script) frame(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "negative frame count")
	}
	if err := scr.gba.RunForFrameCount(n, nil); err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(scr.gba.PPU.FrameNum()))
	return 1
}

func (scr *Script) scanline(L *lua.LState) int {
	L.Push(lua.LNumber(scr.gba.PPU.VCount()))
	return 1
}

func (scr *Script) digest(L *lua.LState) int {
	L.Push(lua.LString(scr.dig.Hash()))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.gba.Prefs, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	for i := 1; i <= top; i++ {
		if i > 1 {
			fmt.Fprint(scr.output, "\t")
		}
		fmt.Fprint(scr.output, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output)
	return 0
}
