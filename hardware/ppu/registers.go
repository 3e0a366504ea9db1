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

import "fmt"

// Indexes into the enable array of DisplayControl.
const (
	EnableBG0 = iota
	EnableBG1
	EnableBG2
	EnableBG3
	EnableOBJ
	EnableWin0
	EnableWin1
	EnableObjWin
)

// DisplayControl is the DISPCNT register.
type DisplayControl struct {
	Mode            int
	CGBMode         bool
	Frame           int
	HBlankOAMAccess bool
	OAMMapping1D    bool
	ForcedBlank     bool
	Enable          [8]bool
}

// Reset register to power-on value. The power-on value for DISPCNT has the
// forced blank bit set.
func (r *DisplayControl) Reset() {
	*r = DisplayControl{ForcedBlank: true}
}

func (r *DisplayControl) Read(offset int) uint8 {
	switch offset {
	case 0:
		return uint8(r.Mode) | bit(r.CGBMode, 3) | uint8(r.Frame)<<4 |
			bit(r.HBlankOAMAccess, 5) | bit(r.OAMMapping1D, 6) | bit(r.ForcedBlank, 7)
	case 1:
		var v uint8
		for i, e := range r.Enable {
			v |= bit(e, i)
		}
		return v
	}
	return 0
}

func (r *DisplayControl) Write(offset int, value uint8) {
	switch offset {
	case 0:
		r.Mode = int(value & 0x07)
		r.CGBMode = value&0x08 == 0x08
		r.Frame = int((value >> 4) & 0x01)
		r.HBlankOAMAccess = value&0x20 == 0x20
		r.OAMMapping1D = value&0x40 == 0x40
		r.ForcedBlank = value&0x80 == 0x80
	case 1:
		for i := range r.Enable {
			r.Enable[i] = value&(1<<i) != 0
		}
	}
}

// DisplayStatus is the DISPSTAT register. The flags are maintained by the PPU
// and cannot be written.
type DisplayStatus struct {
	VBlankFlag      bool
	HBlankFlag      bool
	VCountFlag      bool
	VBlankIRQEnable bool
	HBlankIRQEnable bool
	VCountIRQEnable bool
	VCountSetting   int
}

// Reset register to power-on value.
func (r *DisplayStatus) Reset() {
	*r = DisplayStatus{}
}

func (r *DisplayStatus) Read(offset int) uint8 {
	switch offset {
	case 0:
		return bit(r.VBlankFlag, 0) | bit(r.HBlankFlag, 1) | bit(r.VCountFlag, 2) |
			bit(r.VBlankIRQEnable, 3) | bit(r.HBlankIRQEnable, 4) | bit(r.VCountIRQEnable, 5)
	case 1:
		return uint8(r.VCountSetting)
	}
	return 0
}

func (r *DisplayStatus) Write(offset int, value uint8) {
	switch offset {
	case 0:
		r.VBlankIRQEnable = value&0x08 == 0x08
		r.HBlankIRQEnable = value&0x10 == 0x10
		r.VCountIRQEnable = value&0x20 == 0x20
	case 1:
		r.VCountSetting = int(value)
	}
}

// BackgroundControl is a BGxCNT register.
type BackgroundControl struct {
	id int

	Priority    int
	TileBlock   int
	Unused      int
	Mosaic      bool
	FullPalette bool
	MapBlock    int
	Wraparound  bool
	Size        int
}

// Reset register to power-on value.
func (r *BackgroundControl) Reset() {
	*r = BackgroundControl{id: r.id}
}

func (r *BackgroundControl) Read(offset int) uint8 {
	switch offset {
	case 0:
		return uint8(r.Priority) | uint8(r.TileBlock)<<2 | uint8(r.Unused)<<4 |
			bit(r.Mosaic, 6) | bit(r.FullPalette, 7)
	case 1:
		return uint8(r.MapBlock) | bit(r.Wraparound, 5) | uint8(r.Size)<<6
	}
	return 0
}

func (r *BackgroundControl) Write(offset int, value uint8) {
	switch offset {
	case 0:
		r.Priority = int(value & 0x03)
		r.TileBlock = int((value >> 2) & 0x03)
		r.Unused = int((value >> 4) & 0x03)
		r.Mosaic = value&0x40 == 0x40
		r.FullPalette = value&0x80 == 0x80
	case 1:
		r.MapBlock = int(value & 0x1f)

		// the wraparound bit only exists for the affine backgrounds
		if r.id >= 2 {
			r.Wraparound = value&0x20 == 0x20
		}
		r.Size = int(value >> 6)
	}
}

// ReferencePoint is one of the BGxX or BGxY registers of the affine
// backgrounds. The value is a signed 20.8 fixed point number. Current is the
// internal copy that advances as the frame is drawn.
type ReferencePoint struct {
	raw     uint32
	Initial int32
	Current int32
}

// Reset register to power-on value.
func (r *ReferencePoint) Reset() {
	*r = ReferencePoint{}
}

// Write a byte of the register. Writing reloads the internal copy.
func (r *ReferencePoint) Write(offset int, value uint8) {
	if offset < 0 || offset > 3 {
		return
	}
	shift := offset * 8
	r.raw = (r.raw &^ (0xff << shift)) | uint32(value)<<shift
	r.raw &= 0x0fffffff

	// sign extend from bit 27
	r.Initial = int32(r.raw<<4) >> 4
	r.Current = r.Initial
}

// Effect selected in the BLDCNT register.
type Effect int

// List of valid Effect values.
const (
	EffectNone Effect = iota
	EffectBlend
	EffectBrighten
	EffectDarken
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectBlend:
		return "blend"
	case EffectBrighten:
		return "brighten"
	case EffectDarken:
		return "darken"
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// BlendControl is the BLDCNT register. Targets are indexed by layer: the four
// backgrounds, objects and the backdrop.
type BlendControl struct {
	Effect  Effect
	Targets [2][6]bool
}

// Reset register to power-on value.
func (r *BlendControl) Reset() {
	*r = BlendControl{}
}

func (r *BlendControl) Read(offset int) uint8 {
	switch offset {
	case 0:
		return layerBits(r.Targets[0]) | uint8(r.Effect)<<6
	case 1:
		return layerBits(r.Targets[1])
	}
	return 0
}

func (r *BlendControl) Write(offset int, value uint8) {
	switch offset {
	case 0:
		r.Targets[0] = bitsLayer(value)
		r.Effect = Effect(value >> 6)
	case 1:
		r.Targets[1] = bitsLayer(value)
	}
}

// WindowRange is one of the WINxH or WINxV registers. Max is exclusive.
type WindowRange struct {
	Min int
	Max int
}

// Reset register to power-on value.
func (r *WindowRange) Reset() {
	*r = WindowRange{}
}

// Write a byte of the register. The low byte is the max value.
func (r *WindowRange) Write(offset int, value uint8) {
	switch offset {
	case 0:
		r.Max = int(value)
	case 1:
		r.Min = int(value)
	}
}

// Contains returns true if v is inside the range. If Min is greater than Max
// then the range wraps around.
func (r WindowRange) Contains(v int) bool {
	if r.Min <= r.Max {
		return v >= r.Min && v < r.Max
	}
	return v >= r.Min || v < r.Max
}

// WindowLayerSelect is the WININ or WINOUT register. Each half of the register
// selects the layers that are visible inside one window.
type WindowLayerSelect struct {
	Enable [2][6]bool
}

// Reset register to power-on value.
func (r *WindowLayerSelect) Reset() {
	*r = WindowLayerSelect{}
}

func (r *WindowLayerSelect) Read(offset int) uint8 {
	if offset < 0 || offset > 1 {
		return 0
	}
	return layerBits(r.Enable[offset])
}

func (r *WindowLayerSelect) Write(offset int, value uint8) {
	if offset < 0 || offset > 1 {
		return
	}
	r.Enable[offset] = bitsLayer(value)
}

// MosaicSize is the size of a mosaic block for backgrounds or objects.
type MosaicSize struct {
	SizeX int
	SizeY int

	// vertical position within the current mosaic block
	counterY int
}

// Mosaic is the MOSAIC register.
type Mosaic struct {
	BG  MosaicSize
	OBJ MosaicSize
}

// Reset register to power-on value.
func (r *Mosaic) Reset() {
	r.BG = MosaicSize{SizeX: 1, SizeY: 1}
	r.OBJ = MosaicSize{SizeX: 1, SizeY: 1}
}

func (r *Mosaic) Write(offset int, value uint8) {
	var m *MosaicSize
	switch offset {
	case 0:
		m = &r.BG
	case 1:
		m = &r.OBJ
	default:
		return
	}
	m.SizeX = int(value&0x0f) + 1
	m.SizeY = int(value>>4) + 1
}

// advance the vertical mosaic counter at the end of a line.
func (m *MosaicSize) advance() {
	m.counterY++
	if m.counterY >= m.SizeY {
		m.counterY = 0
	}
}

// Registers is the PPU's register block.
type Registers struct {
	DisplayControl DisplayControl
	DisplayStatus  DisplayStatus

	BGControl [4]BackgroundControl
	BGHOffset [4]uint16
	BGVOffset [4]uint16

	// affine parameters for BG2 and BG3
	BGX  [2]ReferencePoint
	BGY  [2]ReferencePoint
	BGPA [2]int16
	BGPB [2]int16
	BGPC [2]int16
	BGPD [2]int16

	WinH   [2]WindowRange
	WinV   [2]WindowRange
	WinIn  WindowLayerSelect
	WinOut WindowLayerSelect

	Mosaic       Mosaic
	BlendControl BlendControl

	EVA int
	EVB int
	EVY int
}

// Reset all registers to power-on values.
func (r *Registers) Reset() {
	r.DisplayControl.Reset()
	r.DisplayStatus.Reset()
	for i := range r.BGControl {
		r.BGControl[i].id = i
		r.BGControl[i].Reset()
	}
	r.BGHOffset = [4]uint16{}
	r.BGVOffset = [4]uint16{}
	for i := range 2 {
		r.BGX[i].Reset()
		r.BGY[i].Reset()
	}

	// the identity matrix
	r.BGPA = [2]int16{0x100, 0x100}
	r.BGPB = [2]int16{}
	r.BGPC = [2]int16{}
	r.BGPD = [2]int16{0x100, 0x100}

	r.WinH = [2]WindowRange{}
	r.WinV = [2]WindowRange{}
	r.WinIn.Reset()
	r.WinOut.Reset()
	r.Mosaic.Reset()
	r.BlendControl.Reset()
	r.EVA = 0
	r.EVB = 0
	r.EVY = 0
}

func bit(b bool, n int) uint8 {
	if b {
		return 1 << n
	}
	return 0
}

func layerBits(l [6]bool) uint8 {
	var v uint8
	for i, e := range l {
		v |= bit(e, i)
	}
	return v
}

func bitsLayer(v uint8) [6]bool {
	var l [6]bool
	for i := range l {
		l[i] = v&(1<<i) != 0
	}
	return l
}

// replace one byte of a 16bit value.
func writeHalf(v uint16, offset int, value uint8) uint16 {
	shift := offset * 8
	return (v &^ (0xff << shift)) | uint16(value)<<shift
}
