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

package interrupt

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/logger"
)

// Source of an interrupt.
type Source int

// List of valid Source values. Timer and DMA sources are accompanied by an
// index in the range 0 to 3 when raised. All other sources take an index of
// zero.
const (
	VBlank Source = iota
	HBlank
	VCount
	Timer
	Serial
	DMA
	Keypad
	GamePak
)

// the bit in IE/IF for each source with an index of zero.
var sourceBit = [...]int{
	VBlank:  0,
	HBlank:  1,
	VCount:  2,
	Timer:   3,
	Serial:  7,
	DMA:     8,
	Keypad:  12,
	GamePak: 13,
}

func (src Source) String() string {
	switch src {
	case VBlank:
		return "vblank"
	case HBlank:
		return "hblank"
	case VCount:
		return "vcount"
	case Timer:
		return "timer"
	case Serial:
		return "serial"
	case DMA:
		return "dma"
	case Keypad:
		return "keypad"
	case GamePak:
		return "gamepak"
	}
	return fmt.Sprintf("source(%d)", int(src))
}

// Bit returns the IE/IF bit for the source and index.
func Bit(src Source, index int) uint16 {
	return 1 << (sourceBit[src] + index)
}

// Raiser is implemented by any type that can accept an interrupt. Components
// that raise interrupts should accept this interface rather than the
// Controller type.
type Raiser interface {
	Raise(src Source, index int)
}

// Controller is the interrupt controller.
type Controller struct {
	log logger.Permission

	enable  uint16
	request uint16
	master  bool
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(log logger.Permission) *Controller {
	return &Controller{log: log}
}

// Reset the controller to its power-on state.
func (irq *Controller) Reset() {
	irq.enable = 0
	irq.request = 0
	irq.master = false
}

func (irq *Controller) String() string {
	return fmt.Sprintf("IE=%04x IF=%04x IME=%v", irq.enable, irq.request, irq.master)
}

// Raise implements the Raiser interface.
func (irq *Controller) Raise(src Source, index int) {
	irq.request |= Bit(src, index)
}

// Requested returns the contents of the IF register.
func (irq *Controller) Requested() uint16 {
	return irq.request
}

// Pending returns true if there is a requested interrupt that the processor
// should service.
func (irq *Controller) Pending() bool {
	return irq.master && irq.enable&irq.request != 0
}

// ReadIE implements the I/O register read for the IE register.
func (irq *Controller) ReadIE(offset int) uint8 {
	return uint8(irq.enable >> (offset * 8))
}

// WriteIE implements the I/O register write for the IE register.
func (irq *Controller) WriteIE(offset int, value uint8) {
	shift := offset * 8
	irq.enable = (irq.enable &^ (0xff << shift)) | (uint16(value) << shift)
	irq.enable &= 0x3fff
}

// ReadIF implements the I/O register read for the IF register.
func (irq *Controller) ReadIF(offset int) uint8 {
	return uint8(irq.request >> (offset * 8))
}

// WriteIF implements the I/O register write for the IF register. Bits
// written with a one are cleared.
func (irq *Controller) WriteIF(offset int, value uint8) {
	irq.request &^= uint16(value) << (offset * 8)
}

// ReadIME implements the I/O register read for the IME register.
func (irq *Controller) ReadIME(offset int) uint8 {
	if offset == 0 && irq.master {
		return 1
	}
	return 0
}

// WriteIME implements the I/O register write for the IME register.
func (irq *Controller) WriteIME(offset int, value uint8) {
	if offset != 0 {
		return
	}
	m := value&0x01 == 0x01
	if m != irq.master {
		logger.Logf(irq.log, "irq", "master enable: %v", m)
	}
	irq.master = m
}

// MapRegisters adds the IE, IF and IME registers to the I/O map.
func (irq *Controller) MapRegisters(m *mmio.Map) error {
	if err := m.Add("IE", mmio.IE, 2, mmio.Funcs{R: irq.ReadIE, W: irq.WriteIE}); err != nil {
		return err
	}
	if err := m.Add("IF", mmio.IF, 2, mmio.Funcs{R: irq.ReadIF, W: irq.WriteIF}); err != nil {
		return err
	}
	return m.Add("IME", mmio.IME, 4, mmio.Funcs{R: irq.ReadIME, W: irq.WriteIME})
}
