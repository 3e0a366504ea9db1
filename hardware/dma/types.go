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

package dma

import "fmt"

// Control of how an address changes after each transfer unit.
type Control int

// List of valid Control values.
const (
	Increment Control = iota
	Decrement
	Fixed
	Reload
)

func (c Control) String() string {
	switch c {
	case Increment:
		return "inc"
	case Decrement:
		return "dec"
	case Fixed:
		return "fixed"
	case Reload:
		return "reload"
	}
	return "?"
}

// Size of a transfer unit.
type Size int

// List of valid Size values.
const (
	Half Size = iota
	Word
)

func (s Size) String() string {
	if s == Word {
		return "32bit"
	}
	return "16bit"
}

// Timing selects what makes an enabled channel runnable.
type Timing int

// List of valid Timing values.
const (
	Immediate Timing = iota
	VBlank
	HBlank
	Special
)

func (t Timing) String() string {
	switch t {
	case Immediate:
		return "immediate"
	case VBlank:
		return "vblank"
	case HBlank:
		return "hblank"
	case Special:
		return "special"
	}
	return "?"
}

// Occasion is an external event that requests transfers.
type Occasion int

// List of valid Occasion values.
const (
	OccasionHBlank Occasion = iota
	OccasionVBlank
	OccasionVideo
	OccasionFIFO0
	OccasionFIFO1
)

func (o Occasion) String() string {
	switch o {
	case OccasionHBlank:
		return "hblank"
	case OccasionVBlank:
		return "vblank"
	case OccasionVideo:
		return "video"
	case OccasionFIFO0:
		return "fifo a"
	case OccasionFIFO1:
		return "fifo b"
	}
	return fmt.Sprintf("occasion(%d)", int(o))
}

// Destination addresses of the two audio FIFOs. Channels 1 and 2 with Special
// timing transfer to one of these addresses.
const (
	FIFOA = 0x040000a0
	FIFOB = 0x040000a4
)

// NumChannels is the number of DMA channels.
const NumChannels = 4

// address and length masks for each channel.
var (
	srcMask = [NumChannels]uint32{0x07ffffff, 0x0fffffff, 0x0fffffff, 0x0fffffff}
	dstMask = [NumChannels]uint32{0x07ffffff, 0x07ffffff, 0x07ffffff, 0x0fffffff}
	lenMask = [NumChannels]uint32{0x3fff, 0x3fff, 0x3fff, 0xffff}
)

// the change to an address after each unit, indexed by size and control. a
// reload control behaves like increment during the transfer
var modify = [2][4]int32{
	{2, -2, 0, 2},
	{4, -4, 0, 4},
}

// channelSet is a set of channels, one bit per channel.
type channelSet uint8

func (s *channelSet) set(id int) {
	*s |= 1 << id
}

func (s *channelSet) clear(id int) {
	*s &^= 1 << id
}

func (s channelSet) has(id int) bool {
	return s&(1<<id) != 0
}

// highest returns the channel with the highest priority (the lowest channel
// number) in the set. Returns -1 if the set is empty.
func (s channelSet) highest() int {
	for id := range NumChannels {
		if s.has(id) {
			return id
		}
	}
	return -1
}
