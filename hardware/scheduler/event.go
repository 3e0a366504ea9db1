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

package scheduler

import "fmt"

// Tag identifies the component that an event belongs to.
type Tag int

// List of valid Tag values.
const (
	TagPPU Tag = iota
	TagTimer
	TagAPU
	TagUser
	numTags
)

func (t Tag) String() string {
	switch t {
	case TagPPU:
		return "ppu"
	case TagTimer:
		return "timer"
	case TagAPU:
		return "apu"
	case TagUser:
		return "user"
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// Handler implementations respond to events with a matching tag. The
// cyclesLate value is how far the clock had run past the event's due cycle
// when the event fired. It is never negative.
type Handler interface {
	HandleEvent(payload int, cyclesLate int)
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(payload int, cyclesLate int)

// HandleEvent implements the Handler interface.
func (f HandlerFunc) HandleEvent(payload int, cyclesLate int) {
	f(payload, cyclesLate)
}

// Handle identifies a pending event. It can be used to cancel the event.
type Handle uint64

// NoEvent is a Handle value that will never identify an event.
const NoEvent Handle = 0

// Event is a single pending occurance.
type Event struct {
	// the absolute cycle on which the event is due
	Target uint64

	Tag     Tag
	Payload int

	// order in which events were added. used to break ties between events
	// with the same target
	seq uint64

	// position in the heap. maintained by the queue type
	index int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s(%d) @ %d", ev.Tag, ev.Payload, ev.Target)
}
