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

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gopheradvance/gopheradvance/logger"
)

// Scheduler is the master clock and the queue of pending events.
type Scheduler struct {
	log logger.Permission

	now uint64

	q        queue
	pending  map[Handle]*Event
	handlers [numTags]Handler

	// sequence number for the next event. the sequence number is also used
	// as the Handle for the event
	seq uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(log logger.Permission) *Scheduler {
	s := &Scheduler{
		log:     log,
		pending: make(map[Handle]*Event),
	}
	return s
}

// Reset the clock to zero and forget all pending events. Handlers remain
// registered.
func (s *Scheduler) Reset() {
	s.now = 0
	s.q = s.q[:0]
	clear(s.pending)
}

// Register the handler for events of the specified tag. A second call for
// the same tag replaces the handler.
func (s *Scheduler) Register(tag Tag, h Handler) {
	s.handlers[tag] = h
}

// Now returns the current absolute cycle.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// Add an event that is to fire delay cycles from now. A negative delay is
// treated as zero. The returned Handle can be used to cancel the event.
func (s *Scheduler) Add(delay int, tag Tag, payload int) Handle {
	if delay < 0 {
		logger.Logf(s.log, "scheduler", "negative delay (%d) for %s event", delay, tag)
		delay = 0
	}

	s.seq++
	ev := &Event{
		Target:  s.now + uint64(delay),
		Tag:     tag,
		Payload: payload,
		seq:     s.seq,
	}
	heap.Push(&s.q, ev)

	h := Handle(s.seq)
	s.pending[h] = ev
	return h
}

// Cancel a pending event. Cancelling an event that has already fired, or
// that has already been cancelled, does nothing.
func (s *Scheduler) Cancel(h Handle) {
	ev, ok := s.pending[h]
	if !ok {
		return
	}
	delete(s.pending, h)
	heap.Remove(&s.q, ev.index)
}

// IsPending returns true if the event identified by the handle has not yet
// fired or been cancelled.
func (s *Scheduler) IsPending(h Handle) bool {
	_, ok := s.pending[h]
	return ok
}

// AddCycles advances the clock. Events that become due are not fired until
// the next call to Step().
func (s *Scheduler) AddCycles(n int) {
	s.now += uint64(n)
}

// GetRemainingCycleCount returns the number of cycles until the earliest
// pending event. The value is zero or negative if the event is already due.
// If there are no events then the largest possible int is returned.
func (s *Scheduler) GetRemainingCycleCount() int {
	if len(s.q) == 0 {
		return math.MaxInt
	}
	return int(int64(s.q[0].Target) - int64(s.now))
}

// Step fires all events that are due. If the earliest event is in the future
// then the clock is first moved forward to that event's target.
//
// Handlers may add events during Step(). An event added with a delay of zero
// fires before Step() returns.
func (s *Scheduler) Step() {
	if len(s.q) == 0 {
		return
	}

	if s.q[0].Target > s.now {
		s.now = s.q[0].Target
	}

	for len(s.q) > 0 && s.q[0].Target <= s.now {
		ev := heap.Pop(&s.q).(*Event)
		delete(s.pending, Handle(ev.seq))

		h := s.handlers[ev.Tag]
		if h == nil {
			logger.Logf(s.log, "scheduler", "no handler for %s event", ev.Tag)
			continue
		}
		h.HandleEvent(ev.Payload, int(s.now-ev.Target))
	}
}

// Pending returns a copy of all pending events in the order they will fire.
func (s *Scheduler) Pending() []Event {
	p := make([]Event, 0, len(s.q))
	for _, ev := range s.q {
		p = append(p, *ev)
	}
	sort.Slice(p, func(i, j int) bool {
		if p[i].Target == p[j].Target {
			return p[i].seq < p[j].seq
		}
		return p[i].Target < p[j].Target
	})
	return p
}

func (s *Scheduler) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("now: %d", s.now))
	for _, ev := range s.Pending() {
		b.WriteString(fmt.Sprintf("\n  %s", ev))
	}
	return b.String()
}
