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

// Package scheduler is the master clock of the console. Time is measured as an
// absolute count of system cycles. Components ask for something to happen some
// number of cycles in the future by adding an event to the scheduler.
//
// Events are plain records: the cycle on which the event is due, a tag saying
// which component the event belongs to and an integer payload that the
// component interprets. Components register a Handler for their tag when the
// console is created. Events do not hold references to callbacks, which means
// the list of pending events can be inspected and stored.
//
// The memory bus advances the clock with AddCycles() for every access it
// performs. When GetRemainingCycleCount() reaches zero the caller should call
// Step(), which fires every event that is now due. Handlers are told how many
// cycles late the event fired so that they can schedule the next event with
// drift compensation:
//
//	func (ppu *PPU) HandleEvent(payload int, cyclesLate int) {
//		...
//		ppu.sched.Add(duration-cyclesLate, scheduler.TagPPU, int(next))
//	}
//
// Events due on the same cycle fire in the order they were added.
package scheduler
