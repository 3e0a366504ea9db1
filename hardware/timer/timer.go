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

package timer

import (
	"fmt"

	"github.com/gopheradvance/gopheradvance/hardware/interrupt"
	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/hardware/scheduler"
	"github.com/gopheradvance/gopheradvance/logger"
)

// NumTimers is the number of timers.
const NumTimers = 4

// number of cycles per count for each prescaler setting, expressed as a shift.
var prescalerShift = [4]int{0, 6, 8, 10}

// Scheduler is the part of the scheduler used by the timers.
type Scheduler interface {
	Now() uint64
	Add(delay int, tag scheduler.Tag, payload int) scheduler.Handle
	Cancel(h scheduler.Handle)
}

// OverflowListener is notified whenever a timer overflows. The APU uses this
// to clock the direct sound FIFOs.
type OverflowListener interface {
	OnTimerOverflow(id int)
}

// Timer is a single timer.
type Timer struct {
	ID int

	Reload    uint16
	Prescaler int
	Cascade   bool
	Interrupt bool
	Enable    bool

	// counter value at the time the timer was last started or latched
	counter uint16

	// scheduler time that counter was recorded
	since uint64

	event scheduler.Handle
}

func (tm *Timer) String() string {
	return fmt.Sprintf("timer%d: reload=%04x prescaler=%d cascade=%v irq=%v enable=%v",
		tm.ID, tm.Reload, 1<<prescalerShift[tm.Prescaler], tm.Cascade, tm.Interrupt, tm.Enable)
}

// running is true if the timer is counting clock cycles.
func (tm *Timer) running() bool {
	return tm.Enable && !tm.Cascade
}

// Timers is the collection of the four timers.
type Timers struct {
	log      logger.Permission
	sched    Scheduler
	irq      interrupt.Raiser
	listener OverflowListener

	Timers [NumTimers]Timer
}

// NewTimers is the preferred method of initialisation for the Timers type. The
// listener can be nil.
func NewTimers(log logger.Permission, sched Scheduler, irq interrupt.Raiser, listener OverflowListener) *Timers {
	tms := &Timers{
		log:      log,
		sched:    sched,
		irq:      irq,
		listener: listener,
	}
	tms.Reset()
	return tms
}

// Reset all timers. Pending overflow events are cancelled.
func (tms *Timers) Reset() {
	for id := range tms.Timers {
		tms.sched.Cancel(tms.Timers[id].event)
		tms.Timers[id] = Timer{ID: id}
	}
}

// Counter returns the current value of the timer's counter.
func (tms *Timers) Counter(id int) uint16 {
	tm := &tms.Timers[id]
	if !tm.running() {
		return tm.counter
	}
	elapsed := (tms.sched.Now() - tm.since) >> prescalerShift[tm.Prescaler]
	return tm.counter + uint16(elapsed)
}

// start the timer counting from the current counter value.
func (tms *Timers) start(tm *Timer, cyclesLate int) {
	tms.sched.Cancel(tm.event)
	tm.since = tms.sched.Now() - uint64(cyclesLate)
	if !tm.running() {
		return
	}
	delay := (0x10000 - int(tm.counter)) << prescalerShift[tm.Prescaler]
	tm.event = tms.sched.Add(delay-cyclesLate, scheduler.TagTimer, tm.ID)
}

// latch the counter so that the timer can be reconfigured.
func (tms *Timers) latch(tm *Timer) {
	tm.counter = tms.Counter(tm.ID)
	tms.sched.Cancel(tm.event)
}

// HandleEvent implements the scheduler.Handler interface. The payload is the
// ID of the timer that has overflowed.
func (tms *Timers) HandleEvent(payload int, cyclesLate int) {
	tms.overflow(payload, cyclesLate)
}

func (tms *Timers) overflow(id int, cyclesLate int) {
	tm := &tms.Timers[id]
	tm.counter = tm.Reload
	tms.start(tm, cyclesLate)

	if tm.Interrupt {
		tms.irq.Raise(interrupt.Timer, id)
	}

	if tms.listener != nil {
		tms.listener.OnTimerOverflow(id)
	}

	if id+1 < NumTimers {
		next := &tms.Timers[id+1]
		if next.Enable && next.Cascade {
			next.counter++
			if next.counter == 0 {
				tms.overflow(id+1, 0)
			}
		}
	}
}

// Read a byte of the timer's register block.
func (tms *Timers) Read(id int, offset int) uint8 {
	tm := &tms.Timers[id]
	switch offset {
	case 0:
		return uint8(tms.Counter(id))
	case 1:
		return uint8(tms.Counter(id) >> 8)
	case 2:
		var v uint8
		v = uint8(tm.Prescaler)
		if tm.Cascade {
			v |= 0x04
		}
		if tm.Interrupt {
			v |= 0x40
		}
		if tm.Enable {
			v |= 0x80
		}
		return v
	}
	return 0
}

// Write a byte of the timer's register block. Writing the counter sets the
// reload value, which is copied to the counter when the timer is enabled and
// on overflow.
func (tms *Timers) Write(id int, offset int, value uint8) {
	tm := &tms.Timers[id]
	switch offset {
	case 0:
		tm.Reload = (tm.Reload & 0xff00) | uint16(value)
	case 1:
		tm.Reload = (tm.Reload & 0x00ff) | uint16(value)<<8
	case 2:
		enableOld := tm.Enable
		if enableOld {
			tms.latch(tm)
		}

		tm.Prescaler = int(value & 0x03)

		// timer 0 has nothing to cascade from
		tm.Cascade = id != 0 && value&0x04 == 0x04

		tm.Interrupt = value&0x40 == 0x40
		tm.Enable = value&0x80 == 0x80

		if tm.Enable && !enableOld {
			tm.counter = tm.Reload
			logger.Logf(tms.log, "timer", "timer%d enabled (prescaler %d, cascade %v)", id, 1<<prescalerShift[tm.Prescaler], tm.Cascade)
		} else if !tm.Enable && enableOld {
			logger.Logf(tms.log, "timer", "timer%d disabled", id)
		}

		if tm.Enable {
			tms.start(tm, 0)
		}
	}
}

// Register is a timer's block of registers presented as a single unit.
type Register struct {
	tms *Timers
	id  int
}

// Read implements the mmio.Register interface.
func (r Register) Read(offset int) uint8 {
	return r.tms.Read(r.id, offset)
}

// Write implements the mmio.Register interface.
func (r Register) Write(offset int, value uint8) {
	r.tms.Write(r.id, offset, value)
}

// MapRegisters adds the register blocks of every timer to the I/O map.
func (tms *Timers) MapRegisters(m *mmio.Map) error {
	for id := range NumTimers {
		addr := uint32(mmio.TM0CNT + id*mmio.TimerStride)
		if err := m.Add(fmt.Sprintf("TM%dCNT", id), addr, mmio.TimerStride, Register{tms: tms, id: id}); err != nil {
			return err
		}
	}
	return nil
}
