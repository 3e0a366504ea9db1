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

package hardware

// Processor is the interface to the CPU. The CPU is given a budget of cycles
// to run for. It should charge its memory accesses to the bus and return when
// the budget has been used or when it can no longer run. The budget ends at
// the next scheduler event.
type Processor interface {
	Step(budget int)
}

// Halter is implemented by processors that respond to the HALTCNT register.
type Halter interface {
	Halt(stop bool)
}

// Clock is the part of the scheduler needed by the halted processor.
type Clock interface {
	AddCycles(n int)
}

// Halted is a Processor that never runs. The bus is idle until the next event.
type Halted struct {
	clock Clock

	// number of times HALTCNT has been written
	Halts int
}

// NewHalted is the preferred method of initialisation for the Halted type.
func NewHalted(clock Clock) *Halted {
	return &Halted{clock: clock}
}

// Step implements the Processor interface.
func (h *Halted) Step(budget int) {
	h.clock.AddCycles(max(budget, 1))
}

// Halt implements the Halter interface.
func (h *Halted) Halt(_ bool) {
	h.Halts++
}
