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

import (
	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/govern"
	"github.com/gopheradvance/gopheradvance/hardware/clocks"
)

// Run the console for the specified number of cycles.
//
// On every iteration of the loop an active DMA transfer takes priority. If no
// transfer is active then any due scheduler events are fired. Otherwise the
// processor runs until the next event or until the cycle budget is used.
//
// Events that are due at the end of the period are fired before returning.
// DMA transfers started by those events are left for the next call.
func (gba *GBA) Run(cycles int) {
	target := gba.Scheduler.Now() + uint64(max(cycles, 0))

	for gba.Scheduler.Now() < target {
		if gba.DMA.IsRunning() {
			gba.DMA.Run()
			continue
		}

		remaining := gba.Scheduler.GetRemainingCycleCount()
		if remaining <= 0 {
			gba.Scheduler.Step()
			continue
		}

		budget := min(remaining, int(target-gba.Scheduler.Now()))
		gba.CPU.Step(budget)
	}

	for gba.Scheduler.GetRemainingCycleCount() <= 0 {
		gba.Scheduler.Step()
	}
}

// Frame runs the console for the duration of one video frame.
func (gba *GBA) Frame() {
	gba.Run(clocks.CyclesPerFrame)
}

// RunForFrameCount runs the console for the specified number of frames. The
// continue check function is called after every frame with the number of
// frames completed so far and can end the run early.
func (gba *GBA) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	for frame := 1; frame <= numFrames; frame++ {
		gba.Frame()

		state, err := continueCheck(frame)
		if err != nil {
			return err
		}

		switch state {
		case govern.Running:
		case govern.Ending:
			return nil
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in RunForFrameCount()", state)
		}
	}

	return nil
}
