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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopheradvance/gopheradvance/curated"
	"github.com/gopheradvance/gopheradvance/govern"
	"github.com/gopheradvance/gopheradvance/hardware"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator. The machine should already have any
// game attached.
//
// Emulation will run for the specified duration, unrestricted by any frame
// limiter, and will create the profiles requested by the Profile argument. If
// memvizFile is not empty then a graph of the DMA channels is written to
// that file at the end of the run.
func Check(output io.Writer, gba *hardware.GBA, profile Profile, duration string, memvizFile string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := gba.PPU.FrameNum()
	var elapsed time.Duration

	runner := func() error {
		timesUp := make(chan bool, 1)
		t := time.AfterFunc(dur, func() {
			timesUp <- true
		})
		defer t.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			err := gba.RunForFrameCount(1, func(_ int) (govern.State, error) {
				select {
				case <-timesUp:
					return govern.Ending, timedOut
				default:
					return govern.Running, nil
				}
			})
			if err != nil {
				return err
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := gba.PPU.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)

	if memvizFile != "" {
		return WriteMemviz(memvizFile, &gba.DMA.Channels)
	}

	return nil
}
