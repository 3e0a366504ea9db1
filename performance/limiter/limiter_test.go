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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gopheradvance/gopheradvance/performance/limiter"
	"github.com/gopheradvance/gopheradvance/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for range 10 {
		lim.Wait()
	}

	// nine full periods after the first tick
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}
