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

// Package timer implements the four hardware timers.
//
// A running timer does not count cycle by cycle. The time of the next overflow
// is calculated when the timer is started and added to the scheduler as an
// event. The counter value is derived from the scheduler clock when it is
// read.
//
// A timer in cascade mode is not driven by the clock. It counts the overflows
// of the timer below it.
package timer
