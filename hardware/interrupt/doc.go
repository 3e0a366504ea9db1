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

// Package interrupt implements the interrupt controller. Components raise
// interrupts with Raise() and the controller records them in the IF register.
// Whether the processor responds depends on the IE and IME registers, which
// are reported by the Pending() function.
//
// The registers are presented to the I/O map as three byte-addressed units:
// IE (two bytes), IF (two bytes) and IME (four bytes, of which only bit zero
// is meaningful). Writing a one to a bit of IF acknowledges that interrupt.
package interrupt
