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

// Package prefs facilitates the storage of preferential values in the
// emulator. Values of type Bool, Int, Float and String can be read and
// written from any goroutine.
//
// A Disk instance associates a preference value with a key and stores them
// in a file. The file begins with WarningBoilerPlate and each following line
// is of the form:
//
//	key :: value
//
// The command line stack allows preferences to be overridden for the
// duration of a session. Values pushed to the stack take effect when the
// preference is added to a Disk instance.
package prefs
