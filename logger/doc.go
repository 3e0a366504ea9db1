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

// Package logger is the central log for the emulator. Log entries are
// tagged and consecutive duplicate entries are folded into a single entry with
// a repeat count.
//
// Logging requests are qualified by a Permission. The Allow value can be used
// whenever a log entry should always be made. Hardware components are given
// a Permission when they are created and will only log if that Permission
// allows it.
package logger
