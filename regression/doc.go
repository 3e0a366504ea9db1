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

// Package regression runs regression entries against the emulation. An entry
// names a game, an optional Lua setup script, a number of frames and the
// expected digest of the video and/or audio output.
//
// Entries are kept in a simple text database with one entry per line. Fields
// are separated by commas:
//
//	name,game,script,mode,frames,digest
//
// Entries are run concurrently, each with its own console. The console is
// single threaded so this is the only useful way of running many entries
// quickly.
package regression
