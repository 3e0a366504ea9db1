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

package cartridgeloader

import "fmt"

// Status is the outcome of loading an image.
type Status int

// List of valid Status values.
const (
	Ok Status = iota
	BIOSNotFound
	GameNotFound
	BIOSWrongSize
	GameWrongSize
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case BIOSNotFound:
		return "bios not found"
	case GameNotFound:
		return "game not found"
	case BIOSWrongSize:
		return "bios is the wrong size"
	case GameWrongSize:
		return "game is the wrong size"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Required size of a BIOS image.
const BIOSSize = 0x4000

// Largest possible game image.
const GameMaxSize = 0x2000000

// LoadBIOS loads a BIOS image. The image must be exactly BIOSSize bytes.
func LoadBIOS(filename string) ([]byte, Status) {
	cl := NewLoader(filename)
	if err := cl.Load(); err != nil {
		return nil, BIOSNotFound
	}
	if len(cl.Data) != BIOSSize {
		return nil, BIOSWrongSize
	}
	return cl.Data, Ok
}

// LoadGame loads a game image. The image must be at least one byte and no
// larger than GameMaxSize.
func LoadGame(filename string) ([]byte, Status) {
	cl := NewLoader(filename)
	if err := cl.Load(); err != nil {
		return nil, GameNotFound
	}
	if len(cl.Data) == 0 || len(cl.Data) > GameMaxSize {
		return nil, GameWrongSize
	}
	return cl.Data, Ok
}
