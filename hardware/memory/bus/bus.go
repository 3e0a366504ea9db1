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

package bus

// Access describes the relationship of an access to the previous access.
// Sequential accesses are to the address following the previous access and
// are cheaper on some buses.
type Access int

// List of valid Access values.
const (
	Nonsequential Access = iota
	Sequential
)

func (a Access) String() string {
	if a == Sequential {
		return "S"
	}
	return "N"
}

// Memory defines the operations for the memory system when accessed from the
// processor or the DMA controller. Addresses are not required to be aligned;
// implementations align half-word and word addresses as the hardware does.
type Memory interface {
	ReadByte(address uint32, access Access) uint8
	ReadHalf(address uint32, access Access) uint16
	ReadWord(address uint32, access Access) uint32

	WriteByte(address uint32, value uint8, access Access)
	WriteHalf(address uint32, value uint16, access Access)
	WriteWord(address uint32, value uint32, access Access)

	// Idle indicates a cycle in which the bus is not used
	Idle()
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint32) uint8
	Poke(address uint32, value uint8)
}
