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

package mmio

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gopheradvance/gopheradvance/logger"
)

// Register is a unit of one or more bytes in the I/O range.
type Register interface {
	Read(offset int) uint8
	Write(offset int, value uint8)
}

// Funcs allows a pair of ordinary functions to be used as a Register. A nil
// Read function makes the register write-only (reads return zero) and a nil
// Write function makes it read-only.
type Funcs struct {
	R func(offset int) uint8
	W func(offset int, value uint8)
}

// Read implements the Register interface.
func (f Funcs) Read(offset int) uint8 {
	if f.R == nil {
		return 0
	}
	return f.R(offset)
}

// Write implements the Register interface.
func (f Funcs) Write(offset int, value uint8) {
	if f.W != nil {
		f.W(offset, value)
	}
}

// Entry in the map.
type Entry struct {
	Name     string
	Address  uint32
	Size     int
	register Register
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x-%08x %s", e.Address, e.Address+uint32(e.Size)-1, e.Name)
}

type slot struct {
	entry  int
	offset int
}

// Map of addresses to registers.
type Map struct {
	log     logger.Permission
	entries []Entry
	lookup  map[uint32]slot
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(log logger.Permission) *Map {
	return &Map{
		log:    log,
		lookup: make(map[uint32]slot),
	}
}

// Add a register of size bytes beginning at address. It is an error for the
// range to overlap a register that has already been added.
func (m *Map) Add(name string, address uint32, size int, reg Register) error {
	for i := range size {
		if s, ok := m.lookup[address+uint32(i)]; ok {
			return fmt.Errorf("mmio: %s overlaps %s at %08x", name, m.entries[s.entry].Name, address+uint32(i))
		}
	}

	m.entries = append(m.entries, Entry{
		Name:     name,
		Address:  address,
		Size:     size,
		register: reg,
	})

	for i := range size {
		m.lookup[address+uint32(i)] = slot{entry: len(m.entries) - 1, offset: i}
	}

	return nil
}

// Read the byte at address.
func (m *Map) Read(address uint32) uint8 {
	s, ok := m.lookup[address]
	if !ok {
		return 0
	}
	return m.entries[s.entry].register.Read(s.offset)
}

// Write the byte at address.
func (m *Map) Write(address uint32, value uint8) {
	s, ok := m.lookup[address]
	if !ok {
		logger.Logf(m.log, "mmio", "unmapped write: %08x <- %02x", address, value)
		return
	}
	m.entries[s.entry].register.Write(s.offset, value)
}

// Lookup returns the name of the register and the offset into that register
// for the address. Returns false if the address is not mapped.
func (m *Map) Lookup(address uint32) (string, int, bool) {
	s, ok := m.lookup[address]
	if !ok {
		return "", 0, false
	}
	return m.entries[s.entry].Name, s.offset, true
}

// Entries returns a copy of the map's entries sorted by address.
func (m *Map) Entries() []Entry {
	e := make([]Entry, len(m.entries))
	copy(e, m.entries)
	sort.Slice(e, func(i, j int) bool {
		return e[i].Address < e[j].Address
	})
	return e
}

func (m *Map) String() string {
	s := strings.Builder{}
	for _, e := range m.Entries() {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}
