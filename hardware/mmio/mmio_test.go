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

package mmio_test

import (
	"testing"

	"github.com/gopheradvance/gopheradvance/hardware/mmio"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/test"
)

// register records byte-wise access.
type register struct {
	data [4]uint8
}

func (r *register) Read(offset int) uint8 {
	return r.data[offset]
}

func (r *register) Write(offset int, value uint8) {
	r.data[offset] = value
}

func TestDispatch(t *testing.T) {
	m := mmio.NewMap(logger.Deny)

	a := &register{}
	b := &register{}
	test.ExpectSuccess(t, m.Add("A", mmio.Base+0x10, 4, a))
	test.ExpectSuccess(t, m.Add("B", mmio.Base+0x14, 2, b))

	m.Write(mmio.Base+0x12, 0xaa)
	test.ExpectEquality(t, a.data[2], 0xaa)
	m.Write(mmio.Base+0x15, 0xbb)
	test.ExpectEquality(t, b.data[1], 0xbb)

	test.ExpectEquality(t, m.Read(mmio.Base+0x12), 0xaa)
	test.ExpectEquality(t, m.Read(mmio.Base+0x15), 0xbb)

	name, offset, ok := m.Lookup(mmio.Base + 0x13)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "A")
	test.ExpectEquality(t, offset, 3)
}

func TestUnmapped(t *testing.T) {
	m := mmio.NewMap(logger.Deny)
	test.ExpectEquality(t, m.Read(mmio.Base+0x3ff), 0)

	// writes to unmapped addresses are ignored
	m.Write(mmio.Base+0x3ff, 0xff)
	test.ExpectEquality(t, m.Read(mmio.Base+0x3ff), 0)

	_, _, ok := m.Lookup(mmio.Base + 0x3ff)
	test.ExpectFailure(t, ok)
}

func TestOverlap(t *testing.T) {
	m := mmio.NewMap(logger.Deny)
	test.ExpectSuccess(t, m.Add("A", mmio.Base, 4, &register{}))
	test.ExpectFailure(t, m.Add("B", mmio.Base+3, 2, &register{}))
	test.ExpectSuccess(t, m.Add("C", mmio.Base+4, 2, &register{}))
	test.ExpectEquality(t, len(m.Entries()), 2)
}

func TestFuncs(t *testing.T) {
	m := mmio.NewMap(logger.Deny)

	var written uint8
	test.ExpectSuccess(t, m.Add("writeonly", mmio.Base, 1, mmio.Funcs{
		W: func(_ int, v uint8) { written = v },
	}))
	test.ExpectSuccess(t, m.Add("readonly", mmio.Base+1, 1, mmio.Funcs{
		R: func(_ int) uint8 { return 0x55 },
	}))

	m.Write(mmio.Base, 0x12)
	test.ExpectEquality(t, written, 0x12)
	test.ExpectEquality(t, m.Read(mmio.Base), 0)

	m.Write(mmio.Base+1, 0x12)
	test.ExpectEquality(t, m.Read(mmio.Base+1), 0x55)
}
