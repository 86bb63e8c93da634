// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package mmu_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/mmu"
	"github.com/gopherdmg/gopherdmg/test"
)

// area records the addresses it is accessed with
type area struct {
	name      string
	value     uint8
	lastStore uint16
	stores    int
}

func (a *area) Load8(address uint16) uint8 {
	return a.value
}

func (a *area) Store8(address uint16, data uint8) {
	a.lastStore = address
	a.stores++
}

func (a *area) String() string {
	return a.name
}

func TestBlockSize(t *testing.T) {
	_, err := mmu.NewRouter(0x300)
	test.ExpectSuccess(t, curated.Is(err, mmu.BadBlockSize))
	_, err = mmu.NewRouter(0)
	test.ExpectFailure(t, err)
	r, err := mmu.NewRouter(0x100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.BlockSize(), 0x100)
}

func TestUnmapped(t *testing.T) {
	r, _ := mmu.NewRouter(0x100)
	test.ExpectEquality(t, r.Load8(0x1234), mmu.OpenBus)
	r.Store8(0x1234, 0x00)
	test.ExpectEquality(t, r.Load8(0x1234), uint8(0xff))

	_, err := r.Peek(0x1234)
	test.ExpectSuccess(t, curated.Is(err, mmu.Unmapped))
	test.ExpectFailure(t, r.Poke(0x1234, 0x00))
}

func TestMultiBlockMapping(t *testing.T) {
	r, _ := mmu.NewRouter(0x100)
	a := &area{name: "a", value: 0x42}

	test.ExpectSuccess(t, r.Map(a, mmu.Mapping{Start: 0xc000, Size: 0x2000, Access: mmu.ReadWrite}))

	// every block covered by the mapping, including the last
	for addr := 0xc000; addr < 0xe000; addr += 0x80 {
		test.ExpectEquality(t, r.Load8(uint16(addr)), uint8(0x42), addr)
	}
	test.ExpectEquality(t, r.Load8(0xdfff), uint8(0x42))
	test.ExpectEquality(t, r.Load8(0xe000), mmu.OpenBus)
	test.ExpectEquality(t, r.Load8(0xbfff), mmu.OpenBus)

	r.Store8(0xdf00, 0x01)
	test.ExpectEquality(t, a.lastStore, uint16(0xdf00))
	test.ExpectEquality(t, a.stores, 1)
}

func TestPartialBlock(t *testing.T) {
	r, _ := mmu.NewRouter(0x100)
	a := &area{name: "a", value: 0x01}

	// a mapping smaller than a block still covers the entire block
	test.ExpectSuccess(t, r.Map(a, mmu.Mapping{Start: 0xff80, Size: 0x7f, Access: mmu.ReadWrite}))
	test.ExpectEquality(t, r.Load8(0xff00), uint8(0x01))
	test.ExpectEquality(t, r.Load8(0xffff), uint8(0x01))

	// a mapping that straddles a block boundary covers both blocks
	b := &area{name: "b", value: 0x02}
	test.ExpectSuccess(t, r.Map(b, mmu.Mapping{Start: 0x10ff, Size: 0x02, Access: mmu.Read}))
	test.ExpectEquality(t, r.Load8(0x1000), uint8(0x02))
	test.ExpectEquality(t, r.Load8(0x1100), uint8(0x02))
	test.ExpectEquality(t, r.Load8(0x1200), mmu.OpenBus)
}

func TestAccess(t *testing.T) {
	r, _ := mmu.NewRouter(0x1000)
	rd := &area{name: "read", value: 0x10}
	wr := &area{name: "write", value: 0x20}

	test.ExpectSuccess(t, r.Map(rd, mmu.Mapping{Start: 0x0000, Size: 0x8000, Access: mmu.Read}))
	test.ExpectSuccess(t, r.Map(wr, mmu.Mapping{Start: 0x0000, Size: 0x8000, Access: mmu.Write}))

	test.ExpectEquality(t, r.Load8(0x2000), uint8(0x10))
	r.Store8(0x2000, 0x00)
	test.ExpectEquality(t, wr.stores, 1)
	test.ExpectEquality(t, rd.stores, 0)

	m, w := r.Lookup(0x7fff)
	test.ExpectEquality(t, m.(*area).name, "read")
	test.ExpectEquality(t, w.(*area).name, "write")

	test.ExpectSuccess(t, r.Unmap(mmu.Mapping{Start: 0x0000, Size: 0x8000, Access: mmu.Write}))
	r.Store8(0x2000, 0x00)
	test.ExpectEquality(t, wr.stores, 1)
	test.ExpectEquality(t, r.Load8(0x2000), uint8(0x10))
}

func TestBadMapping(t *testing.T) {
	r, _ := mmu.NewRouter(0x100)
	a := &area{name: "a"}
	test.ExpectSuccess(t, curated.Is(r.Map(a, mmu.Mapping{Start: 0xff00, Size: 0x200, Access: mmu.Read}), mmu.BadMapping))
	test.ExpectSuccess(t, curated.Is(r.Map(a, mmu.Mapping{Start: 0x0000, Size: 0, Access: mmu.Read}), mmu.BadMapping))
}

func TestSummary(t *testing.T) {
	r, _ := mmu.NewRouter(0x4000)
	test.DemandSuccess(t, r.Map(&area{name: "rom"}, mmu.Mapping{Start: 0x0000, Size: 0x8000, Access: mmu.ReadWrite}))
	test.ExpectEquality(t, r.String(), "0000 -> 7fff\tr:rom w:rom\n8000 -> ffff\tr:- w:-\n")
}
