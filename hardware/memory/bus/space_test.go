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

package bus_test

import (
	"encoding/binary"
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
	"github.com/gopherdmg/gopherdmg/test"
)

// flat is 64KB of memory
type flat struct {
	data [0x10000]uint8
}

func (m *flat) Load8(address uint16) uint8 {
	return m.data[address]
}

func (m *flat) Store8(address uint16, data uint8) {
	m.data[address] = data
}

// mirrored is 256 bytes of memory reachable from every page of the address
// space
type mirrored struct {
	data [0x100]uint8
}

func (m *mirrored) Load8(address uint16) uint8 {
	return m.data[address&0xff]
}

func (m *mirrored) Store8(address uint16, data uint8) {
	m.data[address&0xff] = data
}

func (m *mirrored) PhysicalAddress(address uint16) uint64 {
	return uint64(address & 0xff)
}

// readonly ignores stores but can be poked
type readonly struct {
	flat
}

func (m *readonly) Store8(_ uint16, _ uint8) {
}

func (m *readonly) Peek(address uint16) (uint8, error) {
	return m.data[address], nil
}

func (m *readonly) Poke(address uint16, value uint8) error {
	m.data[address] = value
	return nil
}

func TestByteOrder(t *testing.T) {
	little := bus.NewSpace(&flat{}, binary.LittleEndian)
	little.Store16(0x1000, 0x1234)
	test.ExpectEquality(t, little.Load8(0x1000), uint8(0x34))
	test.ExpectEquality(t, little.Load8(0x1001), uint8(0x12))
	test.ExpectEquality(t, little.Load16(0x1000), uint16(0x1234))

	big := bus.NewSpace(&flat{}, binary.BigEndian)
	big.Store16(0x1000, 0x1234)
	test.ExpectEquality(t, big.Load8(0x1000), uint8(0x12))
	test.ExpectEquality(t, big.Load8(0x1001), uint8(0x34))

	big.Store32(0x2000, 0x01020304)
	test.ExpectEquality(t, big.Load8(0x2003), uint8(0x04))
	test.ExpectEquality(t, big.Load32(0x2000), uint32(0x01020304))

	little.Store64(0x3000, 0x0102030405060708)
	test.ExpectEquality(t, little.Load8(0x3000), uint8(0x08))
	test.ExpectEquality(t, little.Load8(0x3007), uint8(0x01))
	test.ExpectEquality(t, little.Load64(0x3000), uint64(0x0102030405060708))
	test.ExpectEquality(t, little.Load32(0x3004), uint32(0x01020304))
}

func TestAddressWrap(t *testing.T) {
	mem := &flat{}
	s := bus.NewSpace(mem, binary.LittleEndian)
	s.Store16(0xffff, 0xabcd)
	test.ExpectEquality(t, mem.data[0xffff], uint8(0xcd))
	test.ExpectEquality(t, mem.data[0x0000], uint8(0xab))
}

func TestReplace(t *testing.T) {
	s := bus.NewSpace(&flat{}, binary.LittleEndian)
	s.Store8(0x0150, 0x3e)

	_, ok := s.GetReplaced8(0x0150)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, s.Replace8(0x0150, 0xcb))
	test.ExpectEquality(t, s.Load8(0x0150), uint8(0xcb))
	orig, ok := s.GetReplaced8(0x0150)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, orig, uint8(0x3e))

	// a second replacement keeps the first original
	test.ExpectSuccess(t, s.Replace8(0x0150, 0xd3))
	orig, _ = s.GetReplaced8(0x0150)
	test.ExpectEquality(t, orig, uint8(0x3e))
	test.ExpectEquality(t, s.NumReplaced(), 1)

	test.ExpectSuccess(t, s.Restore8(0x0150))
	_, ok = s.GetReplaced8(0x0150)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, s.Load8(0x0150), uint8(0x3e))
	test.ExpectEquality(t, s.NumReplaced(), 0)

	// restore with no replacement does nothing
	test.ExpectSuccess(t, s.Restore8(0x0150))
	test.ExpectEquality(t, s.Load8(0x0150), uint8(0x3e))
}

func TestReplacePhysical(t *testing.T) {
	s := bus.NewSpace(&mirrored{}, binary.LittleEndian)
	s.Store8(0x0010, 0x42)

	test.ExpectSuccess(t, s.Replace8(0x0010, 0xd3))

	// the same cell reached through a different logical address
	test.ExpectEquality(t, s.Load8(0x1210), uint8(0xd3))
	orig, ok := s.GetReplaced8(0x1210)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, orig, uint8(0x42))
	test.ExpectSuccess(t, s.IsReplaced(0x10))

	test.ExpectSuccess(t, s.Restore8(0x3310))
	test.ExpectEquality(t, s.Load8(0x0010), uint8(0x42))
}

func TestReplaceReadOnly(t *testing.T) {
	mem := &readonly{}
	mem.data[0x0100] = 0x00
	s := bus.NewSpace(mem, binary.LittleEndian)

	s.Store8(0x0100, 0xff)
	test.ExpectEquality(t, s.Load8(0x0100), uint8(0x00))

	test.ExpectSuccess(t, s.Replace8(0x0100, 0xd3))
	test.ExpectEquality(t, s.Load8(0x0100), uint8(0xd3))
	test.ExpectSuccess(t, s.Restore8(0x0100))
	test.ExpectEquality(t, s.Load8(0x0100), uint8(0x00))
}

func TestStoreToReplaced(t *testing.T) {
	s := bus.NewSpace(&flat{}, binary.LittleEndian)
	s.Store8(0xc000, 0x00)
	test.DemandSuccess(t, s.Replace8(0xc000, 0xd3))

	// the replacement stays in memory and the stored value becomes the
	// original value
	s.Store8(0xc000, 0x3e)
	test.ExpectEquality(t, s.Load8(0xc000), uint8(0xd3))
	v, ok := s.GetReplaced8(0xc000)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x3e))

	// storing the replacement value itself
	s.Store8(0xc000, 0xd3)
	v, _ = s.GetReplaced8(0xc000)
	test.ExpectEquality(t, v, uint8(0xd3))

	// wider stores go through the same path
	s.Store16(0xbfff, 0x4477)
	test.ExpectEquality(t, s.Load8(0xbfff), uint8(0x77))
	test.ExpectEquality(t, s.Load8(0xc000), uint8(0xd3))
	v, _ = s.GetReplaced8(0xc000)
	test.ExpectEquality(t, v, uint8(0x44))

	test.ExpectSuccess(t, s.Restore8(0xc000))
	test.ExpectEquality(t, s.Load8(0xc000), uint8(0x44))
	test.ExpectEquality(t, s.NumReplaced(), 0)
}

func TestStoreToReplacedMirror(t *testing.T) {
	s := bus.NewSpace(&mirrored{}, binary.LittleEndian)
	test.DemandSuccess(t, s.Replace8(0x0010, 0xd3))

	// a store through another logical address reaching the same cell
	s.Store8(0x0310, 0x55)
	test.ExpectEquality(t, s.Load8(0x0010), uint8(0xd3))
	v, _ := s.GetReplaced8(0x0010)
	test.ExpectEquality(t, v, uint8(0x55))
}

func TestStoreToReplacedReadOnly(t *testing.T) {
	mem := &readonly{}
	mem.data[0x0100] = 0x12
	s := bus.NewSpace(mem, binary.LittleEndian)
	test.DemandSuccess(t, s.Replace8(0x0100, 0xd3))

	// stores that do not reach the cell leave the original value alone
	s.Store8(0x0100, 0x99)
	s.Store8(0x0100, 0xd3)
	test.ExpectEquality(t, s.Load8(0x0100), uint8(0xd3))
	v, _ := s.GetReplaced8(0x0100)
	test.ExpectEquality(t, v, uint8(0x12))

	test.ExpectSuccess(t, s.Restore8(0x0100))
	test.ExpectEquality(t, s.Load8(0x0100), uint8(0x12))
}
