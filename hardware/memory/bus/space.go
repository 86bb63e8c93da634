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

package bus

import (
	"encoding/binary"

	"github.com/gopherdmg/gopherdmg/curated"
)

// Sentinel error patterns.
const (
	ReplaceError = "bus: replace: %v"
	RestoreError = "bus: restore: %v"
)

// Space wraps an implementation of Memory and adds wider accesses and the
// replaced-byte map. Addresses wrap around at the end of the 16bit address
// range.
type Space struct {
	Memory

	order binary.ByteOrder

	// original bytes indexed by physical address
	replaced map[uint64]uint8
}

// NewSpace is the preferred method of initialisation for the Space type. The
// byte order cannot be changed after construction.
func NewSpace(mem Memory, order binary.ByteOrder) *Space {
	return &Space{
		Memory:   mem,
		order:    order,
		replaced: make(map[uint64]uint8),
	}
}

// ByteOrder returns the byte order used to compose wider accesses.
func (s *Space) ByteOrder() binary.ByteOrder {
	return s.order
}

func (s *Space) load(address uint16, b []byte) {
	for i := range b {
		b[i] = s.Memory.Load8(address + uint16(i))
	}
}

func (s *Space) store(address uint16, b []byte) {
	for i := range b {
		s.Store8(address+uint16(i), b[i])
	}
}

// Store8 writes to the wrapped memory. A store to a cell with a replacement
// changes the recorded original value and the replacement stays in memory.
func (s *Space) Store8(address uint16, data uint8) {
	if len(s.replaced) == 0 {
		s.Memory.Store8(address, data)
		return
	}

	phys := s.PhysicalAddress(address)
	if _, ok := s.replaced[phys]; !ok {
		s.Memory.Store8(address, data)
		return
	}

	value, err := s.Peek(address)
	if err != nil {
		s.Memory.Store8(address, data)
		return
	}

	s.Memory.Store8(address, data)

	// the store changed the mapping of the address. the cell was not written
	if s.PhysicalAddress(address) != phys {
		return
	}

	v, _ := s.Peek(address)
	if v != value {
		s.replaced[phys] = v
		_ = s.Poke(address, value)
		return
	}

	// the cell is unchanged. either the store was not to the cell (a
	// cartridge register for example) or the stored value is the same as the
	// replacement value. repeat the store with the original value in place
	// to find out which
	if data != value {
		return
	}

	orig := s.replaced[phys]
	_ = s.Poke(address, orig)
	s.Memory.Store8(address, data)
	if s.PhysicalAddress(address) == phys {
		if v, err := s.Peek(address); err == nil {
			s.replaced[phys] = v
		}
	}
	_ = s.Poke(address, value)
}

// Load16 composes two 8bit loads.
func (s *Space) Load16(address uint16) uint16 {
	var b [2]byte
	s.load(address, b[:])
	return s.order.Uint16(b[:])
}

// Load32 composes four 8bit loads.
func (s *Space) Load32(address uint16) uint32 {
	var b [4]byte
	s.load(address, b[:])
	return s.order.Uint32(b[:])
}

// Load64 composes eight 8bit loads.
func (s *Space) Load64(address uint16) uint64 {
	var b [8]byte
	s.load(address, b[:])
	return s.order.Uint64(b[:])
}

// Store16 decomposes the value into two 8bit stores.
func (s *Space) Store16(address uint16, data uint16) {
	var b [2]byte
	s.order.PutUint16(b[:], data)
	s.store(address, b[:])
}

// Store32 decomposes the value into four 8bit stores.
func (s *Space) Store32(address uint16, data uint32) {
	var b [4]byte
	s.order.PutUint32(b[:], data)
	s.store(address, b[:])
}

// Store64 decomposes the value into eight 8bit stores.
func (s *Space) Store64(address uint16, data uint64) {
	var b [8]byte
	s.order.PutUint64(b[:], data)
	s.store(address, b[:])
}

// PhysicalAddress returns the physical address of the logical address as
// reported by the wrapped memory.
func (s *Space) PhysicalAddress(address uint16) uint64 {
	return PhysicalAddress(s.Memory, address)
}

// Peek implements the DebuggerBus interface.
func (s *Space) Peek(address uint16) (uint8, error) {
	return Peek(s.Memory, address)
}

// Poke implements the DebuggerBus interface.
func (s *Space) Poke(address uint16, value uint8) error {
	return Poke(s.Memory, address, value)
}

// Replace8 writes the value to the address without losing the original value.
// If the physical address has already been replaced then the original value
// recorded by the earlier replacement is kept.
func (s *Space) Replace8(address uint16, value uint8) error {
	phys := s.PhysicalAddress(address)

	if _, ok := s.replaced[phys]; !ok {
		orig, err := s.Peek(address)
		if err != nil {
			return curated.Errorf(ReplaceError, err)
		}
		s.replaced[phys] = orig
	}

	if err := s.Poke(address, value); err != nil {
		return curated.Errorf(ReplaceError, err)
	}

	return nil
}

// Restore8 writes back the original value recorded by Replace8(). Does
// nothing if there is no replacement for the physical address.
func (s *Space) Restore8(address uint16) error {
	phys := s.PhysicalAddress(address)

	orig, ok := s.replaced[phys]
	if !ok {
		return nil
	}

	if err := s.Poke(address, orig); err != nil {
		return curated.Errorf(RestoreError, err)
	}
	delete(s.replaced, phys)

	return nil
}

// GetReplaced8 returns the original value recorded by Replace8(). The boolean
// result is false if there is no replacement for the physical address.
func (s *Space) GetReplaced8(address uint16) (uint8, bool) {
	orig, ok := s.replaced[s.PhysicalAddress(address)]
	return orig, ok
}

// IsReplaced returns true if the physical address has a replacement.
func (s *Space) IsReplaced(phys uint64) bool {
	_, ok := s.replaced[phys]
	return ok
}

// NumReplaced returns the number of outstanding replacements.
func (s *Space) NumReplaced() int {
	return len(s.replaced)
}
