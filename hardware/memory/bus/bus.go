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

import "fmt"

// Memory defines the operations for all memory areas. A Load8() from an
// address with no meaning should return 0xff. A Store8() to an address with no
// meaning should be ignored.
type Memory interface {
	Load8(address uint16) uint8
	Store8(address uint16, data uint8)
}

// PhysicalMapper is implemented by memory areas that can be reached by more
// than one logical address. For example, a bank switched cartridge or a
// mirrored RAM area.
type PhysicalMapper interface {
	PhysicalAddress(address uint16) uint64
}

// PhysicalAddress returns the physical address of the logical address. If the
// memory does not implement PhysicalMapper then the logical address is
// returned unchanged.
func PhysicalAddress(mem Memory, address uint16) uint64 {
	if p, ok := mem.(PhysicalMapper); ok {
		return p.PhysicalAddress(address)
	}
	return uint64(address)
}

// DebuggerBus defines the meta-operations for memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
//
// Peek() must not cause any side effects. Poke() writes directly to the
// underlying storage, even if that storage is read-only to Store8().
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Peek reads the address without side effects if the memory implements
// DebuggerBus. Otherwise Load8() is used.
func Peek(mem Memory, address uint16) (uint8, error) {
	if d, ok := mem.(DebuggerBus); ok {
		return d.Peek(address)
	}
	return mem.Load8(address), nil
}

// Poke writes the address directly if the memory implements DebuggerBus.
// Otherwise Store8() is used.
func Poke(mem Memory, address uint16, value uint8) error {
	if d, ok := mem.(DebuggerBus); ok {
		return d.Poke(address, value)
	}
	mem.Store8(address, value)
	return nil
}

// CartRegisters conceptualises the bank controller registers of a cartridge
// that are inaccessible through normal addressing.
type CartRegisters interface {
	fmt.Stringer
}

// CartDebugBus is implemented by cartridges that have registers of interest to
// a debugger.
type CartDebugBus interface {
	GetRegisters() CartRegisters
}
