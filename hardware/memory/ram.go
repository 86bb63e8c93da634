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

package memory

import (
	"encoding/hex"
	"fmt"
)

// RAM is a simple read/write area of memory.
type RAM struct {
	label  string
	origin uint16
	data   []uint8

	// addresses beyond the end of the RAM wrap around to the start. if
	// false, those addresses read as 0xff and ignore writes
	mirror bool
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(label string, origin uint16, size int, mirror bool) *RAM {
	return &RAM{
		label:  label,
		origin: origin,
		data:   make([]uint8, size),
		mirror: mirror,
	}
}

func (ram *RAM) String() string {
	return ram.label
}

// Dump returns a hex dump of the RAM contents.
func (ram *RAM) Dump() string {
	return fmt.Sprintf("%s (origin %04x)\n%s", ram.label, ram.origin, hex.Dump(ram.data))
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

func (ram *RAM) index(address uint16) (int, bool) {
	idx := int(address - ram.origin)
	if idx < len(ram.data) {
		return idx, true
	}
	if ram.mirror {
		return idx % len(ram.data), true
	}
	return 0, false
}

// Load8 implements the bus.Memory interface.
func (ram *RAM) Load8(address uint16) uint8 {
	if idx, ok := ram.index(address); ok {
		return ram.data[idx]
	}
	return 0xff
}

// Store8 implements the bus.Memory interface.
func (ram *RAM) Store8(address uint16, data uint8) {
	if idx, ok := ram.index(address); ok {
		ram.data[idx] = data
	}
}

// Peek implements the bus.DebuggerBus interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.Load8(address), nil
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.Store8(address, value)
	return nil
}

// PhysicalAddress implements the bus.PhysicalMapper interface. Mirrored
// addresses report the physical address of the primary address.
func (ram *RAM) PhysicalAddress(address uint16) uint64 {
	if idx, ok := ram.index(address); ok {
		return uint64(ram.origin) + uint64(idx)
	}
	return uint64(address)
}
