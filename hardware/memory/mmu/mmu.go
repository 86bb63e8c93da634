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

package mmu

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/hardware/memory/bus"
)

// Sentinel error patterns.
const (
	BadBlockSize = "mmu: block size must be a power of two (%#x)"
	BadMapping   = "mmu: bad mapping: %v"
	Unmapped     = "mmu: no memory mapped at address %#04x"
)

// OpenBus is the value returned by a load from an unmapped address.
const OpenBus = uint8(0xff)

// the size of the address space
const addressSpace = 0x10000

// Access specifies which of the tables a mapping is added to.
type Access int

// List of valid Access values.
const (
	Read Access = 1 << iota
	Write

	ReadWrite = Read | Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "r"
	case Write:
		return "w"
	case ReadWrite:
		return "rw"
	}
	return "-"
}

// Mapping describes the range of addresses of a call to Map().
type Mapping struct {
	Start  uint16
	Size   int
	Access Access
}

func (m Mapping) String() string {
	return fmt.Sprintf("%04x+%#x (%s)", m.Start, m.Size, m.Access)
}

// Router maps addresses to the memory area that services them.
type Router struct {
	blockSize int
	shift     int

	read  []bus.Memory
	write []bus.Memory
}

// NewRouter is the preferred method of initialisation for the Router type. The
// block size must be a power of two no bigger than the address space.
func NewRouter(blockSize int) (*Router, error) {
	if blockSize <= 0 || blockSize > addressSpace || blockSize&(blockSize-1) != 0 {
		return nil, curated.Errorf(BadBlockSize, blockSize)
	}

	n := addressSpace / blockSize

	return &Router{
		blockSize: blockSize,
		shift:     bits.TrailingZeros(uint(blockSize)),
		read:      make([]bus.Memory, n),
		write:     make([]bus.Memory, n),
	}, nil
}

// BlockSize returns the block size used by the router.
func (r *Router) BlockSize() int {
	return r.blockSize
}

func (r *Router) block(address uint16) int {
	return int(address) >> r.shift
}

// blocks returns the first and last block covered by the mapping.
func (r *Router) blocks(m Mapping) (int, int, error) {
	if m.Size <= 0 {
		return 0, 0, curated.Errorf(BadMapping, fmt.Sprintf("size of mapping must be positive (%s)", m))
	}
	if int(m.Start)+m.Size > addressSpace {
		return 0, 0, curated.Errorf(BadMapping, fmt.Sprintf("mapping extends beyond address space (%s)", m))
	}

	// the last block is the block containing the last address of the mapping
	last := (int(m.Start) + m.Size - 1) >> r.shift

	return r.block(m.Start), last, nil
}

// Map the memory area to every block that intersects with the mapping. Earlier
// mappings of the same blocks are replaced.
func (r *Router) Map(mem bus.Memory, m Mapping) error {
	first, last, err := r.blocks(m)
	if err != nil {
		return err
	}

	for b := first; b <= last; b++ {
		if m.Access&Read == Read {
			r.read[b] = mem
		}
		if m.Access&Write == Write {
			r.write[b] = mem
		}
	}

	return nil
}

// Unmap removes any memory area from the blocks intersecting the mapping.
func (r *Router) Unmap(m Mapping) error {
	first, last, err := r.blocks(m)
	if err != nil {
		return err
	}

	for b := first; b <= last; b++ {
		if m.Access&Read == Read {
			r.read[b] = nil
		}
		if m.Access&Write == Write {
			r.write[b] = nil
		}
	}

	return nil
}

// Lookup returns the memory areas for the address in the read and write
// tables. Either may be nil.
func (r *Router) Lookup(address uint16) (bus.Memory, bus.Memory) {
	b := r.block(address)
	return r.read[b], r.write[b]
}

// Load8 implements the bus.Memory interface.
func (r *Router) Load8(address uint16) uint8 {
	mem := r.read[r.block(address)]
	if mem == nil {
		return OpenBus
	}
	return mem.Load8(address)
}

// Store8 implements the bus.Memory interface.
func (r *Router) Store8(address uint16, data uint8) {
	mem := r.write[r.block(address)]
	if mem == nil {
		return
	}
	mem.Store8(address, data)
}

// PhysicalAddress implements the bus.PhysicalMapper interface. The memory area
// in the read table decides the physical address.
func (r *Router) PhysicalAddress(address uint16) uint64 {
	mem := r.read[r.block(address)]
	if mem == nil {
		return uint64(address)
	}
	return bus.PhysicalAddress(mem, address)
}

// Peek implements the bus.DebuggerBus interface.
func (r *Router) Peek(address uint16) (uint8, error) {
	mem := r.read[r.block(address)]
	if mem == nil {
		return OpenBus, curated.Errorf(Unmapped, address)
	}
	return bus.Peek(mem, address)
}

// Poke implements the bus.DebuggerBus interface. The memory area in the read
// table is poked so that read-only areas can be changed.
func (r *Router) Poke(address uint16, value uint8) error {
	mem := r.read[r.block(address)]
	if mem == nil {
		mem = r.write[r.block(address)]
	}
	if mem == nil {
		return curated.Errorf(Unmapped, address)
	}
	return bus.Poke(mem, address, value)
}

// String returns a summary of the block tables. Consecutive blocks with the
// same memory areas are collapsed into a single line.
func (r *Router) String() string {
	s := strings.Builder{}

	start := 0
	for b := 1; b <= len(r.read); b++ {
		if b < len(r.read) && r.read[b] == r.read[start] && r.write[b] == r.write[start] {
			continue
		}
		s.WriteString(fmt.Sprintf("%04x -> %04x\tr:%s w:%s\n",
			start*r.blockSize, b*r.blockSize-1,
			label(r.read[start]), label(r.write[start])))
		start = b
	}

	return s.String()
}

func label(mem bus.Memory) string {
	if mem == nil {
		return "-"
	}
	if s, ok := mem.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", mem)
}
