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

package debugger

import (
	"github.com/gopherdmg/gopherdmg/hardware/cpu/instructions"
	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/logger"
)

// Space defines the memory operations required to install traps. The Space
// type in the bus package satisfies this interface.
type Space interface {
	Load8(address uint16) uint8
	PhysicalAddress(address uint16) uint64
	Replace8(address uint16, value uint8) error
	Restore8(address uint16) error
	GetReplaced8(address uint16) (uint8, bool)
	IsReplaced(phys uint64) bool
}

// traps puts the trap opcode in memory at every address with an Execution
// condition. the real byte is kept by the Space and restored when no
// breakpoint needs the trap.
//
// traps are installed in the memory cell currently mapped to the address.
// when the mapping changes (a bank switch) the cell newly mapped to the
// address also receives a trap. cells that are no longer needed are restored
// when they are next visible.
type traps struct {
	space Space

	// number of Execution conditions for each address
	refs map[uint16]int

	// cells containing a trap installed by this type, keyed by physical id.
	// the value is a logical address that reached the cell when the trap was
	// installed
	cells map[uint64]uint16
}

func newTraps(space Space) *traps {
	return &traps{
		space: space,
		refs:  make(map[uint16]int),
		cells: make(map[uint64]uint16),
	}
}

// canTrap returns false for addresses where writing the trap opcode would
// change the state of the hardware. the IO registers and the IE register
func canTrap(address uint16) bool {
	_, area := memorymap.MapAddress(address)
	return area != memorymap.IO && area != memorymap.IE
}

// add a reference to the address.
func (tr *traps) add(address uint16) {
	if !canTrap(address) {
		_, area := memorymap.MapAddress(address)
		logger.Logf(logger.Allow, "traps", "no trap for %04x in %s area", address, area)
		return
	}
	tr.refs[address]++
	tr.sync()
}

// remove a reference to the address.
func (tr *traps) remove(address uint16) {
	if !canTrap(address) {
		return
	}
	tr.refs[address]--
	if tr.refs[address] <= 0 {
		delete(tr.refs, address)
	}
	tr.sync()
}

// isTrap returns true if the byte at the address is a trap installed by
// this type.
func (tr *traps) isTrap(address uint16) bool {
	_, ok := tr.cells[tr.space.PhysicalAddress(address)]
	return ok && tr.space.Load8(address) == instructions.TrapOpcode
}

// suspend removes the trap at the address until the next call to sync().
func (tr *traps) suspend(address uint16) {
	phys := tr.space.PhysicalAddress(address)
	if _, ok := tr.cells[phys]; !ok {
		return
	}
	if err := tr.space.Restore8(address); err != nil {
		logger.Log(logger.Allow, "traps", err)
		return
	}
	delete(tr.cells, phys)
}

// sync makes sure that every referenced address has a trap in the cell
// currently mapped to it and that every visible cell that is not needed has
// its real byte restored.
func (tr *traps) sync() {
	wanted := make(map[uint64]bool, len(tr.refs))

	for address := range tr.refs {
		phys := tr.space.PhysicalAddress(address)
		wanted[phys] = true

		if _, ok := tr.cells[phys]; ok {
			continue // for loop
		}

		// replacements not made by this type are left alone
		if tr.space.IsReplaced(phys) {
			continue // for loop
		}

		if err := tr.space.Replace8(address, instructions.TrapOpcode); err != nil {
			logger.Log(logger.Allow, "traps", err)
			continue // for loop
		}
		tr.cells[phys] = address
	}

	for phys, address := range tr.cells {
		if wanted[phys] {
			continue // for loop
		}

		// a cell can only be restored through an address that currently
		// reaches it. cells in other banks wait until they are visible
		if tr.space.PhysicalAddress(address) != phys {
			continue // for loop
		}

		if err := tr.space.Restore8(address); err != nil {
			logger.Log(logger.Allow, "traps", err)
			continue // for loop
		}
		delete(tr.cells, phys)
	}
}

// restoreVisible restores the real byte of every visible cell. Used before
// a reset. the traps are reinstalled by the next call to sync().
func (tr *traps) restoreVisible() {
	for phys, address := range tr.cells {
		if tr.space.PhysicalAddress(address) != phys {
			continue // for loop
		}
		if err := tr.space.Restore8(address); err != nil {
			logger.Log(logger.Allow, "traps", err)
			continue // for loop
		}
		delete(tr.cells, phys)
	}
}
