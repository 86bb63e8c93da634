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

// Package mmu implements the address router. The full 16bit address range is
// split into blocks of a fixed size. Each block has an entry in the read table
// and an entry in the write table. An entry refers to the memory area that
// services the access.
//
// Memory areas are added to the router with the Map() function. A single
// memory area can be mapped more than once, for example to create a mirror.
//
//	r, _ := mmu.NewRouter(0x100)
//	r.Map(wram, mmu.Mapping{Start: 0xc000, Size: 0x2000, Access: mmu.ReadWrite})
//	r.Map(wram, mmu.Mapping{Start: 0xe000, Size: 0x1e00, Access: mmu.ReadWrite})
//
// A load from an address with no mapping returns 0xff. A store to an address
// with no mapping is ignored.
//
// The router performs no synchronisation.
package mmu
