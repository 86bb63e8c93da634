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

// Package memorymap describes the logical address map of the console. The
// MapAddress() function should be used to find which area an address belongs
// to and the address normalised to the start of that area.
//
//	ma, area := memorymap.MapAddress(address)
//
// The echo area is a mirror of the first part of work RAM. MapAddress()
// reports addresses in the echo area as belonging to WRAM, with the address
// normalised accordingly.
package memorymap
