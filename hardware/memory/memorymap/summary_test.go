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

package memorymap_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/memory/memorymap"
	"github.com/gopherdmg/gopherdmg/test"
)

const validMemMap = `0000 -> 7fff	Cartridge
8000 -> 9fff	VRAM
a000 -> bfff	CartridgeRAM
c000 -> dfff	WRAM
e000 -> fdff	WRAM (echo)
fe00 -> fe9f	OAM
fea0 -> feff	Unusable
ff00 -> ff7f	IO
ff80 -> fffe	HRAM
ffff -> ffff	IE
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	ma, area := memorymap.MapAddress(0x4123)
	test.ExpectEquality(t, ma, uint16(0x4123))
	test.ExpectEquality(t, area, memorymap.Cartridge)

	ma, area = memorymap.MapAddress(0xe010)
	test.ExpectEquality(t, ma, uint16(0x0010))
	test.ExpectEquality(t, area, memorymap.WRAM)

	ma, area = memorymap.MapAddress(0xff85)
	test.ExpectEquality(t, ma, uint16(0x0005))
	test.ExpectEquality(t, area, memorymap.HRAM)

	_, area = memorymap.MapAddress(0xffff)
	test.ExpectEquality(t, area, memorymap.IE)

	test.ExpectSuccess(t, memorymap.IsArea(0xa000, memorymap.CartridgeRAM))
	test.ExpectSuccess(t, memorymap.IsEcho(0xfdff))
	test.ExpectFailure(t, memorymap.IsEcho(0xfe00))
}
