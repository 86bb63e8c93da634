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

package preferences_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaskFlagNibble.Get().(bool), true)
	test.ExpectEquality(t, p.RouterBlockSize.Get().(int), 0x100)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.strict::true; mmu.blocksize::0x40")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StrictOpcodes.Get().(bool), true)
	test.ExpectEquality(t, p.RouterBlockSize.Get().(int), 0x40)
}

func TestBlockSizeValidation(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, p.RouterBlockSize.Set(0x300))
	test.ExpectFailure(t, p.RouterBlockSize.Set(0x8))
	test.ExpectFailure(t, p.RouterBlockSize.Set(0x1000))
	test.ExpectSuccess(t, p.RouterBlockSize.Set(0x40))
	test.ExpectEquality(t, p.RouterBlockSize.Get().(int), 0x40)
}
