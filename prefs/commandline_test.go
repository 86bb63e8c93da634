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

package prefs_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// additional space is trimmed
	prefs.PushCommandLineStack("   foo:: bar ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// remaining string is sorted
	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// invalid entries are ignored
	prefs.PushCommandLineStack("foo_bar")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("foo_bar;baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")

	prefs.PushCommandLineStack("foo::bar;baz_qux")
	ok, _ := prefs.GetCommandLinePref("baz")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}

func TestGroup(t *testing.T) {
	g := prefs.NewGroup()
	strict := prefs.NewBool(false)
	size := prefs.NewInt(0x100)
	test.DemandSuccess(t, g.Add("cpu.strict", strict))
	test.DemandSuccess(t, g.Add("mmu.blocksize", size))
	test.ExpectFailure(t, g.Add("cpu.strict", strict))

	prefs.PushCommandLineStack("cpu.strict::TRUE; mmu.blocksize::0x400; unknown::1")
	test.DemandSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, strict.Get().(bool), true)
	test.ExpectEquality(t, size.Get().(int), 0x400)

	// only the unknown key remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unknown::1")

	test.DemandSuccess(t, g.Reset())
	test.ExpectEquality(t, strict.Get().(bool), false)
	test.ExpectEquality(t, size.Get().(int), 0x100)
}

func TestHooks(t *testing.T) {
	var seen int
	p := prefs.NewInt(1)
	p.SetHookPost(func(v prefs.Value) error {
		seen = v.(int)
		return nil
	})
	test.DemandSuccess(t, p.Set("42"))
	test.ExpectEquality(t, seen, 42)
	test.ExpectFailure(t, p.Set("not a number"))
	test.ExpectEquality(t, p.String(), "42")
}
