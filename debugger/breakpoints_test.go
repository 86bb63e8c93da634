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

package debugger_test

import (
	"testing"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/test"
)

func TestBreakpointLifecycle(t *testing.T) {
	bp := debugger.NewBreakpoints()

	h := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0150)})
	test.ExpectEquality(t, h.IsNull(), false)
	test.ExpectEquality(t, bp.GetBreakpointCount(), 1)

	hs := bp.GetExecutionBreakpoints(0x0150)
	test.DemandEquality(t, len(hs), 1)
	test.ExpectEquality(t, hs[0], h)

	bp.DestroyBreakpoint(h)
	test.ExpectEquality(t, bp.GetBreakpointCount(), 0)
	test.ExpectEquality(t, len(bp.GetExecutionBreakpoints(0x0150)), 0)
	test.ExpectEquality(t, bp.IndexSize(), 0)
	test.ExpectEquality(t, len(bp.Addresses()), 0)
}

func TestNullHandle(t *testing.T) {
	bp := debugger.NewBreakpoints()
	var h debugger.Handle
	test.ExpectEquality(t, h.IsNull(), true)
	test.ExpectEquality(t, bp.IsValid(h), false)

	// destroying the null handle is not an error
	bp.DestroyBreakpoint(h)
	test.ExpectEquality(t, bp.GetBreakpointCount(), 0)
}

func TestStaleHandle(t *testing.T) {
	bp := debugger.NewBreakpoints()

	a := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0100)})
	bp.DestroyBreakpoint(a)

	// the slot is reused with a different generation
	b := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0200)})
	test.ExpectInequality(t, a, b)
	test.ExpectEquality(t, bp.IsValid(a), false)
	test.ExpectEquality(t, bp.IsValid(b), true)

	r := test.ExpectPanic(t, func() { bp.DestroyBreakpoint(a) })
	if err, ok := r.(error); ok {
		test.ExpectEquality(t, curated.Is(err, debugger.InvalidHandle), true)
	} else {
		t.Errorf("panic value is not an error: %v", r)
	}

	// the store is unaffected by the failed destruction
	test.ExpectEquality(t, bp.GetBreakpointCount(), 1)
	test.ExpectEquality(t, bp.HasAddress(0x0200), true)
}

func TestCompaction(t *testing.T) {
	bp := debugger.NewBreakpoints()

	a := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0100)})
	b := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0200)})
	c := bp.CreateBreakpoint(debugger.Description{debugger.EventOf(debugger.EventHalt)})

	bp.DestroyBreakpoint(a)

	hs := bp.Handles()
	test.DemandEquality(t, len(hs), 2)
	test.ExpectEquality(t, hs[0], b)
	test.ExpectEquality(t, hs[1], c)

	d, ok := bp.Get(b)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.String(), "exec@0200")

	d, ok = bp.Get(c)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.String(), "event@halt")

	_, ok = bp.Get(a)
	test.ExpectFailure(t, ok)

	// destroy the last record and then the first
	bp.DestroyBreakpoint(c)
	bp.DestroyBreakpoint(b)
	test.ExpectEquality(t, bp.GetBreakpointCount(), 0)
}

func TestMultipleConditions(t *testing.T) {
	bp := debugger.NewBreakpoints()

	a := bp.CreateBreakpoint(debugger.Description{
		debugger.ExecutionAt(0x0100),
		debugger.ExecutionAt(0x0200),
		debugger.EventOf(debugger.EventInterrupt),
	})
	b := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0200)})

	test.ExpectEquality(t, bp.IndexSize(), 3)
	test.ExpectEquality(t, len(bp.GetExecutionBreakpoints(0x0100)), 1)
	test.ExpectEquality(t, len(bp.GetExecutionBreakpoints(0x0200)), 2)

	hs := bp.GetEventBreakpoints(debugger.EventInterrupt)
	test.DemandEquality(t, len(hs), 1)
	test.ExpectEquality(t, hs[0], a)
	test.ExpectEquality(t, len(bp.GetEventBreakpoints(debugger.EventHalt)), 0)

	addrs := bp.Addresses()
	test.DemandEquality(t, len(addrs), 2)
	test.ExpectEquality(t, addrs[0], uint16(0x0100))
	test.ExpectEquality(t, addrs[1], uint16(0x0200))

	bp.DestroyBreakpoint(a)
	test.ExpectEquality(t, bp.IndexSize(), 1)
	hs = bp.GetExecutionBreakpoints(0x0200)
	test.DemandEquality(t, len(hs), 1)
	test.ExpectEquality(t, hs[0], b)
	test.ExpectEquality(t, len(bp.GetExecutionBreakpoints(0x0100)), 0)
}

func TestHooks(t *testing.T) {
	bp := debugger.NewBreakpoints()

	var created, destroyed []debugger.Handle
	bp.SetHooks(func(h debugger.Handle, _ debugger.Description) {
		created = append(created, h)
	}, func(h debugger.Handle, _ debugger.Description) {
		// the breakpoint is still in the store when the hook is called
		test.ExpectEquality(t, bp.IsValid(h), true)
		destroyed = append(destroyed, h)
	})

	a := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0100)})
	b := bp.CreateBreakpoint(debugger.Description{debugger.ExecutionAt(0x0100)})
	bp.Clear()

	test.DemandEquality(t, len(created), 2)
	test.ExpectEquality(t, created[0], a)
	test.ExpectEquality(t, created[1], b)
	test.DemandEquality(t, len(destroyed), 2)
	test.ExpectEquality(t, destroyed[0], b)
	test.ExpectEquality(t, destroyed[1], a)
	test.ExpectEquality(t, bp.GetBreakpointCount(), 0)
}

func TestParseEvent(t *testing.T) {
	ev, ok := debugger.ParseEvent("BankSwitch")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, debugger.EventBankSwitch)

	_, ok = debugger.ParseEvent("vblank")
	test.ExpectFailure(t, ok)
}
