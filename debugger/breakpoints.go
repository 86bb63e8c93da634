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
	"fmt"
	"sort"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/logger"
)

// InvalidHandle is the panic payload when a handle that does not refer to a
// live breakpoint is destroyed.
const InvalidHandle = "debugger: invalid breakpoint handle (%v)"

// Handle identifies a breakpoint. The zero value is the null handle and never
// identifies a breakpoint.
//
// A handle is valid from the CreateBreakpoint() call that returned it until
// the matching DestroyBreakpoint() call. A slot may be reused after a
// breakpoint is destroyed but the generation will differ, so the old handle
// will never match the new breakpoint.
type Handle struct {
	slot       uint32
	generation uint32
}

// IsNull returns true if the handle is the null handle.
func (h Handle) IsNull() bool {
	return h.generation == 0
}

func (h Handle) String() string {
	if h.IsNull() {
		return "null"
	}
	return fmt.Sprintf("#%d.%d", h.slot, h.generation)
}

// slot in the arena. the index field is the position of the record in the
// dense store, or -1 if the slot is free
type slot struct {
	generation uint32
	index      int
}

type record struct {
	handle Handle
	desc   Description
}

// Breakpoints is the store of breakpoint records. Records are kept densely
// packed in creation order. Execution conditions are indexed by address.
type Breakpoints struct {
	slots []slot
	free  []uint32

	records []record

	// one entry for every Execution condition of every live breakpoint
	addresses map[uint16][]Handle

	onCreate  func(Handle, Description)
	onDestroy func(Handle, Description)
}

// NewBreakpoints is the preferred method of initialisation for the
// Breakpoints type.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{
		addresses: make(map[uint16][]Handle),
	}
}

// SetHooks sets the functions to call when a breakpoint is created and when a
// breakpoint is destroyed. The destroy hook is called before the breakpoint
// is removed from the store. Either function can be nil.
func (bp *Breakpoints) SetHooks(onCreate func(Handle, Description), onDestroy func(Handle, Description)) {
	bp.onCreate = onCreate
	bp.onDestroy = onDestroy
}

// CreateBreakpoint adds a new breakpoint with the description and returns its
// handle.
func (bp *Breakpoints) CreateBreakpoint(desc Description) Handle {
	var s uint32
	if n := len(bp.free); n > 0 {
		s = bp.free[n-1]
		bp.free = bp.free[:n-1]
	} else {
		s = uint32(len(bp.slots))
		bp.slots = append(bp.slots, slot{generation: 1})
	}

	h := Handle{slot: s, generation: bp.slots[s].generation}

	d := make(Description, len(desc))
	copy(d, desc)

	bp.records = append(bp.records, record{handle: h, desc: d})
	bp.slots[s].index = len(bp.records) - 1

	for _, c := range d {
		if c.Kind == Execution {
			bp.addresses[c.Address] = append(bp.addresses[c.Address], h)
		}
	}

	logger.Logf(logger.Allow, "breakpoints", "created %s: %s", h, d)

	if bp.onCreate != nil {
		bp.onCreate(h, d)
	}

	return h
}

// IsValid returns true if the handle refers to a live breakpoint.
func (bp *Breakpoints) IsValid(h Handle) bool {
	if h.IsNull() || int(h.slot) >= len(bp.slots) {
		return false
	}
	s := bp.slots[h.slot]
	return s.generation == h.generation && s.index >= 0
}

// DestroyBreakpoint removes the breakpoint. The null handle is ignored. A
// handle that is not null and does not refer to a live breakpoint causes a
// panic.
func (bp *Breakpoints) DestroyBreakpoint(h Handle) {
	if h.IsNull() {
		return
	}

	if !bp.IsValid(h) {
		panic(curated.Errorf(InvalidHandle, h))
	}

	idx := bp.slots[h.slot].index
	rec := bp.records[idx]

	if bp.onDestroy != nil {
		bp.onDestroy(h, rec.desc)
	}

	for _, c := range rec.desc {
		if c.Kind == Execution {
			bp.unindex(c.Address, h)
		}
	}

	// the store is compacted so every record after this one moves down
	for _, r := range bp.records[idx+1:] {
		bp.slots[r.handle.slot].index--
	}
	bp.records = append(bp.records[:idx], bp.records[idx+1:]...)

	bp.slots[h.slot].index = -1
	bp.slots[h.slot].generation++
	if bp.slots[h.slot].generation == 0 {
		bp.slots[h.slot].generation = 1
	}
	bp.free = append(bp.free, h.slot)

	logger.Logf(logger.Allow, "breakpoints", "destroyed %s: %s", h, rec.desc)
}

// remove one entry for the handle from the address index
func (bp *Breakpoints) unindex(address uint16, h Handle) {
	hs := bp.addresses[address]
	for i := range hs {
		if hs[i] == h {
			hs = append(hs[:i], hs[i+1:]...)
			break // for loop
		}
	}
	if len(hs) == 0 {
		delete(bp.addresses, address)
	} else {
		bp.addresses[address] = hs
	}
}

// Clear destroys every breakpoint. The destroy hook is called for each one.
func (bp *Breakpoints) Clear() {
	for len(bp.records) > 0 {
		bp.DestroyBreakpoint(bp.records[len(bp.records)-1].handle)
	}
}

// GetBreakpointCount returns the number of live breakpoints.
func (bp *Breakpoints) GetBreakpointCount() int {
	return len(bp.records)
}

// Get returns the description of the breakpoint. The boolean is false if the
// handle is not valid.
func (bp *Breakpoints) Get(h Handle) (Description, bool) {
	if !bp.IsValid(h) {
		return nil, false
	}
	return bp.records[bp.slots[h.slot].index].desc, true
}

// Handles returns the handle of every live breakpoint in creation order.
func (bp *Breakpoints) Handles() []Handle {
	hs := make([]Handle, len(bp.records))
	for i, r := range bp.records {
		hs[i] = r.handle
	}
	return hs
}

// GetExecutionBreakpoints returns the handle of every breakpoint with an
// Execution condition for the address. A handle is listed once even if the
// breakpoint has more than one condition for the address.
func (bp *Breakpoints) GetExecutionBreakpoints(address uint16) []Handle {
	var hs []Handle
	for _, h := range bp.addresses[address] {
		dup := false
		for _, e := range hs {
			if e == h {
				dup = true
				break // for loop
			}
		}
		if !dup {
			hs = append(hs, h)
		}
	}
	return hs
}

// GetEventBreakpoints returns the handle of every breakpoint with a condition
// for the event.
func (bp *Breakpoints) GetEventBreakpoints(ev Event) []Handle {
	var hs []Handle
	for _, r := range bp.records {
		for _, c := range r.desc {
			if c.Kind == OnEvent && c.Event == ev {
				hs = append(hs, r.handle)
				break // for loop
			}
		}
	}
	return hs
}

// Addresses returns every address in the address index in ascending order.
func (bp *Breakpoints) Addresses() []uint16 {
	as := make([]uint16, 0, len(bp.addresses))
	for a := range bp.addresses {
		as = append(as, a)
	}
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	return as
}

// HasAddress returns true if the address is in the address index.
func (bp *Breakpoints) HasAddress(address uint16) bool {
	_, ok := bp.addresses[address]
	return ok
}

// IndexSize returns the number of entries in the address index.
func (bp *Breakpoints) IndexSize() int {
	n := 0
	for _, hs := range bp.addresses {
		n += len(hs)
	}
	return n
}

func (bp *Breakpoints) String() string {
	if len(bp.records) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, r := range bp.records {
		s.WriteString(fmt.Sprintf("% 2d: %s %s\n", i, r.handle, r.desc))
	}
	return s.String()
}
