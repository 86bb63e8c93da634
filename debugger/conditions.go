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
	"strings"

	"github.com/gopherdmg/gopherdmg/notifications"
)

// Event is a hardware event that can be used as a breakpoint condition.
type Event int

// List of valid Event values.
const (
	EventInterrupt Event = iota
	EventBankSwitch
	EventHalt
	EventUnimplemented
	NumEvents
)

func (ev Event) String() string {
	switch ev {
	case EventInterrupt:
		return "interrupt"
	case EventBankSwitch:
		return "bankswitch"
	case EventHalt:
		return "halt"
	case EventUnimplemented:
		return "unimplemented"
	}
	return "unknown event"
}

// ParseEvent returns the Event with the name. The comparison is not case
// sensitive.
func ParseEvent(s string) (Event, bool) {
	s = strings.ToLower(s)
	for ev := Event(0); ev < NumEvents; ev++ {
		if ev.String() == s {
			return ev, true
		}
	}
	return NumEvents, false
}

// the event for each notification
var noticeEvents = map[notifications.Notice]Event{
	notifications.NotifyInterruptServiced:   EventInterrupt,
	notifications.NotifyBankSwitched:        EventBankSwitch,
	notifications.NotifyHaltEntered:         EventHalt,
	notifications.NotifyUnimplementedOpcode: EventUnimplemented,
}

// ConditionKind distinguishes the two types of Condition.
type ConditionKind int

// List of valid ConditionKind values.
const (
	Execution ConditionKind = iota
	OnEvent
)

// Condition is a single condition of a breakpoint. An Execution condition
// matches when the instruction at the address is about to be executed. An
// OnEvent condition matches when the event happens.
type Condition struct {
	Kind    ConditionKind
	Address uint16
	Event   Event
}

// ExecutionAt returns an Execution condition for the address.
func ExecutionAt(address uint16) Condition {
	return Condition{Kind: Execution, Address: address}
}

// EventOf returns an OnEvent condition for the event.
func EventOf(ev Event) Condition {
	return Condition{Kind: OnEvent, Event: ev}
}

func (c Condition) String() string {
	if c.Kind == Execution {
		return fmt.Sprintf("exec@%04x", c.Address)
	}
	return fmt.Sprintf("event@%s", c.Event)
}

// Description is the ordered list of conditions of a breakpoint. A breakpoint
// is matched if any one of its conditions is matched.
type Description []Condition

func (d Description) String() string {
	s := make([]string, len(d))
	for i, c := range d {
		s[i] = c.String()
	}
	return strings.Join(s, ", ")
}
