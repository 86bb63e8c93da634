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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising can be used when reinitialising the emulator. for example, when
// a new cartridge is being inserted.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Reason records why the emulation stopped running.
type Reason int

// List of reasons for the emulation to stop running.
const (
	// the emulation has not stopped
	NoReason Reason = iota

	// the instruction limit was reached
	Limit

	// an execution or event breakpoint was matched
	Breakpoint

	// the CPU encountered an instruction with no implementation
	Unimplemented

	// the continue check function requested the end of the emulation
	Ended
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "none"
	case Limit:
		return "limit"
	case Breakpoint:
		return "breakpoint"
	case Unimplemented:
		return "unimplemented"
	case Ended:
		return "ended"
	}
	return ""
}
