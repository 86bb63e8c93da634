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

package terminal

import (
	"os"
	"strings"
)

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to display the different styles in different ways.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user
	StyleEcho Style = iota

	// information about the state of the emulation. registers, disassembly
	StyleInstrument

	// feedback from the debugger about a command or about why the emulation
	// has stopped
	StyleFeedback

	// information that should always be shown
	StyleError
)

// Prompt specifies the prompt text and whether the debugger is stepping.
type Prompt struct {
	// the content. usually the disassembly of the next instruction
	Content string

	// the debugger is waiting for a single key
	Stepping bool
}

// String returns the prompt with standard decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")
	if p.Stepping {
		s.WriteString(" >> ")
	} else {
		s.WriteString(" > ")
	}
	return s.String()
}

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal chan os.Signal

	// called with any signal received during TermRead(). the returned error
	// is returned by TermRead()
	SignalHandler func(os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next input from the user. For line based terminals
	// this is a line of text without the trailing newline. For key based
	// terminals this is a single key.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsRealTerminal returns true if the input and output are both
	// connected to a terminal device.
	IsRealTerminal() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}
