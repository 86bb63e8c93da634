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

//go:build !windows
// +build !windows

// Package easyterm implements the Terminal interface with a posix terminal
// in cbreak mode. Every call to TermRead() returns a single key without
// waiting for the return key. Output is styled with ANSI codes.
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/terminal"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// KeyTerminal is the single key terminal.
type KeyTerminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	silenced bool

	// TermPrintLine() can be called from the signal handler goroutine of the
	// host tool
	mu sync.Mutex
}

// Initialise implements the terminal.Terminal interface. The terminal is
// put into cbreak mode.
func (kt *KeyTerminal) Initialise() error {
	kt.input = os.Stdin
	kt.output = os.Stdout

	if !term.IsTerminal(int(kt.input.Fd())) {
		return fmt.Errorf("easyterm: input is not a terminal")
	}

	if err := termios.Tcgetattr(kt.input.Fd(), &kt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	kt.cbreakAttr = kt.canAttr
	kt.cbreakAttr.Lflag &^= unix.ICANON | unix.ECHO
	kt.cbreakAttr.Cc[unix.VMIN] = 1
	kt.cbreakAttr.Cc[unix.VTIME] = 0

	kt.CBreakMode()

	return nil
}

// CleanUp implements the terminal.Terminal interface. The terminal is
// returned to canonical mode.
func (kt *KeyTerminal) CleanUp() {
	if kt.input == nil {
		return
	}
	kt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (kt *KeyTerminal) CanonicalMode() {
	_ = termios.Tcsetattr(kt.input.Fd(), termios.TCSANOW, &kt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (kt *KeyTerminal) CBreakMode() {
	_ = termios.Tcsetattr(kt.input.Fd(), termios.TCSANOW, &kt.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (kt *KeyTerminal) Flush() error {
	return termios.Tcflush(kt.input.Fd(), termios.TCIFLUSH)
}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {
	kt.silenced = silenced
}

// IsRealTerminal implements the terminal.Input interface.
func (kt *KeyTerminal) IsRealTerminal() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {
	if kt.silenced && style != terminal.StyleError {
		return
	}

	kt.mu.Lock()
	defer kt.mu.Unlock()

	switch style {
	case terminal.StyleEcho:
		s = fmt.Sprintf("%s%s%s", penDimWhite, s, penReset)
	case terminal.StyleInstrument:
		s = fmt.Sprintf("%s%s%s", penCyan, s, penReset)
	case terminal.StyleFeedback:
		s = fmt.Sprintf("%s%s%s", penBold, s, penReset)
	case terminal.StyleError:
		s = fmt.Sprintf("%s* %s%s", penRed, s, penReset)
	}

	kt.output.WriteString(s)
	kt.output.WriteString("\n")
}

// TermRead implements the terminal.Input interface. The prompt is printed
// and a single key is read. Escape sequences are consumed and returned as a
// single string.
func (kt *KeyTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	kt.mu.Lock()
	kt.output.WriteString(prompt.String())
	kt.mu.Unlock()

	defer func() {
		kt.mu.Lock()
		kt.output.WriteString("\n")
		kt.mu.Unlock()
	}()

	b := make([]byte, 8)
	n, err := kt.input.Read(b)
	if err != nil {
		return "", err
	}

	if events != nil {
		select {
		case sig := <-events.Signal:
			return "", events.SignalHandler(sig)
		default:
		}
	}

	switch b[0] {
	case KeyInterrupt:
		return "", curated.Errorf(terminal.UserInterrupt)
	case KeySuspend:
		return "", curated.Errorf(terminal.UserAbort)
	case KeyReturn, KeyLineFeed:
		return "\n", nil
	}

	return string(b[:n]), nil
}
