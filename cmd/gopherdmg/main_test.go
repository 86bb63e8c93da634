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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherdmg/gopherdmg/test"
)

// a 32k cartridge with no memory controller. the program increments the A
// register forever
func writeROM(t *testing.T, patch map[int]uint8) string {
	t.Helper()

	data := make([]byte, 0x8000)
	copy(data[0x100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x134:], "LAUNCH")

	// 0150 INC A
	// 0151 JR -3
	copy(data[0x150:], []uint8{0x3c, 0x18, 0xfd})

	for a, v := range patch {
		data[a] = v
	}

	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func runLaunch(args []string, input string) (int, string) {
	w := &test.CompareWriter{}
	intChan := make(chan os.Signal, 1)
	r := launch(args, strings.NewReader(input), w, intChan)
	return r, w.String()
}

func TestHelp(t *testing.T) {
	r, out := runLaunch([]string{"-help"}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "STEP"))
}

func TestRunLimit(t *testing.T) {
	r, out := runLaunch([]string{"RUN", "-limit", "5", writeROM(t, nil)}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "limit after 5 instructions"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=0151"))
}

func TestRunBreakpoint(t *testing.T) {
	// the mode is not named so the default mode is used
	r, out := runLaunch([]string{"-break", "$0151", writeROM(t, nil)}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "breakpoint after 3 instructions"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=0151"))
}

func TestRunBreakpointAtStart(t *testing.T) {
	r, out := runLaunch([]string{"RUN", "-break", "0100,0150", writeROM(t, nil)}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "breakpoint after 2 instructions"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=0150"))
}

func TestRunUnimplemented(t *testing.T) {
	rom := writeROM(t, map[int]uint8{0x150: 0xdb})
	r, out := runLaunch([]string{"RUN", "-prefs", "cpu.strict::false", rom}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "unimplemented after 3 instructions"))
}

func TestRunMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "breakpoints.dot")
	r, _ := runLaunch([]string{"RUN", "-limit", "1", "-break", "0150", "-memviz", fn, writeROM(t, nil)}, "")
	test.ExpectEquality(t, r, exitOK)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestModeErrors(t *testing.T) {
	r, out := runLaunch([]string{"RUN"}, "")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "* error in RUN mode"))

	r, _ = runLaunch([]string{"RUN", filepath.Join(t.TempDir(), "missing.gb")}, "")
	test.ExpectEquality(t, r, exitModeError)

	r, _ = runLaunch([]string{"SCRIPT", writeROM(t, nil)}, "")
	test.ExpectEquality(t, r, exitModeError)
}

func TestStep(t *testing.T) {
	r, out := runLaunch([]string{"STEP", writeROM(t, nil)}, "s; s\n\nl\nz\nq\ns\n")
	test.ExpectEquality(t, r, exitOK)

	// NOP, JP and INC A
	test.ExpectSuccess(t, strings.Contains(out, "PC=0101"))
	test.ExpectSuccess(t, strings.Contains(out, "PC=0150"))
	test.ExpectSuccess(t, strings.Contains(out, "AF=0210"))

	// the listing and the unknown command
	test.ExpectSuccess(t, strings.Contains(out, "0153"))
	test.ExpectSuccess(t, strings.Contains(out, "* unknown command: z"))

	// the step after the quit command is never reached
	test.ExpectSuccess(t, !strings.Contains(out, "AF=0310"))
}

func TestStepRun(t *testing.T) {
	// end of input quits step mode
	r, out := runLaunch([]string{"STEP", "-break", "0150", writeROM(t, nil)}, "r\nr\n")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, strings.Count(out, "breakpoint at 0150 after 2 instructions"), 2)

	// the second run steps over the breakpoint and executes INC A
	test.ExpectSuccess(t, strings.Contains(out, "AF=0210"))
}

func TestStepBreakpointToggle(t *testing.T) {
	r, out := runLaunch([]string{"STEP", writeROM(t, nil)}, "b\nb\n")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "breakpoint set at 0100"))
	test.ExpectSuccess(t, strings.Contains(out, "breakpoint cleared at 0100"))
}

func TestScript(t *testing.T) {
	dir := t.TempDir()

	scr := filepath.Join(dir, "test.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte(`
step(3)
log("A", reg("A"))
`), 0o644))

	rec := filepath.Join(dir, "transcript.txt")

	r, out := runLaunch([]string{"SCRIPT", "-record", rec, writeROM(t, nil), scr}, "")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "A 2"))

	d, err := os.ReadFile(rec)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "step(3)"))
}
