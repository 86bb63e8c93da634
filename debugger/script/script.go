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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/disassembly"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for errors raised while running a script.
const ScriptError = "script: %v"

// the 8bit registers that can be named in a script
var registers8 = map[string]registers.ID{
	"A": registers.A,
	"F": registers.F,
	"B": registers.B,
	"C": registers.C,
	"D": registers.D,
	"E": registers.E,
	"H": registers.H,
	"L": registers.L,
}

// the 16bit registers that can be named in a script
var registers16 = map[string]registers.Slot{
	"AF": registers.AF,
	"BC": registers.BC,
	"DE": registers.DE,
	"HL": registers.HL,
	"SP": registers.SP,
	"PC": registers.PC,
}

var flags = map[string]registers.Flag{
	"Z": registers.Zero,
	"N": registers.Subtract,
	"H": registers.HalfCarry,
	"C": registers.Carry,
}

// Script is a Lua state bound to a debugger.
type Script struct {
	dbg    *debugger.Debugger
	L      *lua.LState
	output io.Writer

	// transcript of commands. never nil but not necessarily recording
	rec *Recorder
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the log() function is written to output, which can be nil.
func NewScript(dbg *debugger.Debugger, output io.Writer) *Script {
	scr := &Script{
		dbg:    dbg,
		L:      lua.NewState(),
		output: output,
		rec:    &Recorder{},
	}

	for name, fn := range map[string]lua.LGFunction{
		"step":       scr.step,
		"run":        scr.run,
		"reset":      scr.reset,
		"reg":        scr.reg,
		"setreg":     scr.setreg,
		"flag":       scr.flag,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"breakpoint": scr.breakpoint,
		"clear":      scr.clear,
		"cycles":     scr.cycles,
		"disasm":     scr.disasm,
		"log":        scr.log,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// SetRecorder sets the recorder for the script. A nil value removes the
// current recorder.
func (scr *Script) SetRecorder(rec *Recorder) {
	if rec == nil {
		rec = &Recorder{}
	}
	scr.rec = rec
}

// Close the Lua state. The Script cannot be used after this.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile loads and runs the Lua file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return scr.rec.Commit()
}

// RunString runs the Lua source.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return scr.rec.Commit()
}

// checkAddress returns the argument as a 16bit address. raises an error if
// the value is out of range
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%#x)", v))
	}
	return uint16(v)
}

// checkByte returns the argument as an 8bit value. raises an error if the
// value is out of range
func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range (%#x)", v))
	}
	return uint8(v)
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	scr.rec.WriteInput(fmt.Sprintf("step(%d)", n))
	for i := 0; i < n; i++ {
		if err := scr.dbg.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	scr.rec.WriteOutput("%04x", scr.dbg.Console().CPU.Reg.GetRegister16(registers.PC))
	return 0
}

func (scr *Script) run(L *lua.LState) int {
	limit := L.OptInt(1, 0)
	scr.rec.WriteInput(fmt.Sprintf("run(%d)", limit))

	h, err := scr.dbg.Run(limit)
	if err != nil {
		L.RaiseError("%v", err)
	}
	scr.rec.WriteOutput("%s", h.String())

	L.Push(lua.LString(h.Reason.String()))
	L.Push(lua.LNumber(h.Instructions))
	L.Push(lua.LNumber(h.Address))
	return 3
}

func (scr *Script) reset(L *lua.LState) int {
	scr.rec.WriteInput("reset()")
	scr.dbg.Reset()
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	r := scr.dbg.Console().CPU.Reg
	if id, ok := registers8[name]; ok {
		L.Push(lua.LNumber(r.GetRegister8(id)))
		return 1
	}
	if slot, ok := registers16[name]; ok {
		L.Push(lua.LNumber(r.GetRegister16(slot)))
		return 1
	}
	L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	return 0
}

func (scr *Script) setreg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	v := L.CheckInt(2)
	r := scr.dbg.Console().CPU.Reg

	scr.rec.WriteInput(fmt.Sprintf("setreg(%q, 0x%x)", name, v))

	if id, ok := registers8[name]; ok {
		if v < 0 || v > 0xff {
			L.ArgError(2, fmt.Sprintf("value out of range (%#x)", v))
		}
		r.SetRegister8(id, uint8(v))
		return 0
	}
	if slot, ok := registers16[name]; ok {
		if v < 0 || v > 0xffff {
			L.ArgError(2, fmt.Sprintf("value out of range (%#x)", v))
		}
		r.SetRegister16(slot, uint16(v))
		return 0
	}
	L.ArgError(1, fmt.Sprintf("unknown register (%s)", name))
	return 0
}

func (scr *Script) flag(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	f, ok := flags[name]
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown flag (%s)", name))
	}
	L.Push(lua.LBool(scr.dbg.Console().CPU.Reg.GetFlag(f)))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dbg.Load8(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := checkByte(L, 2)
	scr.rec.WriteInput(fmt.Sprintf("poke(0x%04x, 0x%02x)", address, v))
	if err := scr.dbg.Poke8(address, v); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) breakpoint(L *lua.LState) int {
	var cond debugger.Condition

	switch L.Get(1).Type() {
	case lua.LTNumber:
		address := checkAddress(L, 1)
		scr.rec.WriteInput(fmt.Sprintf("breakpoint(0x%04x)", address))
		cond = debugger.ExecutionAt(address)
	case lua.LTString:
		name := L.CheckString(1)
		ev, ok := debugger.ParseEvent(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown event (%s)", name))
		}
		scr.rec.WriteInput(fmt.Sprintf("breakpoint(%q)", ev))
		cond = debugger.EventOf(ev)
	default:
		L.ArgError(1, "address or event name expected")
	}

	h := scr.dbg.Breakpoints.CreateBreakpoint(debugger.Description{cond})
	L.Push(lua.LString(h.String()))
	return 1
}

func (scr *Script) clear(L *lua.LState) int {
	if L.GetTop() == 0 {
		scr.rec.WriteInput("clear()")
		scr.dbg.Breakpoints.Clear()
		return 0
	}
	address := checkAddress(L, 1)
	scr.rec.WriteInput(fmt.Sprintf("clear(0x%04x)", address))
	scr.dbg.SetBreakpoint(address, false)
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dbg.Console().CPU.Cycles))
	return 1
}

func (scr *Script) disasm(L *lua.LState) int {
	address := checkAddress(L, 1)
	n := L.OptInt(2, 1)

	s := &strings.Builder{}
	if err := scr.dbg.Disasm.Write(s, disassembly.WriteAttr{}, address, n); err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LString(strings.TrimSuffix(s.String(), "\n")))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, n)
	for i := 1; i <= n; i++ {
		s[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	msg := strings.Join(s, " ")

	logger.Log(logger.Allow, "script", msg)
	if scr.output != nil {
		io.WriteString(scr.output, msg)
		io.WriteString(scr.output, "\n")
	}

	return 0
}
