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

// Package script drives the debugger from Lua scripts. Scripts are used to
// run compatibility test ROMs and to automate debugging sessions.
//
// The Script type creates a Lua state with the following global functions:
//
//	step([n])          execute n instructions (default 1)
//	run([limit])       run until a breakpoint or until limit instructions.
//	                   returns the halt reason, instruction count and address
//	reset()            reset the console. breakpoints are kept
//	reg(name)          value of an 8bit or 16bit register
//	setreg(name, v)    set the value of a register
//	flag(name)         value of the z, n, h or c flag
//	peek(addr)         read memory without side effects. traps are invisible
//	poke(addr, v)      write memory without side effects
//	breakpoint(x)      break at the address or on the named event
//	clear([addr])      remove breakpoints at the address or all breakpoints
//	cycles()           number of cycles since the last reset
//	disasm(addr [, n]) disassembly of n instructions starting at addr
//	log(s)             add an entry to the central log and print it
//
// A Recorder can be attached to a Script to keep a transcript of the
// commands that changed the state of the emulation and the result of those
// commands.
//
// The Queue type normalises text input into individual commands. It is used
// by the host tool for line based input.
package script
