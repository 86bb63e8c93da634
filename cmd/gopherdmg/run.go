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
	"fmt"
	"os"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/gopherdmg/gopherdmg/debugger/govern"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/modalflag"
)

func runMode(md *modalflag.Modes, intChan chan os.Signal) (bool, error) {
	md.NewMode()
	c := addCommon(md)
	limit := md.AddInt("limit", 0, "stop after the number of instructions. zero for no limit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return false, err
	}

	if len(md.RemainingArgs()) != 1 {
		return false, fmt.Errorf("one cartridge required")
	}

	dbg, err := c.createDebugger(md.GetArg(0))
	if err != nil {
		return false, err
	}
	con := dbg.Console()

	var count int
	var interrupted bool
	var performanceFilter int

	check := func() (govern.State, error) {
		count++
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-intChan:
				interrupted = true
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	}

	// a breakpoint at the start address does not stop the emulation before
	// it has begun
	if dbg.HasBreakpoint(con.CPU.Reg.GetRegister16(registers.PC)) {
		if err := dbg.Step(); err != nil {
			return false, err
		}
		count++
	}

	if *limit > 0 {
		if count < *limit {
			err = con.RunForInstructionCount(*limit-count, func(_ int) (govern.State, error) {
				return check()
			})
		}
	} else {
		err = con.Run(check)
	}

	reason := govern.Limit
	switch {
	case interrupted:
		reason = govern.Ended
	case curated.Is(err, cpu.Trapped):
		reason = govern.Breakpoint
		err = nil
	case curated.Is(err, cpu.UnimplementedInstruction):
		reason = govern.Unimplemented
		count++
		err = nil
	}

	if err != nil {
		return false, err
	}

	fmt.Fprintf(md.Output, "%s after %d instructions\n", reason, count)
	printState(c, dbg)

	return interrupted, c.cleanUp(dbg)
}
