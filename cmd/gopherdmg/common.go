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

	"github.com/gopherdmg/gopherdmg/cartridgeloader"
	"github.com/gopherdmg/gopherdmg/debugger"
	"github.com/gopherdmg/gopherdmg/hardware"
	"github.com/gopherdmg/gopherdmg/hardware/cpu/registers"
	"github.com/gopherdmg/gopherdmg/hardware/preferences"
	"github.com/gopherdmg/gopherdmg/logger"
	"github.com/gopherdmg/gopherdmg/modalflag"
	"github.com/gopherdmg/gopherdmg/prefs"
	"github.com/gopherdmg/gopherdmg/statsview"
	"github.com/pkg/errors"
)

// flags shared by every mode
type common struct {
	md *modalflag.Modes

	prefs  *string
	log    *bool
	memviz *string
	stats  *bool
	breaks *modalflag.Addresses
}

// addCommon adds the shared flags to the current mode.
func addCommon(md *modalflag.Modes) *common {
	c := &common{md: md}
	c.prefs = md.AddString("prefs", "", "override preferences for this emulation")
	c.log = md.AddBool("log", false, "echo the log to stdout")
	c.memviz = md.AddString("memviz", "", "write a graph of the breakpoint store to file on exit")
	c.breaks = md.AddAddresses("break", "execution breakpoint. can be repeated or a comma separated list")
	if statsview.Available() {
		c.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// createDebugger creates the console and the debugger and inserts the
// cartridge. Breakpoints from the -break flag are created.
func (c *common) createDebugger(filename string) (*debugger.Debugger, error) {
	if *c.log {
		logger.SetEcho(c.md.Output)
	}

	if c.stats != nil && *c.stats {
		statsview.Launch(c.md.Output)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	p, err := preferences.NewPreferences()

	if *c.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopherdmg", "unused preferences: %s", unused)
		}
	}

	if err != nil {
		return nil, errors.Wrap(err, "preferences")
	}

	con, err := hardware.NewConsole(p)
	if err != nil {
		return nil, errors.Wrap(err, "console")
	}

	cl := cartridgeloader.NewLoader(filename)
	if !cl.HasRecognisedExtension() {
		logger.Logf(logger.Allow, "gopherdmg", "unrecognised file extension: %s", filename)
	}
	if err := cl.Load(); err != nil {
		return nil, err
	}

	if err := con.Insert(cl.Data); err != nil {
		return nil, errors.Wrapf(err, "inserting %s", cl.ShortName())
	}

	logger.Logf(logger.Allow, "gopherdmg", "%s inserted (sha1 %s)", cl.ShortName(), cl.Hash)

	dbg := debugger.NewDebugger(con)
	for _, a := range *c.breaks {
		dbg.SetBreakpoint(a, true)
	}

	return dbg, nil
}

// cleanUp writes the memviz graph if it was requested.
func (c *common) cleanUp(dbg *debugger.Debugger) error {
	if *c.memviz == "" || dbg == nil {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return errors.Wrap(err, "memviz")
	}
	defer f.Close()

	dbg.DumpGraph(f)

	return nil
}

// printState writes the CPU registers and the next instruction.
func printState(c *common, dbg *debugger.Debugger) {
	con := dbg.Console()
	e := dbg.Disasm.Decode(con.CPU.Reg.GetRegister16(registers.PC))
	fmt.Fprintf(c.md.Output, "%s\n%04x %s\n", con.CPU, e.Address, e)
}
