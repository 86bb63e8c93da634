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

	"github.com/gopherdmg/gopherdmg/debugger/script"
	"github.com/gopherdmg/gopherdmg/modalflag"
)

func scriptMode(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	record := md.AddString("record", "", "record a transcript of the script to file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("a cartridge and a script are required")
	}

	dbg, err := c.createDebugger(md.GetArg(0))
	if err != nil {
		return err
	}

	scr := script.NewScript(dbg, md.Output)
	defer scr.Close()

	if *record != "" {
		rec := &script.Recorder{}
		if err := rec.Start(*record); err != nil {
			return err
		}
		defer rec.End()
		scr.SetRecorder(rec)
	}

	if err := scr.RunFile(md.GetArg(1)); err != nil {
		return err
	}

	return c.cleanUp(dbg)
}
