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
	"os"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// RecordingError is the pattern for all errors returned by the Recorder.
const RecordingError = "recording: %v"

// output lines are prefixed with the delimiter so that they read as Lua
// comments
const outputDelimiter = "-- "

// Recorder writes a transcript of script commands and their results to a
// file. The transcript is valid Lua and can be run as a script.
type Recorder struct {
	file       *os.File
	scriptfile string

	inputLine  string
	outputLine string
}

// IsRecording returns true if a recording is currently active.
func (rec *Recorder) IsRecording() bool {
	return rec.file != nil
}

// Filename returns the name of the file being written to.
func (rec *Recorder) Filename() string {
	return rec.scriptfile
}

// Start a new recording. The file must not already exist.
func (rec *Recorder) Start(scriptfile string) error {
	if rec.IsRecording() {
		return curated.Errorf(RecordingError, "recording already active")
	}

	_, err := os.Stat(scriptfile)
	if !os.IsNotExist(err) {
		return curated.Errorf(RecordingError, "file already exists")
	}

	rec.file, err = os.Create(scriptfile)
	if err != nil {
		return curated.Errorf(RecordingError, "can't create file")
	}
	rec.scriptfile = scriptfile

	return nil
}

// End the current recording. Can be used without explicit IsRecording()
// check.
func (rec *Recorder) End() error {
	if !rec.IsRecording() {
		return nil
	}

	defer func() {
		rec.file = nil
		rec.scriptfile = ""
		rec.inputLine = ""
		rec.outputLine = ""
	}()

	// make sure everything has been written to the output file
	err := rec.Commit()

	// if commit() causes an error, continue with the Close() operation and
	// return the commit() error if the close succeeds
	if errClose := rec.file.Close(); errClose != nil {
		return curated.Errorf(RecordingError, errClose)
	}

	return err
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit().
func (rec *Recorder) Rollback() {
	rec.inputLine = ""
	rec.outputLine = ""
}

// WriteInput puts a command into the recording. The previous command is
// committed.
func (rec *Recorder) WriteInput(command string) {
	if !rec.IsRecording() {
		return
	}

	_ = rec.Commit()
	if command != "" {
		rec.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput puts the result of the most recent command into the recording.
func (rec *Recorder) WriteOutput(result string, args ...any) {
	if !rec.IsRecording() {
		return
	}

	if result == "" {
		return
	}

	result = fmt.Sprintf(result, args...)

	for _, l := range strings.Split(result, "\n") {
		rec.outputLine = fmt.Sprintf("%s%s%s\n", rec.outputLine, outputDelimiter, l)
	}
}

// Commit command and result to the output file.
func (rec *Recorder) Commit() error {
	if !rec.IsRecording() {
		return nil
	}

	defer func() {
		rec.inputLine = ""
		rec.outputLine = ""
	}()

	for _, s := range []string{rec.inputLine, rec.outputLine} {
		if s == "" {
			continue // for loop
		}
		n, err := io.WriteString(rec.file, s)
		if err != nil {
			return curated.Errorf(RecordingError, err)
		}
		if n != len(s) {
			return curated.Errorf(RecordingError, "output truncated")
		}
	}

	return nil
}
