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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
	"github.com/pkg/errors"
)

// LoadError is the pattern for all errors returned by Load().
const LoadError = "cartridgeloader: %v"

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".SGB", ".BIN", ".ROM"}

// Loader is used to specify the cartridge to use when Insert()ing into the
// console.
type Loader struct {
	// filename of cartridge to load. can be a http or https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasRecognisedExtension returns true if the filename has one of the
// extensions in the FileExtensions list. The comparison is not case
// sensitive.
func (cl Loader) HasRecognisedExtension() bool {
	ext := strings.ToUpper(path.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	// a single letter scheme is a windows drive letter
	if err == nil && len(u.Scheme) != 1 {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
	case "file", "":
		data, err = loadFile(cl.Filename)
	default:
		err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
	}
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, "no data")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	cl.Data = data
	cl.Hash = hash

	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", filename)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching %s: %s", filename, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	return data, nil
}

func loadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading cartridge file")
	}
	return data, nil
}
