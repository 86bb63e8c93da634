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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group collates preference values under a key. The key is used when
// applying values from the command line stack.
type Group struct {
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// Add a preference value to the group. Keys must be unique.
func (g *Group) Add(key string, p Pref) error {
	if _, ok := g.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already added", key)
	}
	g.entries[key] = p
	return nil
}

// Get returns the preference value for the key.
func (g *Group) Get(key string) (Pref, bool) {
	p, ok := g.entries[key]
	return p, ok
}

// ApplyCommandLine sets any values found in the most recent group of the
// command line stack. See PushCommandLineStack().
func (g *Group) ApplyCommandLine() error {
	for _, k := range g.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Reset all preference values in the group to their defaults.
func (g *Group) Reset() error {
	for _, k := range g.keys() {
		if err := g.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (g *Group) String() string {
	s := strings.Builder{}
	for _, k := range g.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, g.entries[k]))
	}
	return s.String()
}
