// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package romsettings

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/learningenv/curated"
)

// Factory creates a new instance of an adapter. The preferences argument can
// be nil, in which case the adapter uses default preferences.
type Factory func(prefs *Preferences) RomSettings

// Entry describes a registered adapter.
type Entry struct {
	Name string
	MD5  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s]", e.Name, e.MD5)
}

var registry struct {
	crit    sync.RWMutex
	byName  map[string]Factory
	md5Name map[string]string
}

func init() {
	registry.byName = make(map[string]Factory)
	registry.md5Name = make(map[string]string)
}

// Register adds an adapter factory to the registry. Adapters register
// themselves in an init() function.
//
// Panics if an adapter with the same name or MD5 is already registered.
func Register(f Factory) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	rs := f(nil)
	name := rs.Name()
	hash := strings.ToLower(rs.MD5())

	if _, ok := registry.byName[name]; ok {
		panic(fmt.Sprintf("romsettings: adapter %q already registered", name))
	}
	if n, ok := registry.md5Name[hash]; ok {
		panic(fmt.Sprintf("romsettings: md5 %s already registered by %q", hash, n))
	}

	registry.byName[name] = f
	registry.md5Name[hash] = name
}

// Sentinal error returned by Create() and CreateFromMD5().
const UnknownROM = "romsettings: no adapter for %s"

// Create a new instance of the named adapter.
func Create(name string, prefs *Preferences) (RomSettings, error) {
	registry.crit.RLock()
	defer registry.crit.RUnlock()

	f, ok := registry.byName[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownROM, name)
	}

	return f(prefs), nil
}

// CreateFromMD5 creates a new instance of the adapter for the ROM with the
// specified MD5 hash.
func CreateFromMD5(hash string, prefs *Preferences) (RomSettings, error) {
	registry.crit.RLock()
	name, ok := registry.md5Name[strings.ToLower(hash)]
	registry.crit.RUnlock()

	if !ok {
		return nil, curated.Errorf(UnknownROM, hash)
	}

	return Create(name, prefs)
}

// List returns all registered adapters sorted by name.
func List() []Entry {
	registry.crit.RLock()
	defer registry.crit.RUnlock()

	l := make([]Entry, 0, len(registry.byName))
	for n, f := range registry.byName {
		l = append(l, Entry{Name: n, MD5: f(nil).MD5()})
	}

	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})

	return l
}
