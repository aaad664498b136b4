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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the override stack allows a harness to replace values loaded from disk for
// the duration of a run without changing the preferences file. values are
// consumed as they are used.
var overrides struct {
	crit  sync.Mutex
	stack []map[string]Value
}

// PushOverrides parses a string of the form "key::value; key::value" and adds
// it as a new group on the override stack. Malformed key/value pairs are
// ignored.
func PushOverrides(s string) {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	grp := make(map[string]Value)
	for _, p := range strings.Split(s, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	overrides.stack = append(overrides.stack, grp)
}

// PopOverrides forgets the most recent group added by PushOverrides().
//
// Returns the unused overrides of the group in the same "key::value" format,
// sorted by key.
func PopOverrides() string {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.stack) == 0 {
		return ""
	}

	popped := overrides.stack[len(overrides.stack)-1]
	overrides.stack = overrides.stack[:len(overrides.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// getOverride returns the value for the key in the top group of the override
// stack. The value is deleted when it is returned.
func getOverride(key string) (bool, Value) {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.stack) == 0 {
		return false, nil
	}

	grp := overrides.stack[len(overrides.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
