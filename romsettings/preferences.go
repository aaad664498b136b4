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

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/paths"
	"github.com/jetsetilly/learningenv/prefs"
)

// Preferences shared by all adapters.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of times select is pressed while waiting for the
	// console to show the requested mode. zero means no limit
	ModeSwitchLimit prefs.Int

	// the number of frames the select switch is held for each press
	SelectFrames prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("modeswitchlimit=%s, selectframes=%s", p.ModeSwitchLimit.String(), p.SelectFrames.String())
}

const (
	defaultModeSwitchLimit = 256
	defaultSelectFrames    = 2
)

// NewPreferences returns preferences with default values. The preferences are
// not associated with a file and cannot be saved.
func NewPreferences() *Preferences {
	p := &Preferences{}

	p.ModeSwitchLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("romsettings: mode switch limit cannot be negative")
		}
		return nil
	})

	p.SelectFrames.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("romsettings: select must be held for at least one frame")
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// LoadPreferences returns preferences loaded from the preferences file. If
// path is empty the default preferences file is used.
func LoadPreferences(path string) (*Preferences, error) {
	var err error

	if path == "" {
		path, err = paths.ResourcePath("", paths.PreferencesFile)
		if err != nil {
			return nil, curated.Errorf("romsettings: %v", err)
		}
	}

	p := NewPreferences()

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("romsettings: %v", err)
	}
	if err := p.dsk.Add("romsettings.modeswitchlimit", &p.ModeSwitchLimit); err != nil {
		return nil, curated.Errorf("romsettings: %v", err)
	}
	if err := p.dsk.Add("romsettings.selectframes", &p.SelectFrames); err != nil {
		return nil, curated.Errorf("romsettings: %v", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("romsettings: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.ModeSwitchLimit.Set(defaultModeSwitchLimit)
	p.SelectFrames.Set(defaultSelectFrames)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("romsettings: preferences not loaded from disk")
	}
	return p.dsk.Save()
}
