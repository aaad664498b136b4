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

package hiscore

import (
	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/paths"
	"github.com/jetsetilly/learningenv/prefs"
)

// Preferences for the hiscore database.
type Preferences struct {
	dsk *prefs.Disk

	// location of the database. empty means the default location in the
	// resource directory
	Database prefs.String
}

func (p *Preferences) String() string {
	return p.Database.String()
}

// LoadPreferences returns preferences loaded from the preferences file. If
// path is empty the default preferences file is used.
func LoadPreferences(path string) (*Preferences, error) {
	var err error

	if path == "" {
		path, err = paths.ResourcePath("", paths.PreferencesFile)
		if err != nil {
			return nil, curated.Errorf("hiscore: %v", err)
		}
	}

	p := &Preferences{}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}
	if err := p.dsk.Add("hiscore.database", &p.Database); err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}
	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("hiscore: %v", err)
	}

	return p, nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// OpenFromPreferences opens the database named in the preferences.
func OpenFromPreferences(p *Preferences) (*Store, error) {
	return Open(p.Database.Get().(string))
}
