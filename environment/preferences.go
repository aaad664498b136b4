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

package environment

import (
	"fmt"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/paths"
	"github.com/jetsetilly/learningenv/prefs"
	"github.com/jetsetilly/learningenv/romsettings"
)

// Preferences for the environment. The preferences of the game adapter are
// included.
type Preferences struct {
	dsk *prefs.Disk

	// the number of frames each action is repeated for
	FrameSkip prefs.Int

	// the chance, as a percentage, that the previous action is repeated
	// instead of the requested action
	RepeatAction prefs.Int

	// the number of frames the reset switch is held for a soft reset
	ResetFrames prefs.Int

	// log illegal actions and episode results
	Logging prefs.Bool

	RomSettings *romsettings.Preferences
}

func (p *Preferences) String() string {
	return fmt.Sprintf("frameskip=%s, repeataction=%s%%, resetframes=%s, logging=%s",
		p.FrameSkip.String(), p.RepeatAction.String(), p.ResetFrames.String(), p.Logging.String())
}

const (
	defaultFrameSkip    = 1
	defaultRepeatAction = 0
	defaultResetFrames  = 4
	defaultLogging      = true
)

func newPreferences(rs *romsettings.Preferences) *Preferences {
	p := &Preferences{
		RomSettings: rs,
	}

	p.FrameSkip.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("environment: frame skip must be at least one")
		}
		return nil
	})

	p.RepeatAction.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 100 {
			return curated.Errorf("environment: repeat action must be a percentage")
		}
		return nil
	})

	p.ResetFrames.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("environment: reset must be held for at least one frame")
		}
		return nil
	})

	p.setDefaults()

	return p
}

// NewPreferences returns preferences with default values. The preferences are
// not associated with a file and cannot be saved.
func NewPreferences() *Preferences {
	return newPreferences(romsettings.NewPreferences())
}

// LoadPreferences returns preferences loaded from the preferences file. If
// path is empty the default preferences file is used.
func LoadPreferences(path string) (*Preferences, error) {
	var err error

	if path == "" {
		path, err = paths.ResourcePath("", paths.PreferencesFile)
		if err != nil {
			return nil, curated.Errorf("environment: %v", err)
		}
	}

	rs, err := romsettings.LoadPreferences(path)
	if err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}

	p := newPreferences(rs)

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}

	if err := p.dsk.Add("environment.frameskip", &p.FrameSkip); err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}
	if err := p.dsk.Add("environment.repeataction", &p.RepeatAction); err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}
	if err := p.dsk.Add("environment.resetframes", &p.ResetFrames); err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}
	if err := p.dsk.Add("environment.logging", &p.Logging); err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("environment: %v", err)
	}

	return p, nil
}

func (p *Preferences) setDefaults() {
	p.FrameSkip.Set(defaultFrameSkip)
	p.RepeatAction.Set(defaultRepeatAction)
	p.ResetFrames.Set(defaultResetFrames)
	p.Logging.Set(defaultLogging)
}

// SetDefaults reverts all preferences to their default values, including the
// adapter preferences.
func (p *Preferences) SetDefaults() {
	p.setDefaults()
	p.RomSettings.SetDefaults()
}

// Save current preferences to disk, including the adapter preferences.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("environment: preferences not loaded from disk")
	}
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf("environment: %v", err)
	}
	if err := p.RomSettings.Save(); err != nil {
		return curated.Errorf("environment: %v", err)
	}
	return nil
}
