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

package romsettings_test

import (
	"testing"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/romsettings"
	"github.com/jetsetilly/learningenv/test"
)

// stub is a minimal adapter. it allows only the four directions
type stub struct {
	prefs *romsettings.Preferences
	mode  int
}

func (s *stub) Name() string { return "stub" }
func (s *stub) MD5() string { return "0123456789ABCDEF0123456789ABCDEF" }
func (s *stub) Reset(romsettings.System, romsettings.Environment) error { return nil }
func (s *stub) Step(romsettings.System) error { return nil }
func (s *stub) IsTerminal() bool { return false }
func (s *stub) Reward() int { return 0 }
func (s *stub) Lives() int { return 3 }
func (s *stub) StartingActions() []romsettings.Action { return nil }
func (s *stub) AvailableModes() []int { return []int{0, 2} }
func (s *stub) Mode() int { return s.mode }
func (s *stub) AvailableDifficulties() []int { return []int{0} }
func (s *stub) SaveState(romsettings.Serialiser) error { return nil }
func (s *stub) LoadState(romsettings.Deserialiser) error { return nil }
func (s *stub) Clone() romsettings.RomSettings {
	n := *s
	return &n
}

func (s *stub) IsMinimal(a romsettings.Action) bool {
	return s.IsLegal(a)
}

func (s *stub) IsLegal(a romsettings.Action) bool {
	switch a {
	case romsettings.Up, romsettings.Down, romsettings.Left, romsettings.Right:
		return true
	}
	return false
}

func (s *stub) SetMode(m int, _ romsettings.System, _ romsettings.Environment) error {
	if !romsettings.ModeSupported(s, m) {
		return curated.Errorf(romsettings.UnsupportedMode, m, s.Name())
	}
	s.mode = m
	return nil
}

func init() {
	romsettings.Register(func(prefs *romsettings.Preferences) romsettings.RomSettings {
		return &stub{prefs: prefs}
	})
}

func TestRegistry(t *testing.T) {
	rs, err := romsettings.Create("STUB", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rs.Name(), "stub")

	rs, err = romsettings.CreateFromMD5("0123456789abcdef0123456789abcdef", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rs.Name(), "stub")

	_, err = romsettings.Create("pitfall", nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romsettings.UnknownROM))

	_, err = romsettings.CreateFromMD5("ffffffffffffffffffffffffffffffff", nil)
	test.ExpectSuccess(t, curated.Is(err, romsettings.UnknownROM))

	var found bool
	for _, e := range romsettings.List() {
		if e.Name == "stub" {
			found = true
			test.ExpectEquality(t, e.String(), "stub [0123456789ABCDEF0123456789ABCDEF]")
		}
	}
	test.ExpectSuccess(t, found)
}

func TestRegisterDuplicate(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	romsettings.Register(func(prefs *romsettings.Preferences) romsettings.RomSettings {
		return &stub{prefs: prefs}
	})
	t.Errorf("duplicate registration did not panic")
}

func TestActionSets(t *testing.T) {
	rs := &stub{}
	legal := romsettings.LegalActions(rs)
	test.ExpectEquality(t, len(legal), 4)
	test.ExpectEquality(t, legal[0], romsettings.Up)
	test.ExpectEquality(t, legal[3], romsettings.Down)

	minimal := romsettings.MinimalActions(rs)
	test.ExpectEquality(t, len(minimal), 4)
}

func TestModeSupported(t *testing.T) {
	rs := &stub{}
	test.ExpectSuccess(t, romsettings.ModeSupported(rs, 0))
	test.ExpectSuccess(t, romsettings.ModeSupported(rs, 2))
	test.ExpectFailure(t, romsettings.ModeSupported(rs, 1))

	err := rs.SetMode(1, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, romsettings.UnsupportedMode))
	test.ExpectEquality(t, err.Error(), "romsettings: mode 1 is not supported by stub")
	test.ExpectEquality(t, rs.Mode(), 0)
}
