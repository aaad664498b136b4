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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/learningenv/romsettings"
	"github.com/jetsetilly/learningenv/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p := romsettings.NewPreferences()
	test.ExpectEquality(t, p.ModeSwitchLimit.Get().(int), 256)
	test.ExpectEquality(t, p.SelectFrames.Get().(int), 2)
	test.ExpectEquality(t, p.String(), "modeswitchlimit=256, selectframes=2")

	// values rejected by the hooks leave the preference unchanged
	test.ExpectFailure(t, p.ModeSwitchLimit.Set(-1))
	test.ExpectEquality(t, p.ModeSwitchLimit.Get().(int), 256)
	test.ExpectFailure(t, p.SelectFrames.Set(0))
	test.ExpectEquality(t, p.SelectFrames.Get().(int), 2)

	test.ExpectSuccess(t, p.ModeSwitchLimit.Set(0))
	p.SetDefaults()
	test.ExpectEquality(t, p.ModeSwitchLimit.Get().(int), 256)

	// preferences not loaded from disk cannot be saved
	test.ExpectFailure(t, p.Save())
}

func TestPreferencesDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences.yaml")

	p, err := romsettings.LoadPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.ModeSwitchLimit.Get().(int), 256)

	test.ExpectSuccess(t, p.ModeSwitchLimit.Set(10))
	test.ExpectSuccess(t, p.SelectFrames.Set(3))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)

	q, err := romsettings.LoadPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.ModeSwitchLimit.Get().(int), 10)
	test.ExpectEquality(t, q.SelectFrames.Get().(int), 3)
}
