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

func TestActionNames(t *testing.T) {
	all := romsettings.AllActions()
	test.ExpectEquality(t, len(all), 18)

	for i, a := range all {
		test.ExpectEquality(t, int(a), i)
		test.ExpectSuccess(t, a.Valid())

		p, err := romsettings.ParseAction(a.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, a)
	}

	test.ExpectEquality(t, romsettings.NoOp.String(), "NOOP")
	test.ExpectEquality(t, romsettings.DownLeftFire.String(), "DOWNLEFTFIRE")
	test.ExpectEquality(t, romsettings.Action(-1).String(), "UNDEFINED")
	test.ExpectEquality(t, romsettings.Action(18).String(), "UNDEFINED")
	test.ExpectFailure(t, romsettings.Action(18).Valid())

	p, err := romsettings.ParseAction(" upLeft ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, romsettings.UpLeft)

	_, err = romsettings.ParseAction("sideways")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romsettings.UnknownAction))
}

func TestActionDirections(t *testing.T) {
	for _, a := range romsettings.AllActions() {
		// opposing directions are never combined
		test.ExpectFailure(t, a.Up() && a.Down(), a)
		test.ExpectFailure(t, a.Left() && a.Right(), a)
	}

	test.ExpectSuccess(t, romsettings.DownRightFire.Down())
	test.ExpectSuccess(t, romsettings.DownRightFire.Right())
	test.ExpectSuccess(t, romsettings.DownRightFire.Fire())
	test.ExpectFailure(t, romsettings.DownRightFire.Left())
	test.ExpectFailure(t, romsettings.NoOp.Fire())
	test.ExpectFailure(t, romsettings.UpLeft.Fire())
	test.ExpectSuccess(t, romsettings.Fire.Fire())

	var fire int
	for _, a := range romsettings.AllActions() {
		if a.Fire() {
			fire++
		}
	}
	test.ExpectEquality(t, fire, 9)
}
