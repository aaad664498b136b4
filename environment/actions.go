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
	"github.com/jetsetilly/learningenv/hardware/ports"
	"github.com/jetsetilly/learningenv/romsettings"
)

// the joystick events for an action. the stick is centred before the
// direction is applied so that nothing is left over from the previous action
func actionEvents(a romsettings.Action) []ports.InputEvent {
	evs := []ports.InputEvent{
		{Port: ports.PortLeft, Ev: ports.Centre},
	}

	var dir ports.Event
	switch {
	case a.Up() && a.Left():
		dir = ports.LeftUp
	case a.Up() && a.Right():
		dir = ports.RightUp
	case a.Down() && a.Left():
		dir = ports.LeftDown
	case a.Down() && a.Right():
		dir = ports.RightDown
	case a.Up():
		dir = ports.Up
	case a.Down():
		dir = ports.Down
	case a.Left():
		dir = ports.Left
	case a.Right():
		dir = ports.Right
	}

	if dir != "" {
		evs = append(evs, ports.InputEvent{Port: ports.PortLeft, Ev: dir, D: ports.DataStickTrue})
	}

	return append(evs, ports.InputEvent{Port: ports.PortLeft, Ev: ports.Fire, D: a.Fire()})
}
