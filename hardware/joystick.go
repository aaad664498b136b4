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

package hardware

import (
	"strings"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/hardware/ports"
)

// Joystick is the digital stick plugged into the left player port.
type Joystick struct {
	up    bool
	down  bool
	left  bool
	right bool
	fire  bool
}

func (stk *Joystick) String() string {
	s := strings.Builder{}
	if stk.up {
		s.WriteString("u")
	}
	if stk.down {
		s.WriteString("d")
	}
	if stk.left {
		s.WriteString("l")
	}
	if stk.right {
		s.WriteString("r")
	}
	if stk.fire {
		s.WriteString("f")
	}
	if s.Len() == 0 {
		return "centre"
	}
	return s.String()
}

// Reset centres the stick and releases the fire button.
func (stk *Joystick) Reset() {
	*stk = Joystick{}
}

// Direction returns the state of each direction.
func (stk *Joystick) Direction() (up, down, left, right bool) {
	return stk.up, stk.down, stk.left, stk.right
}

// Fire returns true if the fire button is being held.
func (stk *Joystick) Fire() bool {
	return stk.fire
}

// Value returns the stick direction as it would be seen in the upper nibble
// of the SWCHA register. Bits are zero when the direction is active.
func (stk *Joystick) Value() uint8 {
	v := uint8(0xf0)
	if stk.right {
		v &^= 0x80
	}
	if stk.left {
		v &^= 0x40
	}
	if stk.down {
		v &^= 0x20
	}
	if stk.up {
		v &^= 0x10
	}
	return v
}

// HandleEvent changes the state of the joystick.
func (stk *Joystick) HandleEvent(event ports.Event, data ports.EventData) error {
	if event == ports.Centre {
		stk.up, stk.down, stk.left, stk.right = false, false, false, false
		return nil
	}

	b, ok := data.(bool)
	if !ok {
		return curated.Errorf(ports.BadEventData, event, "bool", data)
	}

	// opposing directions cancel each other
	switch event {
	case ports.Fire:
		stk.fire = b
	case ports.Up:
		stk.up = b
		stk.down = stk.down && !b
	case ports.Down:
		stk.down = b
		stk.up = stk.up && !b
	case ports.Left:
		stk.left = b
		stk.right = stk.right && !b
	case ports.Right:
		stk.right = b
		stk.left = stk.left && !b
	case ports.LeftUp:
		stk.left, stk.up = b, b
		stk.right, stk.down = false, false
	case ports.LeftDown:
		stk.left, stk.down = b, b
		stk.right, stk.up = false, false
	case ports.RightUp:
		stk.right, stk.up = b, b
		stk.left, stk.down = false, false
	case ports.RightDown:
		stk.right, stk.down = b, b
		stk.left, stk.up = false, false
	default:
		return curated.Errorf(ports.UnhandledEvent, ports.PortLeft, event)
	}

	return nil
}
