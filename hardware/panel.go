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

// Panel represents the console's front control panel. Only the select and
// reset switches can be changed with input events. The colour switch is fixed
// in the colour position and both difficulty switches are fixed in the
// amateur (B) position.
type Panel struct {
	selectPressed bool
	resetPressed  bool
}

// NewPanel is the preferred method of initialisation for the Panel type.
func NewPanel() *Panel {
	return &Panel{}
}

func (pan *Panel) String() string {
	s := strings.Builder{}

	s.WriteString("sel=")
	if pan.selectPressed {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	s.WriteString(", res=")
	if pan.resetPressed {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	return s.String()
}

// Reset releases the select and reset switches.
func (pan *Panel) Reset() {
	pan.selectPressed = false
	pan.resetPressed = false
}

// SelectPressed returns true if the select switch is being held.
func (pan *Panel) SelectPressed() bool {
	return pan.selectPressed
}

// ResetPressed returns true if the reset switch is being held.
func (pan *Panel) ResetPressed() bool {
	return pan.resetPressed
}

// Value returns the panel state as it would be seen in the SWCHB register.
// Note that the select and reset bits are zero when the switch is held.
func (pan *Panel) Value() uint8 {
	// pins 2, 4 and 5 are not used and always have a value of 1. the colour
	// bit is set and the difficulty bits are clear
	v := uint8(0x3c)

	if !pan.selectPressed {
		v |= 0x02
	}

	if !pan.resetPressed {
		v |= 0x01
	}

	return v
}

// HandleEvent changes the state of the panel switches.
func (pan *Panel) HandleEvent(event ports.Event, data ports.EventData) error {
	switch event {
	case ports.PanelSelect:
		b, ok := data.(bool)
		if !ok {
			return curated.Errorf(ports.BadEventData, event, "bool", data)
		}
		pan.selectPressed = b

	case ports.PanelReset:
		b, ok := data.(bool)
		if !ok {
			return curated.Errorf(ports.BadEventData, event, "bool", data)
		}
		pan.resetPressed = b

	default:
		return curated.Errorf(ports.UnhandledEvent, ports.PortPanel, event)
	}

	return nil
}
