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

// Package ports defines the input events that can be pushed into a console:
// joystick events for the left player port and switch events for the front
// panel.
package ports

import "fmt"

// PortID differentiates the different ports in the console into which
// input can be pushed.
type PortID string

// List of defined PortIDs.
const (
	PortLeft  PortID = "Left"
	PortPanel PortID = "Panel"
)

// Event represents the actions that can be performed at one of the ports.
type Event string

// List of defined events.
const (
	// joystick. the direction events all take a bool (or DataStick) value
	Fire      Event = "Fire"
	Up        Event = "Up"
	Down      Event = "Down"
	Left      Event = "Left"
	Right     Event = "Right"
	LeftUp    Event = "LeftUp"
	LeftDown  Event = "LeftDown"
	RightUp   Event = "RightUp"
	RightDown Event = "RightDown"
	Centre    Event = "Centre" // nil

	// panel.
	PanelSelect Event = "PanelSelect" // bool
	PanelReset  Event = "PanelReset"  // bool
)

// EventData is the value associated with the event. The underlying type
// should be bool or nil.
type EventData any

// Stick directions are switched on or off with these values. They are
// aliases for bool but make event construction easier to read.
const (
	DataStickTrue  = true
	DataStickFalse = false
)

// InputEvent defines the data required for single input event.
type InputEvent struct {
	Port PortID
	Ev   Event
	D    EventData
}

func (ev InputEvent) String() string {
	if ev.D == nil {
		return fmt.Sprintf("%s: %s", ev.Port, ev.Ev)
	}
	return fmt.Sprintf("%s: %s (%v)", ev.Port, ev.Ev, ev.D)
}

// Sentinal error returned when an event is not recognised by the port it is
// sent to.
const UnhandledEvent = "ports: %s port does not handle %s event"

// Sentinal error returned when the data for an event is of the wrong type.
const BadEventData = "ports: %s event expects %s data not %T"
