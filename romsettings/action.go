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
	"strings"

	"github.com/jetsetilly/learningenv/curated"
)

// Action is a single input from the agent to the left joystick. The list of
// actions is closed and the numeric values are stable. They can be used as
// indexes into a policy's output.
type Action int

// List of valid Action values.
const (
	NoOp Action = iota
	Fire
	Up
	Right
	Left
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpFire
	RightFire
	LeftFire
	DownFire
	UpRightFire
	UpLeftFire
	DownRightFire
	DownLeftFire

	numActions
)

var actionNames = [numActions]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN",
	"UPRIGHT", "UPLEFT", "DOWNRIGHT", "DOWNLEFT",
	"UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

func (a Action) String() string {
	if !a.Valid() {
		return "UNDEFINED"
	}
	return actionNames[a]
}

// Valid returns true if the Action is one of the defined actions.
func (a Action) Valid() bool {
	return a >= NoOp && a < numActions
}

// Fire returns true if the action includes the fire button.
func (a Action) Fire() bool {
	switch a {
	case Fire, UpFire, RightFire, LeftFire, DownFire,
		UpRightFire, UpLeftFire, DownRightFire, DownLeftFire:
		return true
	}
	return false
}

// Up returns true if the action pushes the stick up.
func (a Action) Up() bool {
	switch a {
	case Up, UpRight, UpLeft, UpFire, UpRightFire, UpLeftFire:
		return true
	}
	return false
}

// Down returns true if the action pulls the stick down.
func (a Action) Down() bool {
	switch a {
	case Down, DownRight, DownLeft, DownFire, DownRightFire, DownLeftFire:
		return true
	}
	return false
}

// Left returns true if the action pushes the stick left.
func (a Action) Left() bool {
	switch a {
	case Left, UpLeft, DownLeft, LeftFire, UpLeftFire, DownLeftFire:
		return true
	}
	return false
}

// Right returns true if the action pushes the stick right.
func (a Action) Right() bool {
	switch a {
	case Right, UpRight, DownRight, RightFire, UpRightFire, DownRightFire:
		return true
	}
	return false
}

// AllActions returns every defined action in numeric order.
func AllActions() []Action {
	all := make([]Action, numActions)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// Sentinal error returned by ParseAction().
const UnknownAction = "romsettings: unknown action (%s)"

// ParseAction returns the Action with the name given by the string. The
// comparison is case insensitive.
func ParseAction(s string) (Action, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range actionNames {
		if n == s {
			return Action(i), nil
		}
	}
	return NoOp, curated.Errorf(UnknownAction, s)
}

// LegalActions returns the actions that are legal for the adapter, in
// numeric order.
func LegalActions(rs RomSettings) []Action {
	var acts []Action
	for _, a := range AllActions() {
		if rs.IsLegal(a) {
			acts = append(acts, a)
		}
	}
	return acts
}

// MinimalActions returns the minimal action set of the adapter, in numeric
// order.
func MinimalActions(rs RomSettings) []Action {
	var acts []Action
	for _, a := range AllActions() {
		if rs.IsMinimal(a) {
			acts = append(acts, a)
		}
	}
	return acts
}
