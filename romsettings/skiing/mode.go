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

package skiing

import (
	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/logger"
	"github.com/jetsetilly/learningenv/romsettings"
)

// the states of the mode switching process
type modeSwitch int

const (
	selectionClosed modeSwitch = iota
	selectionOpen
	selectionApplied
)

func (s modeSwitch) String() string {
	switch s {
	case selectionClosed:
		return "closed"
	case selectionOpen:
		return "open"
	case selectionApplied:
		return "applied"
	}
	return "unknown"
}

// SetMode implements the romsettings.RomSettings interface.
//
// The first press of select opens the mode selection screen. Each subsequent
// press moves to the next mode. When RAM shows the requested mode the console
// is soft reset to start the game in that mode.
//
// Requesting a mode that is not in AvailableModes() is an error and the
// selected mode is not changed. The number of presses is limited by the
// ModeSwitchLimit preference. If the limit is reached the selected mode is
// not changed but the console may have been left on a different mode.
func (sk *Skiing) SetMode(m int, sys romsettings.System, env romsettings.Environment) error {
	if !romsettings.ModeSupported(sk, m) {
		return curated.Errorf(romsettings.UnsupportedMode, m, sk.Name())
	}

	limit := sk.prefs.ModeSwitchLimit.Get().(int)
	frames := sk.prefs.SelectFrames.Get().(int)

	var presses int

	state := selectionClosed
	for state != selectionApplied {
		switch state {
		case selectionClosed:
			if err := env.PressSelect(frames); err != nil {
				return curated.Errorf("skiing: %v", err)
			}
			presses++
			state = selectionOpen

		case selectionOpen:
			v, err := romsettings.ReadRAM(sys, ramModeIndicator)
			if err != nil {
				return curated.Errorf("skiing: %v", err)
			}

			if int(v) == m {
				if err := env.SoftReset(); err != nil {
					return curated.Errorf("skiing: %v", err)
				}
				state = selectionApplied
				break // switch
			}

			if limit > 0 && presses >= limit {
				return curated.Errorf(romsettings.ModeSwitchLimit, sk.Name(), m, presses)
			}

			// cycle to the next mode
			if err := env.PressSelect(frames); err != nil {
				return curated.Errorf("skiing: %v", err)
			}
			presses++
		}
	}

	sk.mode = m
	logger.Logf(logger.Allow, "skiing", "mode %d %s after %d presses of select", m, state, presses)

	return nil
}
