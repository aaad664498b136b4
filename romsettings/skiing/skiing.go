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

// Package skiing is the game adapter for Activision's Skiing.
//
// Skiing is a race against the clock. The clock is stored in RAM as minutes
// and as seconds and centiseconds in binary coded decimal. The reward for
// each frame is the negative of the time that has elapsed since the previous
// frame, measured in centiseconds.
//
// The game has ten modes (five downhill and five slalom courses). Modes are
// chosen by pressing the select switch until the mode number shown on screen
// is the one wanted.
package skiing

import (
	"fmt"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/logger"
	"github.com/jetsetilly/learningenv/romsettings"
)

// RAM offsets used by the adapter.
const (
	ramMinutes       = 0xe8
	ramSeconds       = 0xe9 // BCD
	ramCentiseconds  = 0xea // BCD
	ramModeIndicator = 0xeb
	ramEndFlag       = 0x91
)

// the value of the end flag when the course is complete.
const endOfGame = 0xff

// the number of centiseconds in a minute. the seconds and centiseconds part
// of the clock decode to a value less than this
const centisecondsPerMinute = 6000

// DefaultMode is the mode selected when the adapter is created.
const DefaultMode = 1

const (
	minMode = 1
	maxMode = 10
)

// the number of frames the stick is held down to skip the start of the game.
const startingFrames = 16

// Skiing implements the romsettings.RomSettings interface.
type Skiing struct {
	prefs *romsettings.Preferences

	reward   int
	score    int
	terminal bool
	mode     int
}

var _ romsettings.RomSettings = (*Skiing)(nil)

func init() {
	romsettings.Register(func(prefs *romsettings.Preferences) romsettings.RomSettings {
		return NewSkiing(prefs)
	})
}

// NewSkiing is the preferred method of initialisation for the Skiing type. The
// prefs argument can be nil, in which case default preferences are used.
func NewSkiing(prefs *romsettings.Preferences) *Skiing {
	if prefs == nil {
		prefs = romsettings.NewPreferences()
	}
	return &Skiing{
		prefs: prefs,
		mode:  DefaultMode,
	}
}

func (sk *Skiing) String() string {
	return fmt.Sprintf("mode=%d, score=%d, reward=%d, terminal=%v", sk.mode, sk.score, sk.reward, sk.terminal)
}

// Name implements the romsettings.RomSettings interface.
func (sk *Skiing) Name() string {
	return "skiing"
}

// MD5 implements the romsettings.RomSettings interface.
func (sk *Skiing) MD5() string {
	return "b76fbadc8ffb1f83e2ca08b6fb4d6c9f"
}

// Clone implements the romsettings.RomSettings interface. The clone shares
// the preferences of the original.
func (sk *Skiing) Clone() romsettings.RomSettings {
	n := *sk
	return &n
}

// Step implements the romsettings.RomSettings interface.
//
// The score is decoded from the clock each frame. It is never accumulated so
// an error in one frame does not carry into the next. If any RAM read fails
// the adapter state is not changed.
func (sk *Skiing) Step(sys romsettings.System) error {
	centiseconds, err := romsettings.DecimalScore(sys, ramCentiseconds, ramSeconds)
	if err != nil {
		return curated.Errorf("skiing: %v", err)
	}

	minutes, err := romsettings.ReadRAM(sys, ramMinutes)
	if err != nil {
		return curated.Errorf("skiing: %v", err)
	}

	endFlag, err := romsettings.ReadRAM(sys, ramEndFlag)
	if err != nil {
		return curated.Errorf("skiing: %v", err)
	}

	// reward is negative when time passes
	score := int(minutes)*centisecondsPerMinute + centiseconds
	sk.reward = sk.score - score
	sk.score = score

	// terminal state is not cleared until the next reset
	if endFlag == endOfGame {
		sk.terminal = true
	}

	return nil
}

// IsTerminal implements the romsettings.RomSettings interface.
func (sk *Skiing) IsTerminal() bool {
	return sk.terminal
}

// Reward implements the romsettings.RomSettings interface.
func (sk *Skiing) Reward() int {
	return sk.reward
}

// Lives implements the romsettings.RomSettings interface. Skiing has no
// lives.
func (sk *Skiing) Lives() int {
	return 0
}

// IsMinimal implements the romsettings.RomSettings interface.
func (sk *Skiing) IsMinimal(a romsettings.Action) bool {
	switch a {
	case romsettings.NoOp, romsettings.Left, romsettings.Right:
		return true
	}
	return false
}

// IsLegal implements the romsettings.RomSettings interface. Actions using the
// fire button are illegal.
func (sk *Skiing) IsLegal(a romsettings.Action) bool {
	return a.Valid() && !a.Fire()
}

// Reset implements the romsettings.RomSettings interface. The currently
// selected mode is applied again.
func (sk *Skiing) Reset(sys romsettings.System, env romsettings.Environment) error {
	sk.reward = 0
	sk.score = 0
	sk.terminal = false
	return sk.SetMode(sk.mode, sys, env)
}

// StartingActions implements the romsettings.RomSettings interface. Holding
// the stick down skips the start of the game.
func (sk *Skiing) StartingActions() []romsettings.Action {
	acts := make([]romsettings.Action, startingFrames)
	for i := range acts {
		acts[i] = romsettings.Down
	}
	return acts
}

// AvailableModes implements the romsettings.RomSettings interface.
func (sk *Skiing) AvailableModes() []int {
	modes := make([]int, 0, maxMode-minMode+1)
	for m := minMode; m <= maxMode; m++ {
		modes = append(modes, m)
	}
	return modes
}

// AvailableDifficulties implements the romsettings.RomSettings interface.
// Skiing does not use the difficulty switches.
func (sk *Skiing) AvailableDifficulties() []int {
	return []int{0}
}

// Mode implements the romsettings.RomSettings interface.
func (sk *Skiing) Mode() int {
	return sk.mode
}

// SaveState implements the romsettings.RomSettings interface. Errors from the
// serialiser are returned unchanged.
func (sk *Skiing) SaveState(ser romsettings.Serialiser) error {
	if err := ser.PutInt(sk.reward); err != nil {
		return err
	}
	if err := ser.PutInt(sk.score); err != nil {
		return err
	}
	return ser.PutBool(sk.terminal)
}

// LoadState implements the romsettings.RomSettings interface. Errors from the
// deserialiser are returned unchanged and the adapter state is not changed.
func (sk *Skiing) LoadState(des romsettings.Deserialiser) error {
	reward, err := des.GetInt()
	if err != nil {
		return err
	}
	score, err := des.GetInt()
	if err != nil {
		return err
	}
	terminal, err := des.GetBool()
	if err != nil {
		return err
	}

	sk.reward = reward
	sk.score = score
	sk.terminal = terminal

	logger.Logf(logger.Allow, "skiing", "state loaded: %s", sk)

	return nil
}
