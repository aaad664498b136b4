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

// System is the view of console memory used by an adapter. Addresses are
// CPU addresses, eg. 0x80 is the first byte of RAM.
type System interface {
	Peek(address uint16) (uint8, error)
}

// Environment is the part of the harness an adapter uses to drive the
// console outside of normal play. Both functions block until the input has
// been applied and the console has run the corresponding frames.
type Environment interface {
	// PressSelect holds the select switch for the number of frames and then
	// releases it
	PressSelect(frames int) error

	// SoftReset presses the reset switch. The console is re-initialised by
	// the program in the cartridge. RAM that the program does not clear on
	// reset (eg. the selected game mode) survives
	SoftReset() error
}

// Serialiser is the stream that adapter state is saved to.
type Serialiser interface {
	PutInt(int) error
	PutBool(bool) error
}

// Deserialiser is the stream that adapter state is loaded from.
type Deserialiser interface {
	GetInt() (int, error)
	GetBool() (bool, error)
}

// RomSettings is the interface that every game adapter implements. An adapter
// translates the RAM of a specific game into reward and terminal signals and
// knows how to select the game variants (modes) offered by the game.
//
// Adapters are not safe for concurrent use. The expected call order is Reset()
// followed by repeated calls to Step(), with optional SaveState()/LoadState()
// calls between steps.
type RomSettings interface {
	// Name of the game. Lowercase with no spaces
	Name() string

	// MD5 hash of the ROM image the adapter understands
	MD5() string

	// Reset adapter state at the beginning of an episode. The currently
	// selected mode is applied to the console
	Reset(sys System, env Environment) error

	// Step decodes console memory. Called once per frame
	Step(sys System) error

	// IsTerminal returns true once the end of the episode has been seen
	IsTerminal() bool

	// Reward for the most recent call to Step()
	Reward() int

	// Lives remaining. Zero if the game has no concept of lives
	Lives() int

	// IsMinimal returns true if the action is part of the smallest set of
	// actions needed to play the game
	IsMinimal(a Action) bool

	// IsLegal returns true if the action can be used
	IsLegal(a Action) bool

	// StartingActions are applied by the harness after a reset and before
	// normal control begins
	StartingActions() []Action

	// AvailableModes lists the game modes in ascending order
	AvailableModes() []int

	// Mode returns the currently selected mode
	Mode() int

	// SetMode selects a game mode. Must be one of the values returned by
	// AvailableModes(). Blocks until the console shows the requested mode
	SetMode(m int, sys System, env Environment) error

	// AvailableDifficulties lists the difficulty switch settings supported
	AvailableDifficulties() []int

	// SaveState and LoadState write and read adapter state in the same
	// order
	SaveState(ser Serialiser) error
	LoadState(des Deserialiser) error

	// Clone returns an independent copy of the adapter
	Clone() RomSettings
}

// Sentinal error patterns returned by adapters.
const (
	// out of range mode. this is a programming or configuration error and
	// should not be retried
	UnsupportedMode = "romsettings: mode %d is not supported by %s"

	// the mode indicator in console memory never showed the requested mode
	ModeSwitchLimit = "romsettings: %s: mode %d not reached after %d presses of select"
)

// ModeSupported returns true if the mode is one of the modes returned by
// AvailableModes().
func ModeSupported(rs RomSettings, m int) bool {
	for _, n := range rs.AvailableModes() {
		if n == m {
			return true
		}
	}
	return false
}
