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
	"fmt"
	"strings"
)

// Episode is the state of a single run of a game, from reset to the terminal
// state.
type Episode struct {
	// the identifier given by the Recorder. empty until the episode has been
	// recorded
	ID string

	ROM  string
	Mode int

	// the number of frames run since the end of the starting actions
	Frames int

	// the sum of all rewards since the end of the starting actions
	Reward int

	Terminal bool
}

func (ep Episode) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s (mode %d): %d frames, reward %d", ep.ROM, ep.Mode, ep.Frames, ep.Reward))
	if ep.Terminal {
		s.WriteString(" [terminal]")
	}
	return s.String()
}
