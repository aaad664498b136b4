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

// Package environment drives a console and a game adapter together, one
// action at a time. It is the piece a learning harness talks to.
//
// The Environment type implements the romsettings.Environment interface so
// that adapters can press the select and reset switches of the console when
// changing game mode.
//
// A typical session:
//
//	rs, _ := romsettings.Create("skiing", nil)
//	env, _ := environment.NewEnvironment(vcs, rs, nil)
//	env.Reset()
//	for !env.Episode().Terminal {
//		reward, err := env.Act(romsettings.Left)
//		...
//	}
//
// Finished episodes are handed to a Recorder, if one has been set with
// SetRecorder(). The hiscore package provides a Recorder backed by a
// database.
package environment
