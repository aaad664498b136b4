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

// Package hiscore records finished episodes in an SQLite database and
// retrieves the best results for a game and mode.
//
// The Store type implements the environment.Recorder interface:
//
//	store, err := hiscore.Open("")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//	env.SetRecorder(store)
//
// Each episode is given a UUID when it is recorded.
package hiscore
