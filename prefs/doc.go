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

// Package prefs facilitates the storage of preferential values in the
// learning environment. It is a layer over a YAML file of key/value pairs.
//
// The Bool, Int and String types hold values safely for concurrent reads.
// Values are registered with a Disk instance under a key:
//
//	dsk, err := prefs.NewDisk("learningenv.yaml")
//	var limit prefs.Int
//	err = dsk.Add("skiing.modeswitchlimit", &limit)
//	err = dsk.Load()
//
// Keys are conventionally grouped with a dot separated prefix. The prefix is
// a naming convention only and has no meaning to the package.
//
// The override stack (PushOverrides() and PopOverrides()) lets a harness
// replace values for a single run without changing the preferences file.
package prefs
