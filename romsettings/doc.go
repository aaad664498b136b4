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

// Package romsettings defines the interface between a learning harness and
// game adapters. A game adapter (an implementation of RomSettings) reads the
// RAM of a running game and turns it into a reward and a terminal signal.
//
// Adapters see the console through two small interfaces. System gives read
// access to memory. Environment allows the adapter to press the select and
// reset switches, which is how game modes are chosen on the VCS.
//
// Adapters register themselves with the package so that a harness can find
// the adapter for a ROM by name or by MD5 hash:
//
//	import _ "github.com/jetsetilly/learningenv/romsettings/skiing"
//
//	rs, err := romsettings.Create("skiing", nil)
//
// The package also provides helpers for decoding RAM. Most games store their
// score as binary coded decimal, which DecimalScore() decodes.
package romsettings
