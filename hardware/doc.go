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

// Package hardware is a frame level model of the Atari VCS as seen by a game
// adapter: the 128 bytes of RAM, the front panel and the left joystick.
//
// There is no CPU emulation. The program in the cartridge is a Go type
// implementing the Cartridge interface, which is stepped once per frame. This
// is sufficient for developing and testing adapters without ROM images. An
// emulator with a full CPU can be used instead by implementing the Console
// interface of the environment package.
package hardware
