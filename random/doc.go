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

// Package random should be used in preference to the math/rand package when a
// random number is required by the environment.
//
// A Random instance is a single stream of numbers that is not affected by
// resets of the console. Two episodes that take the same actions will not
// see the same random decisions.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true. The stream restarts from the zero seed the next time a number is
// requested. This is useful for testing purposes.
package random
