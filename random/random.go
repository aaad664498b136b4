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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a random number generator whose stream survives console resets.
type Random struct {
	rng *rand.Rand

	// the value of ZeroSeed when rng was seeded
	seededZero bool

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// the RNG is seeded on first use and again whenever ZeroSeed changes
func (rnd *Random) rand() *rand.Rand {
	if rnd.rng == nil || rnd.seededZero != rnd.ZeroSeed {
		seed := baseSeed
		if rnd.ZeroSeed {
			seed = 0
		}
		rnd.rng = rand.New(rand.NewPCG(seed, 0))
		rnd.seededZero = rnd.ZeroSeed
	}
	return rnd.rng
}

// IntN returns the next number in the range [0, n). Panics if n is not
// positive.
func (rnd *Random) IntN(n int) int {
	return rnd.rand().IntN(n)
}
