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

import (
	"github.com/jetsetilly/learningenv/curated"
)

// ReadRAM returns the value of the RAM byte at offset. Only the lower seven
// bits of the offset are used so an offset can be given as an index (0x00 to
// 0x7f) or as the address of the RAM byte (0x80 to 0xff).
func ReadRAM(sys System, offset int) (uint8, error) {
	address := uint16(0x80 + (offset & 0x7f))
	v, err := sys.Peek(address)
	if err != nil {
		return 0, curated.Errorf("romsettings: %v", err)
	}
	return v, nil
}

// the weight of each byte of a decimal score
var decimalWeights = [...]int{1, 100, 10000}

// DecimalScore decodes a score stored as binary coded decimal across one to
// three RAM bytes. The offsets are given from least significant to most
// significant.
//
// Each byte holds two decimal digits. For example, the bytes 0x34 and 0x12 at
// offsets 0xea and 0xe9 make the value 1234:
//
//	score, err := DecimalScore(sys, 0xea, 0xe9)
//
// Nibbles greater than nine are not corrected. They are decoded as a digit
// with the value of the nibble.
func DecimalScore(sys System, offsets ...int) (int, error) {
	if len(offsets) == 0 || len(offsets) > len(decimalWeights) {
		return 0, curated.Errorf("romsettings: decimal score must use between 1 and %d bytes", len(decimalWeights))
	}

	var score int
	for i, o := range offsets {
		v, err := ReadRAM(sys, o)
		if err != nil {
			return 0, err
		}
		hi := int(v >> 4)
		lo := int(v & 0x0f)
		score += ((10 * hi) + lo) * decimalWeights[i]
	}

	return score, nil
}
