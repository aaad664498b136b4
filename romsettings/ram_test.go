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

package romsettings_test

import (
	"testing"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/romsettings"
	"github.com/jetsetilly/learningenv/test"
)

const unmapped = "peek: address %#04x is not mapped"

// memory implements the romsettings.System interface.
type memory map[uint16]uint8

func (m memory) Peek(address uint16) (uint8, error) {
	v, ok := m[address]
	if !ok {
		return 0, curated.Errorf(unmapped, address)
	}
	return v, nil
}

func TestReadRAM(t *testing.T) {
	mem := memory{0x80: 0x01, 0xe8: 0x02, 0xff: 0x03}

	v, err := romsettings.ReadRAM(mem, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x01)

	// offsets can be given as an address or as an index
	v, err = romsettings.ReadRAM(mem, 0xe8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x02)
	v, err = romsettings.ReadRAM(mem, 0x68)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x02)

	v, err = romsettings.ReadRAM(mem, 0x7f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x03)

	_, err = romsettings.ReadRAM(mem, 0x10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, unmapped))
}

func TestDecimalScore(t *testing.T) {
	mem := memory{0xea: 0x34, 0xe9: 0x12, 0xe8: 0x56}

	v, err := romsettings.DecimalScore(mem, 0xea)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 34)

	v, err = romsettings.DecimalScore(mem, 0xea, 0xe9)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 1234)

	v, err = romsettings.DecimalScore(mem, 0xea, 0xe9, 0xe8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 561234)

	// nibbles greater than nine are not corrected
	mem[0xea] = 0x0f
	mem[0xe9] = 0xa0
	v, err = romsettings.DecimalScore(mem, 0xea, 0xe9)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 10015)

	_, err = romsettings.DecimalScore(mem)
	test.ExpectFailure(t, err)
	_, err = romsettings.DecimalScore(mem, 0xea, 0xe9, 0xe8, 0xe7)
	test.ExpectFailure(t, err)

	// read failure
	_, err = romsettings.DecimalScore(mem, 0xea, 0x90)
	test.ExpectFailure(t, err)
}
