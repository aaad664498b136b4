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

package hardware

import (
	"encoding/hex"

	"github.com/jetsetilly/learningenv/curated"
)

// The address range of the 128 bytes of RAM. The range is mirrored at
// 0x0180 to 0x01ff (the 6507 stack page).
const (
	OriginRAM = uint16(0x0080)
	MemtopRAM = uint16(0x00ff)
)

// Sentinal errors for addresses outside of RAM.
const (
	UnreadableAddress = "ram: address is not readable (%#04x)"
	UnwritableAddress = "ram: address is not writable (%#04x)"
)

// RAM represents the 128bytes of RAM in the PIA 6532 chip, found in the Atari
// VCS.
type RAM struct {
	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM() *RAM {
	return &RAM{
		RAM: make([]uint8, MemtopRAM-OriginRAM+1),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.RAM)
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// returns false if address is not in RAM or one of its mirrors
func mapped(address uint16) bool {
	return address&0xfe80 == OriginRAM
}

// Peek returns the value at the address. The address can be in the primary
// range or the mirror.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	if !mapped(address) {
		return 0, curated.Errorf(UnreadableAddress, address)
	}
	return ram.RAM[address&0x007f], nil
}

// Poke sets the value at the address. The address can be in the primary
// range or the mirror.
func (ram *RAM) Poke(address uint16, value uint8) error {
	if !mapped(address) {
		return curated.Errorf(UnwritableAddress, address)
	}
	ram.RAM[address&0x007f] = value
	return nil
}
