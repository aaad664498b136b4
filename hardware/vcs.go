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
	"fmt"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/hardware/ports"
)

// Cartridge implementations are the program running in the console. The
// program sees the console through the VCS type: it reads the panel and the
// joystick and changes RAM.
type Cartridge interface {
	// Reset is called when the console is powered on
	Reset(vcs *VCS)

	// Step is called once per frame
	Step(vcs *VCS) error
}

// VCS struct is the main container for the components of the console.
type VCS struct {
	RAM      *RAM
	Panel    *Panel
	Joystick *Joystick

	cart  Cartridge
	frame int
}

// NewVCS creates a new VCS with the cartridge inserted. The VCS is reset
// before it is returned.
func NewVCS(cart Cartridge) (*VCS, error) {
	if cart == nil {
		return nil, curated.Errorf("vcs: no cartridge")
	}

	vcs := &VCS{
		RAM:      NewRAM(),
		Panel:    NewPanel(),
		Joystick: &Joystick{},
		cart:     cart,
	}

	if err := vcs.Reset(); err != nil {
		return nil, err
	}

	return vcs, nil
}

func (vcs *VCS) String() string {
	return fmt.Sprintf("frame=%d, panel=[%s], stick=%s", vcs.frame, vcs.Panel, vcs.Joystick)
}

// Reset emulates the power-on of the console. RAM is cleared, switches are
// released and the cartridge is reset. Compare to the reset switch on the
// panel, which is something the cartridge program handles itself.
func (vcs *VCS) Reset() error {
	vcs.RAM.Reset()
	vcs.Panel.Reset()
	vcs.Joystick.Reset()
	vcs.frame = 0
	vcs.cart.Reset(vcs)
	return nil
}

// Peek implements the romsettings.System interface.
func (vcs *VCS) Peek(address uint16) (uint8, error) {
	v, err := vcs.RAM.Peek(address)
	if err != nil {
		return 0, curated.Errorf("vcs: %v", err)
	}
	return v, nil
}

// Poke sets a value in RAM.
func (vcs *VCS) Poke(address uint16, value uint8) error {
	if err := vcs.RAM.Poke(address, value); err != nil {
		return curated.Errorf("vcs: %v", err)
	}
	return nil
}

// PushEvent forwards the input event to the panel or the joystick. The
// effect of the event is seen by the cartridge on the next frame.
func (vcs *VCS) PushEvent(ev ports.InputEvent) error {
	var err error

	switch ev.Port {
	case ports.PortPanel:
		err = vcs.Panel.HandleEvent(ev.Ev, ev.D)
	case ports.PortLeft:
		err = vcs.Joystick.HandleEvent(ev.Ev, ev.D)
	default:
		err = curated.Errorf("vcs: unrecognised port (%s)", ev.Port)
	}

	if err != nil {
		return curated.Errorf("vcs: %v", err)
	}

	return nil
}

// RunForFrameCount sets emulation running for the specified number of frames.
func (vcs *VCS) RunForFrameCount(numFrames int) error {
	for range numFrames {
		if err := vcs.cart.Step(vcs); err != nil {
			return curated.Errorf("vcs: frame %d: %v", vcs.frame, err)
		}
		vcs.frame++
	}
	return nil
}

// Frame returns the number of frames since power on.
func (vcs *VCS) Frame() int {
	return vcs.frame
}
