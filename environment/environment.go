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

package environment

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/learningenv/curated"
	"github.com/jetsetilly/learningenv/hardware/ports"
	"github.com/jetsetilly/learningenv/logger"
	"github.com/jetsetilly/learningenv/random"
	"github.com/jetsetilly/learningenv/romsettings"
	"github.com/jetsetilly/learningenv/serialise"
)

// Console is the emulated console being driven by the environment.
type Console interface {
	romsettings.System

	// PushEvent changes the state of a panel switch or of the joystick. The
	// change is seen by the game on the next frame
	PushEvent(ports.InputEvent) error

	// RunForFrameCount runs the console for the specified number of frames
	RunForFrameCount(numFrames int) error

	// Reset is the equivalent of switching the console off and on again
	Reset() error
}

// Recorder is given the result of every episode that ends.
type Recorder interface {
	// RecordEpisode returns the identifier given to the episode by the
	// recorder
	RecordEpisode(Episode) (string, error)
}

// Label is used to name the environment in log entries.
type Label string

// Environment drives a console with actions and steps a game adapter every
// frame.
type Environment struct {
	Label Label

	// random numbers are used for repeated (sticky) actions
	Random *random.Random

	Prefs *Preferences

	console  Console
	rs       romsettings.RomSettings
	recorder Recorder

	episode Episode

	// the action applied on the previous call to Act()
	lastAction romsettings.Action
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The console and adapter arguments must be supplied. The prefs argument can
// be nil in which case default preferences are used. Providing a non-nil
// value allows more than one environment to share preferences.
//
// The environment must be Reset() before actions are applied.
func NewEnvironment(console Console, rs romsettings.RomSettings, prefs *Preferences) (*Environment, error) {
	if console == nil {
		return nil, curated.Errorf("environment: no console")
	}
	if rs == nil {
		return nil, curated.Errorf("environment: no game adapter")
	}

	if prefs == nil {
		prefs = NewPreferences()
	}

	env := &Environment{
		Random:  random.NewRandom(),
		Prefs:   prefs,
		console: console,
		rs:      rs,
	}

	return env, nil
}

func (env *Environment) String() string {
	return fmt.Sprintf("%s: %s", env.rs.Name(), env.episode)
}

// tag used for log entries
func (env *Environment) tag() string {
	if env.Label == "" {
		return "environment"
	}
	return fmt.Sprintf("environment: %s", env.Label)
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.Prefs.Logging.Get().(bool)
}

// Normalise ensures the environment is in a known default state. Useful for
// testing where random numbers must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// SetRecorder sets the recorder for finished episodes. A nil recorder stops
// episodes being recorded.
func (env *Environment) SetRecorder(rec Recorder) {
	env.recorder = rec
}

// RomSettings returns the game adapter being driven by the environment.
func (env *Environment) RomSettings() romsettings.RomSettings {
	return env.rs
}

// Episode returns the state of the current episode.
func (env *Environment) Episode() Episode {
	return env.episode
}

// PressSelect implements the romsettings.Environment interface.
func (env *Environment) PressSelect(frames int) error {
	return env.holdSwitch(ports.PanelSelect, frames)
}

// SoftReset implements the romsettings.Environment interface. The reset
// switch is held for the number of frames in the ResetFrames preference.
func (env *Environment) SoftReset() error {
	return env.holdSwitch(ports.PanelReset, env.Prefs.ResetFrames.Get().(int))
}

// hold panel switch for the number of frames and then release it. the
// console is run for one more frame so that the release is seen
func (env *Environment) holdSwitch(sw ports.Event, frames int) error {
	if frames < 1 {
		return curated.Errorf("environment: %s must be held for at least one frame", sw)
	}

	err := env.console.PushEvent(ports.InputEvent{Port: ports.PortPanel, Ev: sw, D: true})
	if err != nil {
		return curated.Errorf("environment: %v", err)
	}
	if err := env.console.RunForFrameCount(frames); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	err = env.console.PushEvent(ports.InputEvent{Port: ports.PortPanel, Ev: sw, D: false})
	if err != nil {
		return curated.Errorf("environment: %v", err)
	}
	if err := env.console.RunForFrameCount(1); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	return nil
}

// Reset the console and the game adapter and start a new episode. The
// adapter's starting actions are applied and their rewards discarded.
func (env *Environment) Reset() error {
	if err := env.console.Reset(); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	if err := env.rs.Reset(env.console, env); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	for _, a := range env.rs.StartingActions() {
		if err := env.frame(a); err != nil {
			return err
		}
	}

	if err := env.input(romsettings.NoOp); err != nil {
		return err
	}

	env.lastAction = romsettings.NoOp
	env.episode = Episode{
		ROM:  env.rs.Name(),
		Mode: env.rs.Mode(),
	}

	return nil
}

// SetMode changes the game mode and resets the environment.
func (env *Environment) SetMode(m int) error {
	if err := env.rs.SetMode(m, env.console, env); err != nil {
		return curated.Errorf("environment: %v", err)
	}
	return env.Reset()
}

// Act applies the action for the number of frames in the FrameSkip
// preference and returns the sum of the rewards for those frames.
//
// Actions that are not legal for the game are replaced with NoOp. Once the
// episode has ended Act() does nothing and returns a reward of zero.
func (env *Environment) Act(a romsettings.Action) (int, error) {
	if env.episode.Terminal {
		return 0, nil
	}

	if !env.rs.IsLegal(a) {
		logger.Logf(env, env.tag(), "illegal action (%s) replaced with %s", a, romsettings.NoOp)
		a = romsettings.NoOp
	}

	if p := env.Prefs.RepeatAction.Get().(int); p > 0 && env.Random.IntN(100) < p {
		a = env.lastAction
	}
	env.lastAction = a

	var reward int

	skip := env.Prefs.FrameSkip.Get().(int)
	for range skip {
		if err := env.frame(a); err != nil {
			return 0, err
		}
		reward += env.rs.Reward()
		env.episode.Frames++

		if env.rs.IsTerminal() {
			break // for loop
		}
	}

	env.episode.Reward += reward

	if env.rs.IsTerminal() {
		env.episode.Terminal = true
		if err := env.endEpisode(); err != nil {
			return reward, err
		}
	}

	return reward, nil
}

// run a single frame with the action and step the adapter
func (env *Environment) frame(a romsettings.Action) error {
	if err := env.input(a); err != nil {
		return err
	}
	if err := env.console.RunForFrameCount(1); err != nil {
		return curated.Errorf("environment: %v", err)
	}
	if err := env.rs.Step(env.console); err != nil {
		return curated.Errorf("environment: %v", err)
	}
	return nil
}

// push the joystick events for the action
func (env *Environment) input(a romsettings.Action) error {
	for _, ev := range actionEvents(a) {
		if err := env.console.PushEvent(ev); err != nil {
			return curated.Errorf("environment: %v", err)
		}
	}
	return nil
}

func (env *Environment) endEpisode() error {
	logger.Logf(env, env.tag(), "episode ended: %s", env.episode)

	if env.recorder == nil {
		return nil
	}

	id, err := env.recorder.RecordEpisode(env.episode)
	if err != nil {
		return curated.Errorf("environment: %v", err)
	}
	env.episode.ID = id

	return nil
}

// Checkpoint writes the state of the game adapter and of the current episode.
// The state of the console is not included.
func (env *Environment) Checkpoint(w io.Writer) error {
	ser := serialise.NewWriter(w)

	if err := env.rs.SaveState(ser); err != nil {
		return curated.Errorf("environment: checkpoint: %v", err)
	}

	err := putAll(ser,
		env.episode.Frames,
		env.episode.Reward,
		env.episode.Terminal,
		int(env.lastAction),
	)
	if err != nil {
		return curated.Errorf("environment: checkpoint: %v", err)
	}

	return nil
}

// Restore reads state written by Checkpoint(). If the state cannot be read
// the environment is not changed.
func (env *Environment) Restore(r io.Reader) error {
	des := serialise.NewReader(r)

	// the state is read into a copy of the adapter first so that a partial
	// read does not leave the adapter half restored
	rs := env.rs.Clone()
	if err := rs.LoadState(des); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}

	ep := env.episode

	var err error
	var last int

	if ep.Frames, err = des.GetInt(); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}
	if ep.Reward, err = des.GetInt(); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}
	if ep.Terminal, err = des.GetBool(); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}
	if last, err = des.GetInt(); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}
	if !romsettings.Action(last).Valid() {
		return curated.Errorf("environment: restore: %v", curated.Errorf(romsettings.UnknownAction, fmt.Sprint(last)))
	}

	// copy the restored state into the adapter owned by the caller
	var buf bytes.Buffer
	if err := rs.SaveState(serialise.NewWriter(&buf)); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}
	if err := env.rs.LoadState(serialise.NewReader(&buf)); err != nil {
		return curated.Errorf("environment: restore: %v", err)
	}

	env.episode = ep
	env.lastAction = romsettings.Action(last)

	return nil
}

// write values of type int or bool in order
func putAll(ser romsettings.Serialiser, values ...any) error {
	for _, v := range values {
		var err error
		switch v := v.(type) {
		case int:
			err = ser.PutInt(v)
		case bool:
			err = ser.PutBool(v)
		default:
			err = curated.Errorf("cannot serialise %T", v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
