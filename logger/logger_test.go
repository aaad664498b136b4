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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/learningenv/logger"
	"github.com/jetsetilly/learningenv/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatsAndTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "skiing", errors.New("mode switch failed"))
	log.Log(logger.Allow, "skiing", errors.New("mode switch failed"))
	log.Logf(logger.Allow, "skiing", "mode %d", 3)
	log.Write(w)
	test.ExpectSuccess(t, w.Compare("skiing: mode switch failed (repeat x2)\nskiing: mode 3\n"))
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Deny, "test", "dropped")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	log.Log(logger.Allow, "test", "kept")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare("test: kept\n"))
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectSuccess(t, w.Compare("b: 2\nc: 3\n"))
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}

	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectSuccess(t, w.Compare("echo: hello\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "world")
	test.ExpectSuccess(t, w.Compare("echo: hello\n"))
}
