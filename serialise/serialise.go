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

// Package serialise writes and reads the state of game adapters. Values are
// written in the order they are given and must be read back in the same
// order. There is no framing or type information in the stream.
//
// Integers are written as eight byte, big-endian, two's complement values.
// Booleans are written as a single byte: zero for false and one for true.
//
// Writer and Reader implement the romsettings.Serialiser and
// romsettings.Deserialiser interfaces respectively.
package serialise

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/jetsetilly/learningenv/curated"
)

// Sentinal errors returned by the Reader type.
const (
	BadBool = "serialise: invalid bool value (%#02x)"
)

// Writer serialises values to an io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// PutInt writes an integer to the stream.
func (s *Writer) PutInt(v int) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(int64(v)))
	if _, err := s.w.Write(b[:]); err != nil {
		return curated.Errorf("serialise: %v", err)
	}
	return nil
}

// PutBool writes a boolean to the stream.
func (s *Writer) PutBool(v bool) error {
	b := [1]byte{0}
	if v {
		b[0] = 1
	}
	if _, err := s.w.Write(b[:]); err != nil {
		return curated.Errorf("serialise: %v", err)
	}
	return nil
}

// Reader deserialises values from an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// read exactly len(b) bytes. a stream that ends early is reported as
// io.ErrUnexpectedEOF, even if no bytes were read
func (s *Reader) read(b []byte) error {
	if _, err := io.ReadFull(s.r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return curated.Errorf("serialise: %v", err)
	}
	return nil
}

// GetInt reads an integer from the stream.
func (s *Reader) GetInt() (int, error) {
	var b [8]byte
	if err := s.read(b[:]); err != nil {
		return 0, err
	}
	return int(int64(binary.BigEndian.Uint64(b[:]))), nil
}

// GetBool reads a boolean from the stream. Byte values other than zero and
// one are an error.
func (s *Reader) GetBool() (bool, error) {
	var b [1]byte
	if err := s.read(b[:]); err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, curated.Errorf(BadBool, b[0])
}
