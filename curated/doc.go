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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to test for should be
// stored as exported const strings. For example, the romsettings package
// declares:
//
//	const UnsupportedMode = "mode %d is not supported by %s"
//
// and the caller can test for it:
//
//	err := rs.SetMode(11, vcs, env)
//	if curated.Is(err, romsettings.UnsupportedMode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(romsettings.UnsupportedMode, 11, "skiing")
//	f := curated.Errorf("environment: %v", e)
//
//	curated.Has(f, romsettings.UnsupportedMode) // true
//	curated.Is(f, romsettings.UnsupportedMode)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors. An error wrapped twice with "skiing: %v" will read:
//
//	skiing: mode switch did not converge
//
// and not:
//
//	skiing: skiing: mode switch did not converge
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Curated errors also implement Unwrap() so that errors.Is() from the
// standard library finds non-curated errors (eg. io.EOF) in the values of a
// curated error.
package curated
