// This file is part of Corebridge.
//
// Corebridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corebridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Corebridge.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and a list
// of values in the same way as fmt.Errorf().
//
// The pattern is remembered and is used to identify the error later on. The
// Is() function checks the pattern of the outermost error and the Has()
// function checks the entire chain:
//
//	e := curated.Errorf("session: %v", curated.Errorf(InvalidTransition, "pause", "Stopped"))
//
//	curated.Is(e, InvalidTransition)  // false
//	curated.Has(e, InvalidTransition) // true
//
// Sentinel patterns should be stored as a const string, next to the code that
// raises them, suitably named and commented.
//
// The Error() implementation normalises the chain of messages by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": " so
// that wrapping an error with the same prefix twice does not result in an
// unreadable message:
//
//	session: session: cannot pause
//
// becomes
//
//	session: cannot pause
//
// Curated errors also implement Unwrap() so that the standard errors.Is()
// and errors.As() functions can see through to any wrapped error value.
package curated
