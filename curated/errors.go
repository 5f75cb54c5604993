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

package curated

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// curated is an error that remembers the pattern it was created with.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a format string in the
// manner of fmt.Errorf() and is used by Is() and Has() to identify the error.
// Formatting is deferred until Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. A message part that repeats the part
// before it is only included once, so wrapping an error with a pattern of
// the same prefix does not stutter.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")
	return strings.Join(slices.Compact(parts), ": ")
}

// Unwrap returns the first value that is an error, or nil.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if err is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if err is a curated error created with the pattern. The
// wrapped errors are not considered. See Has().
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if err, or any error it wraps, is a curated error created
// with the pattern.
func Has(err error, pattern string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if Is(err, pattern) {
			return true
		}
	}
	return false
}
