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

package loopback

import (
	"strings"

	"github.com/jetsetilly/corebridge/curated"
)

// MissingSlotPolicy decides what happens when a snapshot slot that has never
// been saved is loaded.
type MissingSlotPolicy int

// List of missing slot policies.
const (
	AlertOnMissing MissingSlotPolicy = iota
	IgnoreMissing
)

func (p MissingSlotPolicy) String() string {
	switch p {
	case AlertOnMissing:
		return "alert"
	case IgnoreMissing:
		return "ignore"
	}
	return ""
}

// UnknownPolicy is the pattern for errors returned by ParseMissingSlotPolicy.
const UnknownPolicy = "loopback: unknown missing slot policy: %s"

// ParseMissingSlotPolicy returns the policy named by the string. Names are
// those returned by the String() function and are not case sensitive.
func ParseMissingSlotPolicy(s string) (MissingSlotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alert", "":
		return AlertOnMissing, nil
	case "ignore":
		return IgnoreMissing, nil
	}
	return AlertOnMissing, curated.Errorf(UnknownPolicy, s)
}
