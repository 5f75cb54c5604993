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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/corebridge/prefs"
	"github.com/jetsetilly/corebridge/test"
)

type envOverlay struct {
	Device *string `env:"DEVICE"`
	Echo   *bool   `env:"ECHO"`
	Slot   *int    `env:"SLOT"`
}

func TestParseEnv(t *testing.T) {
	var o envOverlay
	err := prefs.ParseEnv(&o, "TEST_", map[string]string{
		"TEST_DEVICE": "Touchpad",
		"TEST_SLOT":   "4",
		"DEVICE":      "ignored",
	})
	test.DemandSuccess(t, err)

	test.DemandEquality(t, o.Device != nil, true)
	test.ExpectEquality(t, *o.Device, "Touchpad")
	test.DemandEquality(t, o.Slot != nil, true)
	test.ExpectEquality(t, *o.Slot, 4)

	// unset variables leave the field untouched
	test.ExpectEquality(t, o.Echo == nil, true)
}

func TestParseEnvBadValue(t *testing.T) {
	var o envOverlay
	err := prefs.ParseEnv(&o, "TEST_", map[string]string{
		"TEST_SLOT": "four",
	})
	test.ExpectFailure(t, err)
}
