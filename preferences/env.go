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

package preferences

import (
	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/prefs"
)

// environment variables are optional so every field is a pointer. a nil field
// leaves the preference unchanged.
type environment struct {
	TouchDevice   *string  `env:"TOUCH_DEVICE"`
	EchoLog       *bool    `env:"ECHO_LOG"`
	MissingSlot   *string  `env:"MISSING_SLOT"`
	DefaultSlot   *int     `env:"SLOT"`
	Deadzone      *float64 `env:"DEADZONE"`
	RemoteAddress *string  `env:"REMOTE_ADDRESS"`
}

// ApplyEnvironment overrides preference values with any COREBRIDGE_
// environment variables. If environ is nil the process environment is used.
//
// A call to Save() after ApplyEnvironment() will write the overridden values
// to disk.
func (p *Preferences) ApplyEnvironment(environ map[string]string) error {
	var e environment
	if err := prefs.ParseEnv(&e, EnvPrefix, environ); err != nil {
		return curated.Errorf("preferences: %v", err)
	}

	set := func(name string, v value, nv prefs.Value) error {
		if err := v.Set(nv); err != nil {
			return curated.Errorf("preferences: %s%s: %v", EnvPrefix, name, err)
		}
		return nil
	}

	if e.TouchDevice != nil {
		if err := set("TOUCH_DEVICE", &p.TouchDevice, *e.TouchDevice); err != nil {
			return err
		}
	}
	if e.EchoLog != nil {
		if err := set("ECHO_LOG", &p.EchoLog, *e.EchoLog); err != nil {
			return err
		}
	}
	if e.MissingSlot != nil {
		if err := set("MISSING_SLOT", &p.MissingSlot, *e.MissingSlot); err != nil {
			return err
		}
	}
	if e.DefaultSlot != nil {
		if err := set("SLOT", &p.DefaultSlot, *e.DefaultSlot); err != nil {
			return err
		}
	}
	if e.Deadzone != nil {
		if err := set("DEADZONE", &p.Deadzone, *e.Deadzone); err != nil {
			return err
		}
	}
	if e.RemoteAddress != nil {
		if err := set("REMOTE_ADDRESS", &p.RemoteAddress, *e.RemoteAddress); err != nil {
			return err
		}
	}

	return nil
}
