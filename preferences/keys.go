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
	"maps"
	"slices"

	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/prefs"
)

type value interface {
	String() string
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

func (p *Preferences) entries() map[string]value {
	return map[string]value{
		"input.touch.device":  &p.TouchDevice,
		"log.echo":            &p.EchoLog,
		"session.missingslot": &p.MissingSlot,
		"session.slot":        &p.DefaultSlot,
		"gamepad.deadzone":    &p.Deadzone,
		"remote.address":      &p.RemoteAddress,
	}
}

// Keys returns the sorted list of preference keys.
func (p *Preferences) Keys() []string {
	return slices.Sorted(maps.Keys(p.entries()))
}

// Get returns the current value of the named preference as a string.
func (p *Preferences) Get(key string) (string, error) {
	v, ok := p.entries()[key]
	if !ok {
		return "", curated.Errorf("preferences: unknown key %q", key)
	}
	return v.String(), nil
}

// Set the named preference from a string. The value is not saved to disk
// until Save() is called.
func (p *Preferences) Set(key string, s string) error {
	v, ok := p.entries()[key]
	if !ok {
		return curated.Errorf("preferences: unknown key %q", key)
	}
	if err := v.Set(s); err != nil {
		return curated.Errorf("preferences: %s: %v", key, err)
	}
	p.dsk.Persist(key)
	return nil
}
