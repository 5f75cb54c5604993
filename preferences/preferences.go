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
	"strings"

	"github.com/jetsetilly/corebridge/curated"
	"github.com/jetsetilly/corebridge/hostinput/gamepad"
	"github.com/jetsetilly/corebridge/native/loopback"
	"github.com/jetsetilly/corebridge/paths"
	"github.com/jetsetilly/corebridge/prefs"
	"github.com/jetsetilly/corebridge/userinput"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// EnvPrefix is the prefix of all environment variables that override
// preference values.
const EnvPrefix = "COREBRIDGE_"

// NumSlots is the number of savestate slots selectable from the front end.
const NumSlots = 10

// Preferences defines and collates all the preference values used by the
// front end.
type Preferences struct {
	dsk *prefs.Disk

	TouchDevice   prefs.String
	EchoLog       prefs.Bool
	MissingSlot   prefs.String
	DefaultSlot   prefs.Int
	Deadzone      prefs.Float
	RemoteAddress prefs.String
}

func (p *Preferences) String() string {
	var s strings.Builder
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		s.WriteString(k)
		s.WriteString(" = ")
		s.WriteString(v)
		s.WriteString("\n")
	}
	return s.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default preferences file in the
// resource directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.TouchDevice.SetMaxLen(64)
	p.MissingSlot.SetHookPre(func(v prefs.Value) error {
		_, err := loopback.ParseMissingSlotPolicy(v.(string))
		return err
	})
	p.DefaultSlot.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 0 || s >= NumSlots {
			return curated.Errorf("preferences: slot must be between 0 and %d", NumSlots-1)
		}
		return nil
	})
	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		if d := v.(float64); d < 0.0 || d > 1.0 {
			return curated.Errorf("preferences: deadzone must be between 0.0 and 1.0")
		}
		return nil
	})

	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath(DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for k, v := range p.entries() {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.TouchDevice.Set(userinput.TouchScreenDevice)
	_ = p.EchoLog.Set(false)
	_ = p.MissingSlot.Set(loopback.AlertOnMissing.String())
	_ = p.DefaultSlot.Set(0)
	_ = p.Deadzone.Set(gamepad.DefaultDeadzone)
	_ = p.RemoteAddress.Set("")
}

// Reset every preference to its default value. Unlike SetDefaults the values
// replace any command line values when saved.
func (p *Preferences) Reset() {
	p.SetDefaults()
	for _, k := range p.Keys() {
		p.dsk.Persist(k)
	}
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Policy returns the missing slot policy named by the MissingSlot preference.
func (p *Preferences) Policy() loopback.MissingSlotPolicy {
	policy, err := loopback.ParseMissingSlotPolicy(p.MissingSlot.String())
	if err != nil {
		return loopback.AlertOnMissing
	}
	return policy
}
