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

package prefs

import (
	"github.com/caarlos0/env/v11"

	"github.com/jetsetilly/corebridge/curated"
)

// ParseEnv fills the fields of target, which must be a pointer to a struct
// with `env` tags, from environment variables. Only variables beginning with
// prefix are considered and the prefix is not part of the tag.
//
// If environ is nil the process environment is used.
func ParseEnv(target any, prefix string, environ map[string]string) error {
	opts := env.Options{
		Prefix:      prefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return curated.Errorf("prefs: environment: %v", err)
	}
	return nil
}
