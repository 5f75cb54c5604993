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

// Package version reports the version of the front end. A release number can
// be set at build time with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/corebridge/version.number=v0.1.0"
//
// Without a release number the VCS information embedded by the go toolchain
// describes the build.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Corebridge"

// set by the linker for release builds
var number string

type build struct {
	version  string
	revision string
	release  bool
}

var current = sync.OnceValue(func() build {
	b := build{
		version:  number,
		revision: "no revision information",
		release:  number != "",
	}

	var vcs, modified bool
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				b.revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		b.revision += "+dirty"
	}

	// "local" means there is no vcs information either, as is the case with
	// "go run ."
	if b.version == "" {
		if vcs {
			b.version = "unreleased"
		} else {
			b.version = "local"
		}
	}

	return b
})

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	b := current()
	return b.version, b.revision, b.release
}

// String returns the application name and version in a form suitable for log
// entries.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, current().version)
}
