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

// Package prefs holds preference values and the means to persist them.
//
// Each preference is one of the value types Bool, String, Int or Float.
// Values are safe to read and write from any goroutine. A preference is
// attached to a Disk with Add() under a unique key, and the Disk saves and
// loads all attached values to a single file.
//
// Preference files are plain text. Each line is a "key :: value" pair and the
// file begins with WarningBoilerPlate. Keys that are in the file but not
// attached to the Disk are preserved when the file is saved.
//
// Values can be overridden for the session with a command line group (see
// PushCommandLineStack()) or from the process environment (see ParseEnv()).
package prefs
