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

// Package modalflag handles command lines that select a mode of operation
// before any mode specific flags. For example:
//
//	corebridge -prefs log.echo::true RUN -remote :8090 game.iso
//
// A Modes instance is created with the argument list and is then parsed one
// layer at a time. Each layer starts with NewMode(), declares its flags and
// the sub-modes that may follow, and then calls Parse().
//
//	md := modalflag.NewModes(os.Stdout, os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		remote := md.AddString("remote", "", "remote input address")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument does
// not name a sub-mode. Sub-mode names are not case sensitive and are always
// reported in upper case.
//
// Help output for the -help flag is written to the Output writer and lists the
// flags and sub-modes of the current layer.
package modalflag
