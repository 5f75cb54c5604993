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

// Package loopback is an in-process implementation of the native.Core
// interface. It does not emulate anything. It stands in for the real core
// when running the command line host and in tests.
//
// Input calls are recorded and can be inspected with Calls(). Controls in
// the controls table are reported as handled and everything else is not.
//
// Snapshots are held in memory for the lifetime of the Core, so a snapshot
// saved in one session can be loaded in the next. Loading a slot that has
// never been saved raises an alert, unless the missing slot policy says
// otherwise.
//
// Metadata is taken from the file name of the image. A game ID in square
// brackets in the file name, for example "Zelda [GALE01].iso", is used to
// answer the country, company and platform questions.
package loopback
