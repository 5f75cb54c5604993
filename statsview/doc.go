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

// Package statsview offers runtime statistics of the running process over
// HTTP. It is only built when the statsview build tag is present. Without the
// tag, Available() returns false and Launch() does nothing.
//
// Graphical statistics are served at:
//
//	<address>/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	<address>/debug/pprof/
//
// The RUN mode of corebridge launches the server when the -statsview flag is
// given. Watching goroutine counts while alerts and input events are being
// generated is the main use.
package statsview
