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

// Package paths contains functions to prepare paths for the resources used
// by the host application: the preferences file, input transcripts and so
// on.
//
// Resources are kept in a ".corebridge" directory. If that directory exists
// in the current working directory it is used, otherwise the directory is
// placed in the user's configuration directory (see os.UserConfigDir() for
// details). The directory is created if necessary.
package paths
