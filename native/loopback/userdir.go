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

package loopback

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/corebridge/logger"
)

// the folders created by CreateUserFolders()
var userFolders = []string{
	"Config",
	"GC",
	"Wii",
	"StateSaves",
	"ScreenShots",
	"Logs",
}

// SetUserDirectory implements the native.UserDirectory interface.
func (c *Core) SetUserDirectory(directory string) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.userDir = directory
}

// GetUserDirectory implements the native.UserDirectory interface.
func (c *Core) GetUserDirectory() string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.userDir
}

// CreateUserFolders implements the native.UserDirectory interface. Failure to
// create a folder is raised as an alert.
func (c *Core) CreateUserFolders() {
	dir := c.GetUserDirectory()
	if dir == "" {
		logger.Log(logger.Allow, "loopback", "no user directory")
		return
	}

	for _, f := range userFolders {
		if err := os.MkdirAll(filepath.Join(dir, f), 0o755); err != nil {
			c.raise(err.Error())
			return
		}
	}
}
