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
	"regexp"
	"strings"

	"github.com/jetsetilly/corebridge/native"
)

// a six character game ID in square brackets
var gameIDPattern = regexp.MustCompile(`\[([A-Z0-9]{6})\]`)

// publisher names for the two character maker code at the end of a game ID
var makers = map[string]string{
	"01": "Nintendo",
	"08": "Capcom",
	"41": "Ubisoft",
	"4Q": "Disney",
	"52": "Activision",
	"5D": "Midway",
	"69": "Electronic Arts",
	"6S": "TDK Mediactive",
	"78": "THQ",
	"8P": "Sega",
	"AF": "Namco",
	"E9": "Natsume",
}

func gameID(filename string) string {
	m := gameIDPattern.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return ""
	}
	return m[1]
}

// GetTitle implements the native.Metadata interface. The title is the file
// name without the extension or game ID.
func (c *Core) GetTitle(filename string) string {
	t := filepath.Base(filename)
	t = strings.TrimSuffix(t, filepath.Ext(t))
	t = gameIDPattern.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// GetDescription implements the native.Metadata interface. Images have no
// description without a banner.
func (c *Core) GetDescription(filename string) string {
	return ""
}

// GetGameID implements the native.Metadata interface.
func (c *Core) GetGameID(filename string) string {
	return gameID(filename)
}

// GetCountry implements the native.Metadata interface. The country is
// decided by the fourth character of the game ID.
func (c *Core) GetCountry(filename string) int {
	id := gameID(filename)
	if id == "" {
		return native.CountryUnknown
	}
	switch id[3] {
	case 'E':
		return native.CountryUSA
	case 'J':
		return native.CountryJapan
	case 'P':
		return native.CountryEurope
	case 'K':
		return native.CountryKorea
	case 'U':
		return native.CountryAustralia
	case 'F':
		return native.CountryFrance
	case 'D':
		return native.CountryGermany
	case 'I':
		return native.CountryItaly
	case 'R':
		return native.CountryRussia
	case 'S':
		return native.CountrySpain
	case 'W':
		return native.CountryTaiwan
	}
	return native.CountryUnknown
}

// GetCompany implements the native.Metadata interface.
func (c *Core) GetCompany(filename string) string {
	id := gameID(filename)
	if id == "" {
		return ""
	}
	return makers[id[4:]]
}

// GetFilesize implements the native.Metadata interface. Returns zero if the
// file cannot be found.
func (c *Core) GetFilesize(filename string) int64 {
	info, err := os.Stat(filename)
	if err != nil {
		return 0
	}
	return info.Size()
}

// GetPlatform implements the native.Metadata interface. The platform is
// decided by the file extension and then by the first character of the game
// ID.
func (c *Core) GetPlatform(filename string) int {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gcm", ".gcz":
		return native.PlatformGameCube
	case ".wbfs":
		return native.PlatformWii
	case ".wad":
		return native.PlatformWiiWare
	}

	id := gameID(filename)
	if id == "" {
		return native.PlatformUnknown
	}
	switch id[0] {
	case 'G', 'D':
		return native.PlatformGameCube
	case 'R', 'S':
		return native.PlatformWii
	case 'W':
		return native.PlatformWiiWare
	}
	return native.PlatformUnknown
}

// GetBanner implements the native.Metadata interface. There is never a
// banner.
func (c *Core) GetBanner(filename string) []int32 {
	return nil
}
