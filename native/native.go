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

package native

// Surface is the host's rendering target. The core is given the surface when
// it starts running and must not use it after it has stopped. The value is
// opaque to this module.
type Surface any

// Input receives controller input from the host.
type Input interface {
	// GamePadEvent forwards a digital control. The action value is a
	// controls.ButtonState. Returns true if the core consumed the event.
	GamePadEvent(device string, button int, action int) bool

	// GamePadMoveEvent forwards an analogue value for an axis.
	GamePadMoveEvent(device string, axis int, value float32)
}

// Lifecycle controls the running of the core.
type Lifecycle interface {
	// Run starts emulation with the file set by Extras.SetFilename(). Run
	// returns once the emulation has started.
	Run(surface Surface)

	PauseEmulation()
	UnPauseEmulation()
	StopEmulation()
}

// Snapshots saves and restores the state of the running emulation. The slot
// is an opaque key. A missing slot is reported through the AlertSink.
type Snapshots interface {
	SaveState(slot int)
	LoadState(slot int)
}

// AlertSink receives alerts from the core. RaiseAlert may be called from any
// goroutine, including from inside a call made by the host to the core.
type AlertSink interface {
	RaiseAlert(message string)
}

// AlertSource is implemented by cores that raise alerts.
type AlertSource interface {
	SetAlertSink(sink AlertSink)
}

// Config is an opaque key/value store kept by the core. Keys are grouped by
// file and section.
type Config interface {
	// GetConfig returns the value of the key or def if there is no value.
	GetConfig(file string, section string, key string, def string) string
	SetConfig(file string, section string, key string, value string)
}

// Metadata answers questions about a disc image. None of these calls affect
// a running session.
type Metadata interface {
	GetTitle(filename string) string
	GetDescription(filename string) string
	GetGameID(filename string) string
	GetCountry(filename string) int
	GetCompany(filename string) string
	GetFilesize(filename string) int64
	GetPlatform(filename string) int

	// GetBanner returns the banner image as packed RGBA pixels. The result
	// is empty if there is no banner.
	GetBanner(filename string) []int32
}

// Probe reports information about the core and the machine it is running on.
type Probe interface {
	GetVersionString() string

	// SupportsNEON returns true if the hardware acceleration used by the
	// core is available.
	SupportsNEON() bool
}

// UserDirectory manages the directory the core keeps its own files in.
type UserDirectory interface {
	CreateUserFolders()
	SetUserDirectory(directory string)
	GetUserDirectory() string
}

// Extras are the remaining capabilities of the core.
type Extras interface {
	// SetFilename sets the file to be run by the next call to Run().
	SetFilename(filename string)

	SaveScreenShot()
	SetProfiling(enable bool)
	WriteProfileResults()
}

// Core is the full capability set of the native core.
type Core interface {
	Input
	Lifecycle
	Snapshots
	AlertSource
	Config
	Metadata
	Probe
	UserDirectory
	Extras
}

// Platform values returned by Metadata.GetPlatform().
const (
	PlatformGameCube = 0
	PlatformWii      = 1
	PlatformWiiWare  = 2
	PlatformUnknown  = -1
)

// PlatformName returns a name for a value returned by GetPlatform().
func PlatformName(platform int) string {
	switch platform {
	case PlatformGameCube:
		return "GameCube"
	case PlatformWii:
		return "Wii"
	case PlatformWiiWare:
		return "WiiWare"
	}
	return "unknown"
}

// Country values returned by Metadata.GetCountry().
const (
	CountryEurope = iota
	CountryJapan
	CountryUSA
	CountryAustralia
	CountryFrance
	CountryGermany
	CountryItaly
	CountryKorea
	CountryNetherlands
	CountryRussia
	CountrySpain
	CountryTaiwan
	CountryWorld
	CountryUnknown
)

var countries = [...]string{
	"Europe", "Japan", "USA", "Australia", "France", "Germany", "Italy",
	"Korea", "Netherlands", "Russia", "Spain", "Taiwan", "World", "unknown",
}

// CountryName returns a name for a value returned by GetCountry().
func CountryName(country int) string {
	if country < 0 || country >= len(countries) {
		return "unknown"
	}
	return countries[country]
}
