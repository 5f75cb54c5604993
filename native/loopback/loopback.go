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
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash"
	"golang.org/x/sys/cpu"

	"github.com/jetsetilly/corebridge/controls"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/native"
	"github.com/jetsetilly/corebridge/version"
)

// CallKind distinguishes the two types of input call.
type CallKind int

// List of input call kinds.
const (
	CallButton CallKind = iota
	CallAxis
)

func (k CallKind) String() string {
	switch k {
	case CallButton:
		return "button"
	case CallAxis:
		return "axis"
	}
	return ""
}

// Call is a record of a single input call made to the Core.
type Call struct {
	Kind   CallKind
	Device string
	ID     int

	// the action for a button call or the value for an axis call
	Value float32

	Handled bool
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s %d %v", c.Device, c.Kind, c.ID, c.Value)
}

type configKey struct {
	file    string
	section string
	key     string
}

type snapshot struct {
	data   []byte
	digest uint64
}

// Core implements the native.Core interface.
type Core struct {
	crit sync.Mutex

	sink   native.AlertSink
	policy MissingSlotPolicy

	filename string
	surface  native.Surface
	running  bool
	paused   bool

	// the controls currently pressed. the contents of a snapshot
	pressed map[int]bool

	calls     []Call
	snapshots map[int]snapshot
	config    map[configKey]string

	userDir     string
	profiling   bool
	profile     map[int]int
	screenshots int
}

// NewCore is the preferred method of initialisation for the Core type.
func NewCore(policy MissingSlotPolicy) *Core {
	return &Core{
		policy:    policy,
		pressed:   make(map[int]bool),
		snapshots: make(map[int]snapshot),
		config:    make(map[configKey]string),
		profile:   make(map[int]int),
	}
}

// SetMissingSlotPolicy changes the missing slot policy.
func (c *Core) SetMissingSlotPolicy(policy MissingSlotPolicy) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.policy = policy
}

// SetAlertSink implements the native.AlertSource interface.
func (c *Core) SetAlertSink(sink native.AlertSink) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.sink = sink
}

// raise an alert through the sink. must not be called with the critical
// section held.
func (c *Core) raise(message string) {
	c.crit.Lock()
	sink := c.sink
	c.crit.Unlock()

	if sink == nil {
		logger.Logf(logger.Allow, "loopback", "no alert sink: %s", message)
		return
	}
	sink.RaiseAlert(message)
}

// GamePadEvent implements the native.Input interface.
func (c *Core) GamePadEvent(device string, button int, action int) bool {
	c.crit.Lock()
	defer c.crit.Unlock()

	handled := controls.ControlID(button).Valid()
	c.calls = append(c.calls, Call{
		Kind:    CallButton,
		Device:  device,
		ID:      button,
		Value:   float32(action),
		Handled: handled,
	})

	if handled {
		if controls.ButtonState(action) == controls.Pressed {
			c.pressed[button] = true
		} else {
			delete(c.pressed, button)
		}
	}

	if c.profiling {
		c.profile[button]++
	}

	return handled
}

// GamePadMoveEvent implements the native.Input interface.
func (c *Core) GamePadMoveEvent(device string, axis int, value float32) {
	c.crit.Lock()
	defer c.crit.Unlock()

	c.calls = append(c.calls, Call{
		Kind:    CallAxis,
		Device:  device,
		ID:      axis,
		Value:   value,
		Handled: true,
	})

	if c.profiling {
		c.profile[axis]++
	}
}

// Calls returns a copy of every input call made to the core.
func (c *Core) Calls() []Call {
	c.crit.Lock()
	defer c.crit.Unlock()
	return slices.Clone(c.calls)
}

// ClearCalls forgets all recorded input calls.
func (c *Core) ClearCalls() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.calls = c.calls[:0]
}

// Pressed returns the list of pressed controls in ascending order.
func (c *Core) Pressed() []int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return pressedList(c.pressed)
}

func pressedList(pressed map[int]bool) []int {
	l := make([]int, 0, len(pressed))
	for id := range pressed {
		l = append(l, id)
	}
	slices.Sort(l)
	return l
}

// Run implements the native.Lifecycle interface.
func (c *Core) Run(surface native.Surface) {
	c.crit.Lock()
	filename := c.filename
	c.crit.Unlock()

	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			c.raise(fmt.Sprintf("could not open %s", filepath.Base(filename)))
		}
	}

	c.crit.Lock()
	defer c.crit.Unlock()
	c.surface = surface
	c.running = true
	c.paused = false
	clear(c.pressed)
	logger.Logf(logger.Allow, "loopback", "running %s", filename)
}

// PauseEmulation implements the native.Lifecycle interface.
func (c *Core) PauseEmulation() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.paused = true
}

// UnPauseEmulation implements the native.Lifecycle interface.
func (c *Core) UnPauseEmulation() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.paused = false
}

// StopEmulation implements the native.Lifecycle interface.
func (c *Core) StopEmulation() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.surface = nil
	c.running = false
	c.paused = false
	logger.Log(logger.Allow, "loopback", "stopped")
}

// Running returns whether the core is running and whether it is paused.
func (c *Core) Running() (running bool, paused bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.running, c.paused
}

// Surface returns the surface given to Run(). The result is nil if the core
// is not running.
func (c *Core) Surface() native.Surface {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.surface
}

// the snapshot blob is the image name followed by the pressed controls
func encodeSnapshot(filename string, pressed []int) []byte {
	s := strings.Builder{}
	s.WriteString(filepath.Base(filename))
	for _, id := range pressed {
		fmt.Fprintf(&s, "\n%d", id)
	}
	return []byte(s.String())
}

func decodeSnapshot(data []byte) map[int]bool {
	pressed := make(map[int]bool)
	lines := strings.Split(string(data), "\n")
	for _, l := range lines[1:] {
		var id int
		if _, err := fmt.Sscanf(l, "%d", &id); err == nil {
			pressed[id] = true
		}
	}
	return pressed
}

// SaveState implements the native.Snapshots interface. An existing snapshot
// in the slot is replaced.
func (c *Core) SaveState(slot int) {
	c.crit.Lock()
	defer c.crit.Unlock()

	data := encodeSnapshot(c.filename, pressedList(c.pressed))
	snp := snapshot{
		data:   data,
		digest: xxhash.Sum64(data),
	}
	c.snapshots[slot] = snp
	logger.Logf(logger.Allow, "loopback", "saved slot %d (%016x)", slot, snp.digest)
}

// LoadState implements the native.Snapshots interface.
func (c *Core) LoadState(slot int) {
	c.crit.Lock()
	snp, ok := c.snapshots[slot]
	policy := c.policy
	if ok {
		c.pressed = decodeSnapshot(snp.data)
		logger.Logf(logger.Allow, "loopback", "loaded slot %d (%016x)", slot, snp.digest)
	}
	c.crit.Unlock()

	if !ok {
		switch policy {
		case AlertOnMissing:
			c.raise(fmt.Sprintf("savestate slot %d is empty", slot))
		case IgnoreMissing:
			logger.Logf(logger.Allow, "loopback", "ignoring load of empty slot %d", slot)
		}
	}
}

// Digest returns the digest of the snapshot in the slot.
func (c *Core) Digest(slot int) (uint64, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	snp, ok := c.snapshots[slot]
	return snp.digest, ok
}

// GetConfig implements the native.Config interface.
func (c *Core) GetConfig(file string, section string, key string, def string) string {
	c.crit.Lock()
	defer c.crit.Unlock()
	if v, ok := c.config[configKey{file: file, section: section, key: key}]; ok {
		return v
	}
	return def
}

// SetConfig implements the native.Config interface.
func (c *Core) SetConfig(file string, section string, key string, value string) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.config[configKey{file: file, section: section, key: key}] = value
}

// GetVersionString implements the native.Probe interface.
func (c *Core) GetVersionString() string {
	return fmt.Sprintf("%s (loopback)", version.String())
}

// SupportsNEON implements the native.Probe interface.
func (c *Core) SupportsNEON() bool {
	return cpu.ARM64.HasASIMD || cpu.ARM.HasNEON
}

// SetFilename implements the native.Extras interface.
func (c *Core) SetFilename(filename string) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.filename = filename
}

// SaveScreenShot implements the native.Extras interface. There is no
// framebuffer so the screenshot is only counted.
func (c *Core) SaveScreenShot() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.running {
		return
	}
	c.screenshots++
	logger.Logf(logger.Allow, "loopback", "screenshot %d", c.screenshots)
}

// Screenshots returns the number of screenshots taken.
func (c *Core) Screenshots() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.screenshots
}

// SetProfiling implements the native.Extras interface. Enabling profiling
// resets the profile.
func (c *Core) SetProfiling(enable bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if enable && !c.profiling {
		clear(c.profile)
	}
	c.profiling = enable
}

// WriteProfileResults implements the native.Extras interface. The profile is
// a count of input calls per identifier. It is written to the Logs folder of
// the user directory if one has been set and to the log otherwise.
func (c *Core) WriteProfileResults() {
	c.crit.Lock()
	defer c.crit.Unlock()

	ids := make([]int, 0, len(c.profile))
	for id := range c.profile {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	s := strings.Builder{}
	for _, id := range ids {
		fmt.Fprintf(&s, "%s: %d\n", controls.ControlID(id), c.profile[id])
	}

	if c.userDir == "" {
		logger.Logf(logger.Allow, "loopback", "profile: %d identifiers", len(ids))
		return
	}

	fn := filepath.Join(c.userDir, "Logs", "profiler.txt")
	if err := os.WriteFile(fn, []byte(s.String()), 0o644); err != nil {
		logger.Logf(logger.Allow, "loopback", "profile: %v", err)
	}
}
