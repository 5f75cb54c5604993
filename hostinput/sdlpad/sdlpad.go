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

package sdlpad

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/corebridge/hostinput/gamepad"
	"github.com/jetsetilly/corebridge/logger"
	"github.com/jetsetilly/corebridge/userinput"
)

type pad struct {
	joy    *sdl.Joystick
	mapper *gamepad.Mapper
}

// Handler receives the translated joystick events. The userinput.Router
// implements this interface.
type Handler interface {
	HandleUserInput(ev userinput.Event) bool
}

// Pads is the set of connected joysticks.
type Pads struct {
	handler  Handler
	deadzone float32
	pads     map[sdl.JoystickID]pad

	// called when SDL reports that the application should quit
	quit func()
}

// Open initialises the SDL joystick subsystem and opens every joystick
// currently connected. Translated events are given to the handler from the
// goroutine calling Service().
func Open(handler Handler, deadzone float32) (*Pads, error) {
	err := sdl.Init(sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdlpad: %w", err)
	}

	p := &Pads{
		handler:  handler,
		deadzone: deadzone,
		pads:     make(map[sdl.JoystickID]pad),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.open(i)
	}

	if len(p.pads) == 0 {
		logger.Log(logger.Allow, "sdlpad", "no joysticks found")
	}
	for _, d := range p.Devices() {
		logger.Logf(logger.Allow, "sdlpad", "using %s", d)
	}

	return p, nil
}

// SetQuit sets the function to call when SDL reports a quit event.
func (p *Pads) SetQuit(quit func()) {
	p.quit = quit
}

func (p *Pads) open(index int) {
	joy := sdl.JoystickOpen(index)
	if joy == nil || !joy.Attached() {
		return
	}
	id := joy.InstanceID()
	if _, ok := p.pads[id]; ok {
		return
	}
	p.pads[id] = pad{
		joy:    joy,
		mapper: gamepad.NewMapper(joy.Name(), p.deadzone),
	}
}

func (p *Pads) deliver(events ...userinput.Event) {
	for _, ev := range events {
		p.handler.HandleUserInput(ev)
	}
}

func (p *Pads) close(id sdl.JoystickID) {
	pd, ok := p.pads[id]
	if !ok {
		return
	}
	p.deliver(pd.mapper.Release()...)
	pd.joy.Close()
	delete(p.pads, id)
	logger.Logf(logger.Allow, "sdlpad", "disconnected: %s", pd.mapper.Device())
}

// Devices returns the device strings of the connected joysticks.
func (p *Pads) Devices() []string {
	d := make([]string, 0, len(p.pads))
	for _, pd := range p.pads {
		d = append(d, pd.mapper.Device())
	}
	return d
}

// Service polls SDL for events. It must be called from the UI goroutine.
func (p *Pads) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if p.quit != nil {
				p.quit()
			}

		case *sdl.JoyDeviceAddedEvent:
			p.open(int(ev.Which))
			logger.Logf(logger.Allow, "sdlpad", "connected: %s", p.Devices())

		case *sdl.JoyDeviceRemovedEvent:
			p.close(ev.Which)

		case *sdl.JoyButtonEvent:
			if pd, ok := p.pads[ev.Which]; ok {
				p.deliver(pd.mapper.Button(int(ev.Button), ev.State == sdl.PRESSED)...)
			}

		case *sdl.JoyHatEvent:
			if pd, ok := p.pads[ev.Which]; ok {
				p.deliver(pd.mapper.Hat(ev.Value)...)
			}

		case *sdl.JoyAxisEvent:
			if pd, ok := p.pads[ev.Which]; ok {
				p.deliver(pd.mapper.Axis(int(ev.Axis), ev.Value)...)
			}
		}
	}
}

// Destroy closes all joysticks and shuts down SDL.
func (p *Pads) Destroy() {
	for id := range p.pads {
		p.close(id)
	}
	sdl.Quit()
}
