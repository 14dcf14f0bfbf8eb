/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

//go:build sdl

package platform

import (
	"time"

	"github.com/andreas-jonsson/chippy/platform/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

func (p *sdlPlatform) initializeSDLEvents() error {
	var err error
	sdl.Do(func() {
		err = sdl.InitSubSystem(sdl.INIT_EVENTS)
	})
	if err != nil {
		return err
	}

	p.quitChan = make(chan struct{})
	registerCleanup(p, shutdownSDLEvents)

	go func() {
		ticker := time.NewTicker(time.Second / 30)
		defer ticker.Stop()

		for {
			select {
			case <-p.quitChan:
				close(p.quitChan)
				return
			case <-ticker.C:
				sdl.Do(func() {
					for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
						switch ev := event.(type) {
						case *sdl.QuitEvent:
							dialog.Quit()
						case *sdl.KeyboardEvent:
							p.sdlProcessKey(ev)
						}
					}
				})
			}
		}
	}()
	return nil
}

func shutdownSDLEvents(p *sdlPlatform) {
	p.quitChan <- struct{}{}
	<-p.quitChan
	sdl.Do(func() {
		sdl.QuitSubSystem(sdl.INIT_EVENTS)
	})
}

func (p *sdlPlatform) sdlProcessKey(ev *sdl.KeyboardEvent) {
	keyUp := ev.Type == sdl.KEYUP
	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		if keyUp {
			dialog.Quit()
		}
	case sdl.SCANCODE_F11:
		if keyUp {
			if (p.window.GetFlags() & sdl.WINDOW_FULLSCREEN) != 0 {
				p.window.SetFullscreen(0)
			} else {
				p.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
			}
		}
	default:
		if key := sdlScanToKey(ev.Keysym.Scancode); key != KeyInvalid && p.keyboardHandler != nil {
			if keyUp {
				key |= KeyUpMask
			}
			p.keyboardHandler(key)
		}
	}
}

func (p *sdlPlatform) SetKeyboardHandler(h func(Key)) {
	sdl.Do(func() {
		p.keyboardHandler = h
	})
}

// The recommended mapping: 1234/QWER/ASDF/ZXCV cover the 4x4 keypad
// as 123C/456D/789E/A0BF.
func sdlScanToKey(scan sdl.Scancode) Key {
	switch scan {
	case sdl.SCANCODE_1:
		return Key1
	case sdl.SCANCODE_2:
		return Key2
	case sdl.SCANCODE_3:
		return Key3
	case sdl.SCANCODE_4:
		return KeyC
	case sdl.SCANCODE_Q:
		return Key4
	case sdl.SCANCODE_W:
		return Key5
	case sdl.SCANCODE_E:
		return Key6
	case sdl.SCANCODE_R:
		return KeyD
	case sdl.SCANCODE_A:
		return Key7
	case sdl.SCANCODE_S:
		return Key8
	case sdl.SCANCODE_D:
		return Key9
	case sdl.SCANCODE_F:
		return KeyE
	case sdl.SCANCODE_Z:
		return KeyA
	case sdl.SCANCODE_X:
		return Key0
	case sdl.SCANCODE_C:
		return KeyB
	case sdl.SCANCODE_V:
		return KeyF
	default:
		return KeyInvalid
	}
}
