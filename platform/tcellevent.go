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

//go:build !sdl && !ebiten

package platform

import (
	"bytes"
	"time"

	"github.com/andreas-jonsson/chippy/platform/dialog"
	"github.com/gdamore/tcell"
)

var (
	pixelOn  = tcell.NewRGBColor(0x5E, 0x48, 0xE8)
	pixelOff = tcell.NewRGBColor(0x48, 0xB2, 0xE8)
)

// Terminals report no key releases, so every key press is followed by a
// synthetic release a short while later. Long enough for a game polling
// key levels once per frame to observe the press.
const syntheticKeyHold = 85 * time.Millisecond

func (p *tcellPlatform) initializeTcellEvents() {
	go func() {
		s := p.screen
		for {
			switch ev := s.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape {
					dialog.Quit()
					return
				}
				p.pushKeyEvent(ev)
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventInterrupt:
				if data, ok := ev.Data().(*bytes.Buffer); ok {
					p.renderBuffer(data)
				}
			}
		}
	}()
}

// renderBuffer draws two display rows per terminal cell using the
// upper-half-block rune, foreground for the upper pixel and background
// for the lower one.
func (p *tcellPlatform) renderBuffer(data *bytes.Buffer) {
	p.Lock()
	defer p.Unlock()

	pixels := data.Bytes()
	if len(pixels) < displayWidth*displayHeight {
		return
	}

	s := p.screen
	for y := 0; y < displayHeight; y += 2 {
		for x := 0; x < displayWidth; x++ {
			upper, lower := pixelOff, pixelOff
			if pixels[y*displayWidth+x] != 0 {
				upper = pixelOn
			}
			if pixels[(y+1)*displayWidth+x] != 0 {
				lower = pixelOn
			}
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			s.SetCell(x, y/2, style, '▀')
		}
	}
	s.Show()
}

func (p *tcellPlatform) pushKeyEvent(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	key := runeToKey(ev.Rune())
	if key == KeyInvalid {
		return
	}

	p.Lock()
	defer p.Unlock()

	if p.keyboardHandler == nil {
		return
	}
	p.keyboardHandler(key)

	go func() {
		time.Sleep(syntheticKeyHold)
		p.Lock()
		defer p.Unlock()
		p.keyboardHandler(key | KeyUpMask)
	}()
}

// The recommended mapping: the left 4x4 block of the keyboard covers
// the 4x4 keypad.
//
//	Keypad       Keyboard
//	+-+-+-+-+    +-+-+-+-+
//	|1|2|3|C|    |1|2|3|4|
//	+-+-+-+-+    +-+-+-+-+
//	|4|5|6|D|    |Q|W|E|R|
//	+-+-+-+-+ => +-+-+-+-+
//	|7|8|9|E|    |A|S|D|F|
//	+-+-+-+-+    +-+-+-+-+
//	|A|0|B|F|    |Z|X|C|V|
//	+-+-+-+-+    +-+-+-+-+
func runeToKey(r rune) Key {
	switch r {
	case '1':
		return Key1
	case '2':
		return Key2
	case '3':
		return Key3
	case '4':
		return KeyC
	case 'q', 'Q':
		return Key4
	case 'w', 'W':
		return Key5
	case 'e', 'E':
		return Key6
	case 'r', 'R':
		return KeyD
	case 'a', 'A':
		return Key7
	case 's', 'S':
		return Key8
	case 'd', 'D':
		return Key9
	case 'f', 'F':
		return KeyE
	case 'z', 'Z':
		return KeyA
	case 'x', 'X':
		return Key0
	case 'c', 'C':
		return KeyB
	case 'v', 'V':
		return KeyF
	default:
		return KeyInvalid
	}
}
