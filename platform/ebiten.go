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

//go:build ebiten && !sdl

package platform

import (
	"errors"
	"log"
	"sync"

	"github.com/andreas-jonsson/chippy/platform/dialog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
)

type ebitenPlatform struct {
	aferoFileSystem
	sync.Mutex

	frame      [displayWidth * displayHeight * 4]byte
	frameImage *ebiten.Image

	keyStates       [16]bool
	keyboardHandler func(Key)
}

var ebitenPlatformInstance ebitenPlatform

var errShutdown = errors.New("shutdown requested")

func Start(mainLoop func(Platform), configs ...Config) {
	p := &ebitenPlatformInstance
	p.aferoFileSystem = aferoFileSystem{afero.NewOsFs()}
	p.frameImage = ebiten.NewImage(displayWidth, displayHeight)

	for _, cfg := range configs {
		if err := cfg(p); err != nil {
			log.Fatal(err)
		}
	}

	Instance = p

	ebiten.SetWindowTitle("Chippy")
	ebiten.SetWindowSize(displayWidth*10, displayHeight*10)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go mainLoop(p)

	if err := ebiten.RunGame(p); err != nil && err != errShutdown {
		log.Fatal(err)
	}
}

func (p *ebitenPlatform) RenderDisplay(pixels []byte) {
	if len(pixels) != displayWidth*displayHeight {
		log.Panic("invalid display buffer size")
	}

	p.Lock()
	for i, px := range pixels {
		c := &ebitenColorOff
		if px != 0 {
			c = &ebitenColorOn
		}
		copy(p.frame[i*4:], c[:])
		p.frame[i*4+3] = 0xFF
	}
	p.Unlock()
}

func (p *ebitenPlatform) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (p *ebitenPlatform) SetKeyboardHandler(h func(Key)) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}

// Update polls the key levels once per tick and reports edges to the
// keyboard handler, releases with KeyUpMask set.
func (p *ebitenPlatform) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		dialog.Quit()
	}
	if dialog.ShutdownRequested() {
		return errShutdown
	}

	p.Lock()
	defer p.Unlock()

	for key, ek := range ebitenKeypad {
		pressed := ebiten.IsKeyPressed(ek)
		if pressed == p.keyStates[key] {
			continue
		}
		p.keyStates[key] = pressed
		if p.keyboardHandler != nil {
			k := Key(key)
			if !pressed {
				k |= KeyUpMask
			}
			p.keyboardHandler(k)
		}
	}
	return nil
}

func (p *ebitenPlatform) Draw(screen *ebiten.Image) {
	p.Lock()
	p.frameImage.WritePixels(p.frame[:])
	p.Unlock()
	screen.DrawImage(p.frameImage, nil)
}

func (p *ebitenPlatform) Layout(outsideWidth, outsideHeight int) (int, int) {
	return displayWidth, displayHeight
}

var (
	ebitenColorOn  = [3]byte{0x5E, 0x48, 0xE8}
	ebitenColorOff = [3]byte{0x48, 0xB2, 0xE8}
)

// Indexed by keypad key, the recommended 1234/QWER/ASDF/ZXCV mapping.
var ebitenKeypad = [16]ebiten.Key{
	Key0: ebiten.KeyX,
	Key1: ebiten.Key1,
	Key2: ebiten.Key2,
	Key3: ebiten.Key3,
	Key4: ebiten.KeyQ,
	Key5: ebiten.KeyW,
	Key6: ebiten.KeyE,
	Key7: ebiten.KeyA,
	Key8: ebiten.KeyS,
	Key9: ebiten.KeyD,
	KeyA: ebiten.KeyZ,
	KeyB: ebiten.KeyC,
	KeyC: ebiten.Key4,
	KeyD: ebiten.KeyR,
	KeyE: ebiten.KeyF,
	KeyF: ebiten.KeyV,
}
