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
	"log"
	"sync"

	"github.com/gdamore/tcell"
	"github.com/spf13/afero"
)

type tcellPlatform struct {
	aferoFileSystem
	sync.Mutex

	buffer bytes.Buffer
	screen tcell.Screen

	keyboardHandler func(Key)
}

var tcellPlatformInstance tcellPlatform

func Start(mainLoop func(Platform), configs ...Config) {
	p := &tcellPlatformInstance
	p.aferoFileSystem = aferoFileSystem{afero.NewOsFs()}

	for _, cfg := range configs {
		if err := cfg(p); err != nil {
			log.Fatal(err)
		}
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	var err error
	if p.screen, err = tcell.NewScreen(); err != nil {
		log.Fatal(err)
	}

	Instance = p
	s := p.screen

	if err = s.Init(); err != nil {
		log.Fatal(err)
	}
	defer s.Fini()

	s.HideCursor()
	s.DisableMouse()
	s.Clear()

	p.initializeTcellEvents()
	mainLoop(Instance)
}

func (p *tcellPlatform) RenderDisplay(pixels []byte) {
	p.Lock()
	p.buffer.Reset()
	p.buffer.Write(pixels)
	p.Unlock()
	p.screen.PostEvent(tcell.NewEventInterrupt(&p.buffer))
}

func (p *tcellPlatform) SetTitle(title string) {
}

func (p *tcellPlatform) SetKeyboardHandler(h func(Key)) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}
