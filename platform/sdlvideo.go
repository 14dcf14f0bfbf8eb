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
	"log"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	colorOn  = [3]byte{0x5E, 0x48, 0xE8}
	colorOff = [3]byte{0x48, 0xB2, 0xE8}
)

func (p *sdlPlatform) initializeVideo() error {
	var err error
	sdl.Do(func() {
		if err = sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
			return
		}

		sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
		sdl.SetHint(sdl.HINT_WINDOWS_NO_CLOSE_ON_ALT_F4, "1")
		if p.window, p.renderer, err = sdl.CreateWindowAndRenderer(p.windowSizeX, p.windowSizeY, p.sdlWindowFlags); err != nil {
			return
		}
		p.window.SetTitle("Chippy")
		if p.texture, err = p.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, displayWidth, displayHeight); err != nil {
			return
		}
		err = p.renderer.SetLogicalSize(displayWidth, displayHeight)
	})
	if err != nil {
		return err
	}

	registerCleanup(p, shutdownVideo)
	return nil
}

func shutdownVideo(p *sdlPlatform) {
	sdl.Do(func() {
		p.texture.Destroy()
		p.renderer.Destroy()
		p.window.Destroy()
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
	})
}

func (p *sdlPlatform) RenderDisplay(pixels []byte) {
	if len(pixels) != displayWidth*displayHeight {
		log.Panic("invalid display buffer size")
	}

	for i, px := range pixels {
		c := &colorOff
		if px != 0 {
			c = &colorOn
		}
		copy(p.backBuffer[i*4:], c[:])
		p.backBuffer[i*4+3] = 0xFF
	}

	sdl.Do(func() {
		p.renderer.Clear()
		p.texture.Update(nil, p.backBuffer[:], displayWidth*4)
		p.renderer.Copy(p.texture, nil, nil)
		p.renderer.Present()
	})
}

func (p *sdlPlatform) SetTitle(title string) {
	sdl.Do(func() {
		p.window.SetTitle(title)
	})
}
