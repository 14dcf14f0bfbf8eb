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

package platform

import (
	"sync"

	"github.com/spf13/afero"
)

// HeadlessPlatform is a platform without a display, backed by a
// memory file system. It is used by tests and batch runs.
type HeadlessPlatform struct {
	aferoFileSystem
	sync.Mutex

	title           string
	lastFrame       []byte
	frames          int
	keyboardHandler func(Key)
}

func NewHeadless() *HeadlessPlatform {
	return &HeadlessPlatform{
		aferoFileSystem: aferoFileSystem{afero.NewMemMapFs()},
		lastFrame:       make([]byte, displayWidth*displayHeight),
	}
}

func (p *HeadlessPlatform) RenderDisplay(pixels []byte) {
	p.Lock()
	copy(p.lastFrame, pixels)
	p.frames++
	p.Unlock()
}

func (p *HeadlessPlatform) SetTitle(title string) {
	p.Lock()
	p.title = title
	p.Unlock()
}

func (p *HeadlessPlatform) SetKeyboardHandler(h func(Key)) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}

// InjectKey feeds a key event as if it came from a real front-end.
func (p *HeadlessPlatform) InjectKey(k Key) {
	p.Lock()
	h := p.keyboardHandler
	p.Unlock()
	if h != nil {
		h(k)
	}
}

func (p *HeadlessPlatform) Title() string {
	p.Lock()
	defer p.Unlock()
	return p.title
}

func (p *HeadlessPlatform) Frames() int {
	p.Lock()
	defer p.Unlock()
	return p.frames
}

// Frame returns a copy of the most recently rendered display buffer.
func (p *HeadlessPlatform) Frame() []byte {
	p.Lock()
	defer p.Unlock()
	frame := make([]byte, len(p.lastFrame))
	copy(frame, p.lastFrame)
	return frame
}

// WriteFile stores a ROM image in the platform file system.
func (p *HeadlessPlatform) WriteFile(name string, data []byte) error {
	return afero.WriteFile(p.fs, name, data, 0644)
}
