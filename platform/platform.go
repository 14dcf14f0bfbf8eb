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

// Package platform hides the host environment (window system, terminal,
// file system, keyboard) behind a small interface. The concrete
// implementation is selected at build time: tcell by default, SDL with
// the "sdl" tag, Ebitengine with the "ebiten" tag.
package platform

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

type internalPlatform interface{}

type Config func(internalPlatform) error

type File interface {
	io.ReadWriteSeeker
	io.ReaderAt
	io.Closer
}

type FileSystem interface {
	Create(name string) (File, error)
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

type Platform interface {
	FileSystem

	// RenderDisplay presents a 64x32 one-byte-per-pixel monochrome
	// frame (0x00 off, 0xFF on).
	RenderDisplay(pixels []byte)
	SetTitle(title string)
	SetKeyboardHandler(h func(Key))
}

var Instance Platform

// Display geometry shared by every front-end.
const (
	displayWidth  = 64
	displayHeight = 32
)

// Key identifies one of the 16 keypad keys. Releases are delivered to
// the keyboard handler with KeyUpMask set.
type Key byte

const (
	KeyUpMask  Key = 0x80
	KeyInvalid Key = 0xFF
)

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// aferoFileSystem adapts an afero.Fs to the platform FileSystem
// interface. The native front-ends use the OS file system, the headless
// platform a memory-backed one.
type aferoFileSystem struct {
	fs afero.Fs
}

func (f aferoFileSystem) Open(name string) (File, error) {
	return f.fs.Open(name)
}

func (f aferoFileSystem) Create(name string) (File, error) {
	return f.fs.Create(name)
}

func (f aferoFileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return f.fs.OpenFile(name, flag, perm)
}
