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

// Package emulator drives a chip8.Machine on top of a platform
// front-end: it loads the ROM, feeds keypad events to the machine and
// paces execution.
package emulator

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/andreas-jonsson/chippy/emulator/chip8"
	"github.com/andreas-jonsson/chippy/platform"
	"github.com/andreas-jonsson/chippy/platform/dialog"
)

var romImage = "roms/maze.ch8"

var (
	stepsPerSecond          float64 = 60
	wrapSprites, legacyJump bool
)

func init() {
	if p, ok := os.LookupEnv("CHIPPY_DEFAULT_ROM_PATH"); ok {
		romImage = p
	}
	if s, ok := os.LookupEnv("CHIPPY_DEFAULT_SPEED"); ok {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			stepsPerSecond = f
		}
	}

	flag.StringVar(&romImage, "rom", romImage, "Path to ROM image")
	flag.Float64Var(&stepsPerSecond, "speed", stepsPerSecond, "Limit execution speed in steps per second")
	flag.BoolVar(&wrapSprites, "wrap", false, "Wrap sprites at the display edges instead of clipping")
	flag.BoolVar(&legacyJump, "legacy-jump", false, "Use legacy 8-bit Bnnn jump address truncation")
}

// Start is the platform main loop. The ROM is read through the
// platform file system so headless runs can supply one in memory.
func Start(p platform.Platform) {
	fp, err := p.Open(romImage)
	if err != nil {
		log.Print(err)
		return
	}
	rom, err := io.ReadAll(fp)
	fp.Close()
	if err != nil {
		log.Print(err)
		return
	}

	m := chip8.New(chip8.Config{
		WrapSprites: wrapSprites,
		LegacyJump:  legacyJump,
	})
	if err := m.LoadProgram(rom); err != nil {
		log.Print(err)
		return
	}

	// Key events arrive on the front-end's event goroutine.
	var lock sync.Mutex
	p.SetKeyboardHandler(func(k platform.Key) {
		lock.Lock()
		m.SetKey(byte(k&^platform.KeyUpMask), k&platform.KeyUpMask == 0)
		lock.Unlock()
	})

	p.SetTitle("Chippy - " + filepath.Base(romImage))

	if stepsPerSecond <= 0 {
		stepsPerSecond = 60
	}
	limit := int64(float64(time.Second) / stepsPerSecond)
	pixels := make([]byte, chip8.DisplayWidth*chip8.DisplayHeight)

	for !dialog.ShutdownRequested() {
		t := time.Now().UnixNano()

		lock.Lock()
		if dialog.RestartRequested() {
			m.Reset()
			if err := m.LoadProgram(rom); err != nil {
				lock.Unlock()
				log.Print(err)
				return
			}
		}

		err := m.Step()
		m.Pixels(pixels)
		lock.Unlock()

		if err != nil {
			log.Print(err)
			return
		}
		p.RenderDisplay(pixels)

	wait:
		if time.Now().UnixNano()-t < limit {
			runtime.Gosched()
			goto wait
		}
	}
}
