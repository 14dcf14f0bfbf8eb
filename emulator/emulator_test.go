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

package emulator

import (
	"testing"
	"time"

	"github.com/andreas-jonsson/chippy/platform"
	"github.com/andreas-jonsson/chippy/platform/dialog"
)

// The ROM waits for a key, draws the glyph for that key in the top
// left corner and spins.
var waitKeyROM = []byte{
	0xF3, 0x0A, // V3 = wait for key
	0x60, 0x00, // V0 = 0
	0xF3, 0x29, // I = glyph address for V3
	0xD0, 0x05, // draw at (V0, V0)
	0x12, 0x08, // spin
}

func TestStartHeadless(t *testing.T) {
	p := platform.NewHeadless()
	if err := p.WriteFile("test.ch8", waitKeyROM); err != nil {
		t.Fatal(err)
	}

	romImage = "test.ch8"
	stepsPerSecond = 10000

	done := make(chan struct{})
	go func() {
		Start(p)
		close(done)
	}()

	waitFor(t, "first frame", func() bool { return p.Frames() > 0 })

	if title := p.Title(); title != "Chippy - test.ch8" {
		t.Errorf("unexpected title: %q", title)
	}

	// Nothing is drawn while the machine waits for input.
	for _, px := range p.Frame() {
		if px != 0 {
			t.Fatal("display not blank before key press")
		}
	}

	p.InjectKey(platform.Key7)
	waitFor(t, "glyph", func() bool { return p.Frame()[0] != 0 })
	p.InjectKey(platform.Key7 | platform.KeyUpMask)

	// Top row of the glyph for 7 is 0xF0.
	frame := p.Frame()
	for x := 0; x < 8; x++ {
		lit := frame[x] != 0
		if want := x < 4; lit != want {
			t.Errorf("pixel (%d,0) = %v, want %v", x, lit, want)
		}
	}

	dialog.Quit()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("emulator loop did not shut down")
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", what)
}
