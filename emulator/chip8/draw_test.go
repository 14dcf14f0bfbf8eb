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

package chip8

import (
	"errors"
	"testing"
)

func TestDrawGlyph(t *testing.T) {
	m := newTestMachine(Config{})
	loadWords(t, m,
		0x6A02, // VA := 2
		0xFA29, // index := glyph for digit VA
		0xD0A5, // draw 5 rows at (V0, VA) = (0, 2)
	)

	step(t, m, 3)
	if m.v[0xF] != 0 {
		t.Fatal("collision flag set on an empty display")
	}

	for row := 0; row < GlyphHeight; row++ {
		pattern := fontset[2*GlyphHeight+row]
		for col := 0; col < 8; col++ {
			want := pattern&(0x80>>col) != 0
			if got := m.Pixel(col, 2+row); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", col, 2+row, got, want)
			}
		}
	}
}

func TestDrawXORAndCollision(t *testing.T) {
	m := newTestMachine(Config{})
	m.v[6] = 0xA
	m.execute(Decode(0xF629)) // point index at a glyph
	m.v[0], m.v[1] = 8, 4

	if err := m.execute(Decode(0xD015)); err != nil {
		t.Fatal(err)
	}
	if m.v[0xF] != 0 {
		t.Fatal("first draw reported a collision")
	}

	// Drawing the same sprite again toggles every pixel back off.
	if err := m.execute(Decode(0xD015)); err != nil {
		t.Fatal(err)
	}
	if m.v[0xF] != 1 {
		t.Fatal("second draw must report a collision")
	}

	var pixels [DisplayWidth * DisplayHeight]byte
	m.Pixels(pixels[:])
	for i, p := range pixels {
		if p != 0 {
			t.Fatalf("pixel %d still lit after XOR erase", i)
		}
	}
}

func TestClearScreen(t *testing.T) {
	m := newTestMachine(Config{})
	m.v[6] = 0
	m.execute(Decode(0xF629))
	m.execute(Decode(0xD005))

	m.execute(Decode(0x00E0))

	var pixels [DisplayWidth * DisplayHeight]byte
	m.Pixels(pixels[:])
	for i, p := range pixels {
		if p != 0 {
			t.Fatalf("pixel %d lit after clear", i)
		}
	}
}

func TestDrawClipsAtEdges(t *testing.T) {
	m := newTestMachine(Config{})
	m.mem[0x300] = 0xFF
	m.mem[0x301] = 0xFF
	m.index = 0x300
	m.v[0], m.v[1] = 60, 31

	if err := m.execute(Decode(0xD012)); err != nil {
		t.Fatal(err)
	}

	for x := 60; x < 64; x++ {
		if !m.Pixel(x, 31) {
			t.Fatalf("pixel (%d,31) should be lit", x)
		}
	}
	// Nothing wrapped to the opposite edges.
	for x := 0; x < 4; x++ {
		if m.Pixel(x, 31) || m.Pixel(x, 0) {
			t.Fatalf("clipped sprite leaked to (%d,*)", x)
		}
	}
}

func TestDrawWrapsWhenConfigured(t *testing.T) {
	m := newTestMachine(Config{WrapSprites: true})
	m.mem[0x300] = 0xFF
	m.mem[0x301] = 0xFF
	m.index = 0x300
	m.v[0], m.v[1] = 60, 31

	if err := m.execute(Decode(0xD012)); err != nil {
		t.Fatal(err)
	}

	for _, y := range []int{31, 0} {
		for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
			if !m.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) should be lit in wrap mode", x, y)
			}
		}
	}
}

func TestDrawOriginWraps(t *testing.T) {
	m := newTestMachine(Config{})
	m.mem[0x300] = 0x80
	m.index = 0x300
	m.v[0], m.v[1] = 64, 32 // wraps to (0, 0) in either mode

	if err := m.execute(Decode(0xD011)); err != nil {
		t.Fatal(err)
	}
	if !m.Pixel(0, 0) {
		t.Fatal("sprite origin did not wrap")
	}
}

func TestDrawAddressBounds(t *testing.T) {
	m := newTestMachine(Config{})
	m.index = MemorySize - 2
	if err := m.execute(Decode(0xD015)); !errors.Is(err, ErrAddressOutOfRange) {
		t.Fatalf("got %v, want ErrAddressOutOfRange", err)
	}
}

func TestWaitKey(t *testing.T) {
	m := newTestMachine(Config{})
	loadWords(t, m, 0xF50A)

	for i := 0; i < 10; i++ {
		step(t, m, 1)
		if m.PC() != ProgramAddress {
			t.Fatalf("PC moved to 0x%X with no key pressed", m.PC())
		}
	}

	m.SetKey(0x7, true)
	m.SetKey(0x3, true)
	step(t, m, 1)

	if m.PC() != ProgramAddress+2 {
		t.Fatalf("PC = 0x%X after key press", m.PC())
	}
	if m.v[5] != 0x3 {
		t.Fatalf("V5 = 0x%X, want the lowest-numbered pressed key", m.v[5])
	}
}
