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

// Package chip8 implements the CHIP-8 virtual machine: 4KiB of memory,
// 16 general registers, a 16-deep call stack, two 8-bit timers and a
// 64x32 monochrome framebuffer. The machine is stepped one
// fetch-decode-execute cycle at a time and is agnostic to wall-clock
// time; the host owns the pacing, the key state and the presentation
// of the framebuffer.
package chip8

import (
	"errors"
	"math/rand"
	"time"
)

const (
	MemorySize    = 4096
	NumRegisters  = 16
	StackDepth    = 16
	DisplayWidth  = 64
	DisplayHeight = 32

	FontAddress    = 0x50
	ProgramAddress = 0x200
)

var (
	ErrProgramTooLarge   = errors.New("program does not fit in memory")
	ErrStackOverflow     = errors.New("call stack overflow")
	ErrStackUnderflow    = errors.New("return with empty call stack")
	ErrAddressOutOfRange = errors.New("memory address out of range")
)

// Config selects between behaviors the reference machine left ambiguous.
// The zero value is the recommended configuration.
type Config struct {
	// WrapSprites makes sprite pixels that fall off the right or bottom
	// edge reappear on the opposite side. When false such pixels are
	// clipped. Only the sprite origin wraps in either mode.
	WrapSprites bool

	// LegacyJump reproduces the reference behavior of Bnnn where V0 is
	// added to the low byte of the target with 8-bit truncation. When
	// false the jump target is NNN+V0 in full 12-bit arithmetic.
	LegacyJump bool

	// Rand is the byte source for the Cxkk instruction. A time-seeded
	// source is used when nil.
	Rand *rand.Rand
}

// Machine holds the complete state of one CHIP-8 system. It is not safe
// for concurrent use; Step, SetKey and the display accessors must be
// serialized by the caller.
type Machine struct {
	cfg Config
	rng *rand.Rand

	mem   [MemorySize]byte
	v     [NumRegisters]byte
	index uint16
	pc    uint16

	stack [StackDepth]uint16
	sp    byte

	delayTimer byte
	soundTimer byte

	display [DisplayWidth * DisplayHeight]byte
	keypad  [16]bool
}

// New creates a machine with the font glyphs loaded and the program
// counter at ProgramAddress.
func New(cfg Config) *Machine {
	m := &Machine{cfg: cfg, rng: cfg.Rand}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.Reset()
	return m
}

// Reset returns the machine to its power-on state. Memory, registers,
// stack, timers, keypad and display are cleared and the fontset is
// rewritten to the reserved low-memory region.
func (m *Machine) Reset() {
	m.mem = [MemorySize]byte{}
	m.v = [NumRegisters]byte{}
	m.stack = [StackDepth]uint16{}
	m.display = [DisplayWidth * DisplayHeight]byte{}
	m.keypad = [16]bool{}
	m.index = 0
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.pc = ProgramAddress
	copy(m.mem[FontAddress:], fontset[:])
}

// LoadProgram copies rom into memory at the default program address.
func (m *Machine) LoadProgram(rom []byte) error {
	return m.LoadProgramAt(rom, ProgramAddress)
}

// LoadProgramAt copies rom into memory starting at addr. The load is
// aborted, leaving memory untouched, if the program does not fit.
func (m *Machine) LoadProgramAt(rom []byte, addr uint16) error {
	if int(addr) >= MemorySize || len(rom) > MemorySize-int(addr) {
		return ErrProgramTooLarge
	}
	copy(m.mem[addr:], rom)
	return nil
}

// Step runs one fetch-decode-execute cycle and decrements both timers.
// The program counter is advanced past the fetched word before the
// instruction executes so jumps, calls and skips can overwrite it.
// A returned error reports a machine fault (stack or address violation);
// the machine state remains valid and the host decides whether to halt,
// reset or continue.
func (m *Machine) Step() error {
	if int(m.pc)+1 >= MemorySize {
		return ErrAddressOutOfRange
	}
	word := uint16(m.mem[m.pc])<<8 | uint16(m.mem[m.pc+1])
	m.pc += 2

	err := m.execute(Decode(word))

	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
	return err
}

// SetKey records the pressed state of keypad key k (0x0-0xF). Out of
// range keys are ignored. The core never mutates key state itself.
func (m *Machine) SetKey(k byte, pressed bool) {
	if k < 16 {
		m.keypad[k] = pressed
	}
}

// Pixels copies the display into dst, one byte per pixel in row-major
// order, 0x00 for off and 0xFF for on. It returns the number of bytes
// copied.
func (m *Machine) Pixels(dst []byte) int {
	return copy(dst, m.display[:])
}

// Pixel reports whether the pixel at (x, y) is lit.
func (m *Machine) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return m.display[y*DisplayWidth+x] != 0
}

func (m *Machine) PC() uint16 {
	return m.pc
}

func (m *Machine) Index() uint16 {
	return m.index
}

func (m *Machine) Register(i int) byte {
	return m.v[i&0xF]
}

func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// SoundActive reports whether the host should sound a tone.
func (m *Machine) SoundActive() bool {
	return m.soundTimer > 0
}
