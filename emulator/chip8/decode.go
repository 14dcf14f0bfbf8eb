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

// Op identifies one of the machine's 35 operations.
type Op byte

const (
	OpNone Op = iota // unrecognized pattern, executes as a no-op
	OpClear
	OpReturn
	OpJump
	OpCall
	OpSkipEqImm
	OpSkipNeImm
	OpSkipEqReg
	OpLoadImm
	OpAddImm
	OpMove
	OpOr
	OpAnd
	OpXor
	OpAdd
	OpSub
	OpShiftRight
	OpSubReverse
	OpShiftLeft
	OpSkipNeReg
	OpLoadIndex
	OpJumpOffset
	OpRandom
	OpDraw
	OpSkipKey
	OpSkipNoKey
	OpReadDelay
	OpWaitKey
	OpSetDelay
	OpSetSound
	OpAddIndex
	OpGlyph
	OpStoreBCD
	OpStoreRegs
	OpLoadRegs
)

// Instruction is a decoded opcode word. X and Y are register indices,
// N is the low nibble, KK the low byte and NNN the low 12 bits. Only the
// fields the operation consumes are meaningful.
type Instruction struct {
	Op   Op
	X, Y byte
	N    byte
	KK   byte
	NNN  uint16
}

// Decode classifies a 16-bit opcode word by its high nibble (and, for the
// 0x0, 0x8, 0xE and 0xF families, a secondary nibble or byte) and extracts
// the operand fields. Unrecognized patterns decode to OpNone.
func Decode(word uint16) Instruction {
	in := Instruction{
		X:   byte(word >> 8 & 0xF),
		Y:   byte(word >> 4 & 0xF),
		N:   byte(word & 0xF),
		KK:  byte(word),
		NNN: word & 0xFFF,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			in.Op = OpClear
		case 0x00EE:
			in.Op = OpReturn
		}
	case 0x1:
		in.Op = OpJump
	case 0x2:
		in.Op = OpCall
	case 0x3:
		in.Op = OpSkipEqImm
	case 0x4:
		in.Op = OpSkipNeImm
	case 0x5:
		if in.N == 0 {
			in.Op = OpSkipEqReg
		}
	case 0x6:
		in.Op = OpLoadImm
	case 0x7:
		in.Op = OpAddImm
	case 0x8:
		switch in.N {
		case 0x0:
			in.Op = OpMove
		case 0x1:
			in.Op = OpOr
		case 0x2:
			in.Op = OpAnd
		case 0x3:
			in.Op = OpXor
		case 0x4:
			in.Op = OpAdd
		case 0x5:
			in.Op = OpSub
		case 0x6:
			in.Op = OpShiftRight
		case 0x7:
			in.Op = OpSubReverse
		case 0xE:
			in.Op = OpShiftLeft
		}
	case 0x9:
		if in.N == 0 {
			in.Op = OpSkipNeReg
		}
	case 0xA:
		in.Op = OpLoadIndex
	case 0xB:
		in.Op = OpJumpOffset
	case 0xC:
		in.Op = OpRandom
	case 0xD:
		in.Op = OpDraw
	case 0xE:
		switch in.KK {
		case 0x9E:
			in.Op = OpSkipKey
		case 0xA1:
			in.Op = OpSkipNoKey
		}
	case 0xF:
		switch in.KK {
		case 0x07:
			in.Op = OpReadDelay
		case 0x0A:
			in.Op = OpWaitKey
		case 0x15:
			in.Op = OpSetDelay
		case 0x18:
			in.Op = OpSetSound
		case 0x1E:
			in.Op = OpAddIndex
		case 0x29:
			in.Op = OpGlyph
		case 0x33:
			in.Op = OpStoreBCD
		case 0x55:
			in.Op = OpStoreRegs
		case 0x65:
			in.Op = OpLoadRegs
		}
	}
	return in
}
