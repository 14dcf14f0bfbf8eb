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

import "testing"

func TestDecodeFamilies(t *testing.T) {
	tests := []struct {
		word uint16
		op   Op
	}{
		{0x00E0, OpClear},
		{0x00EE, OpReturn},
		{0x1234, OpJump},
		{0x2ABC, OpCall},
		{0x3A42, OpSkipEqImm},
		{0x4A42, OpSkipNeImm},
		{0x5AB0, OpSkipEqReg},
		{0x6C99, OpLoadImm},
		{0x7C01, OpAddImm},
		{0x8120, OpMove},
		{0x8121, OpOr},
		{0x8122, OpAnd},
		{0x8123, OpXor},
		{0x8124, OpAdd},
		{0x8125, OpSub},
		{0x8126, OpShiftRight},
		{0x8127, OpSubReverse},
		{0x812E, OpShiftLeft},
		{0x9AB0, OpSkipNeReg},
		{0xA123, OpLoadIndex},
		{0xB123, OpJumpOffset},
		{0xC7FF, OpRandom},
		{0xD125, OpDraw},
		{0xE29E, OpSkipKey},
		{0xE2A1, OpSkipNoKey},
		{0xF107, OpReadDelay},
		{0xF10A, OpWaitKey},
		{0xF115, OpSetDelay},
		{0xF118, OpSetSound},
		{0xF11E, OpAddIndex},
		{0xF129, OpGlyph},
		{0xF133, OpStoreBCD},
		{0xF155, OpStoreRegs},
		{0xF165, OpLoadRegs},
	}

	for _, tt := range tests {
		if in := Decode(tt.word); in.Op != tt.op {
			t.Errorf("0x%04X decoded to op %d, want %d", tt.word, in.Op, tt.op)
		}
	}
}

func TestDecodeOperands(t *testing.T) {
	in := Decode(0xD7B5)
	if in.X != 0x7 || in.Y != 0xB || in.N != 0x5 {
		t.Errorf("got X=%X Y=%X N=%X", in.X, in.Y, in.N)
	}

	in = Decode(0x3A42)
	if in.X != 0xA || in.KK != 0x42 {
		t.Errorf("got X=%X KK=%02X", in.X, in.KK)
	}

	in = Decode(0x2ABC)
	if in.NNN != 0xABC {
		t.Errorf("got NNN=%03X", in.NNN)
	}
}

func TestDecodeUnrecognized(t *testing.T) {
	for _, word := range []uint16{0x0000, 0x0123, 0x00EF, 0x5AB1, 0x8128, 0x812F, 0x9AB5, 0xE2FF, 0xF1FF, 0xF100} {
		if in := Decode(word); in.Op != OpNone {
			t.Errorf("0x%04X decoded to op %d, want OpNone", word, in.Op)
		}
	}
}
