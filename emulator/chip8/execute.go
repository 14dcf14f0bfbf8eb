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

func (m *Machine) execute(in Instruction) error {
	switch in.Op {
	case OpNone:
		// Unrecognized patterns are defined as no-ops.

	case OpClear:
		m.display = [DisplayWidth * DisplayHeight]byte{}

	case OpReturn:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case OpJump:
		m.pc = in.NNN

	case OpCall:
		if int(m.sp) >= StackDepth {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = in.NNN

	case OpSkipEqImm:
		if m.v[in.X] == in.KK {
			m.pc += 2
		}

	case OpSkipNeImm:
		if m.v[in.X] != in.KK {
			m.pc += 2
		}

	case OpSkipEqReg:
		if m.v[in.X] == m.v[in.Y] {
			m.pc += 2
		}

	case OpLoadImm:
		m.v[in.X] = in.KK

	case OpAddImm:
		m.v[in.X] += in.KK // 8-bit wraparound, no flag

	case OpMove:
		m.v[in.X] = m.v[in.Y]

	case OpOr:
		m.v[in.X] |= m.v[in.Y]

	case OpAnd:
		m.v[in.X] &= m.v[in.Y]

	case OpXor:
		m.v[in.X] ^= m.v[in.Y]

	case OpAdd:
		sum := uint16(m.v[in.X]) + uint16(m.v[in.Y])
		m.v[in.X] = byte(sum)
		m.v[0xF] = byte(sum >> 8)

	case OpSub:
		noBorrow := m.v[in.X] >= m.v[in.Y]
		m.v[in.X] -= m.v[in.Y]
		m.v[0xF] = flag(noBorrow)

	case OpShiftRight:
		lsb := m.v[in.X] & 1
		m.v[in.X] >>= 1
		m.v[0xF] = lsb

	case OpSubReverse:
		noBorrow := m.v[in.Y] >= m.v[in.X]
		m.v[in.X] = m.v[in.Y] - m.v[in.X]
		m.v[0xF] = flag(noBorrow)

	case OpShiftLeft:
		msb := m.v[in.X] >> 7
		m.v[in.X] <<= 1
		m.v[0xF] = msb

	case OpSkipNeReg:
		if m.v[in.X] != m.v[in.Y] {
			m.pc += 2
		}

	case OpLoadIndex:
		m.index = in.NNN

	case OpJumpOffset:
		if m.cfg.LegacyJump {
			// Reference behavior: V0 is added to the low byte only.
			m.pc = uint16(byte(in.NNN) + m.v[0])
		} else {
			m.pc = (in.NNN + uint16(m.v[0])) & 0xFFF
		}

	case OpRandom:
		m.v[in.X] = byte(m.rng.Intn(256)) & in.KK

	case OpDraw:
		return m.draw(in.X, in.Y, in.N)

	case OpSkipKey:
		if m.keyPressed(m.v[in.X]) {
			m.pc += 2
		}

	case OpSkipNoKey:
		if !m.keyPressed(m.v[in.X]) {
			m.pc += 2
		}

	case OpReadDelay:
		m.v[in.X] = m.delayTimer

	case OpWaitKey:
		// Busy self-loop: rewind the program counter until a key is
		// down, then latch the lowest-numbered pressed key.
		for k := byte(0); k < 16; k++ {
			if m.keypad[k] {
				m.v[in.X] = k
				return nil
			}
		}
		m.pc -= 2

	case OpSetDelay:
		m.delayTimer = m.v[in.X]

	case OpSetSound:
		m.soundTimer = m.v[in.X]

	case OpAddIndex:
		m.index += uint16(m.v[in.X]) // no overflow flag

	case OpGlyph:
		m.index = FontAddress + GlyphHeight*uint16(m.v[in.X]&0xF)

	case OpStoreBCD:
		if int(m.index)+2 >= MemorySize {
			return ErrAddressOutOfRange
		}
		val := m.v[in.X]
		m.mem[m.index] = val / 100
		m.mem[m.index+1] = val / 10 % 10
		m.mem[m.index+2] = val % 10

	case OpStoreRegs:
		if int(m.index)+int(in.X) >= MemorySize {
			return ErrAddressOutOfRange
		}
		copy(m.mem[m.index:], m.v[:in.X+1])

	case OpLoadRegs:
		if int(m.index)+int(in.X) >= MemorySize {
			return ErrAddressOutOfRange
		}
		copy(m.v[:in.X+1], m.mem[m.index:])
	}
	return nil
}

// draw XORs an n-row sprite read from the index register onto the
// display at (Vx mod 64, Vy mod 32) and sets VF when any lit sprite
// pixel lands on an already lit display pixel. The flag is never
// cleared again once set during the draw.
func (m *Machine) draw(x, y, n byte) error {
	if int(m.index)+int(n) > MemorySize {
		return ErrAddressOutOfRange
	}

	px := int(m.v[x]) % DisplayWidth
	py := int(m.v[y]) % DisplayHeight
	m.v[0xF] = 0

	for row := 0; row < int(n); row++ {
		sprite := m.mem[int(m.index)+row]
		dy := py + row
		if dy >= DisplayHeight {
			if !m.cfg.WrapSprites {
				break
			}
			dy %= DisplayHeight
		}

		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			dx := px + col
			if dx >= DisplayWidth {
				if !m.cfg.WrapSprites {
					continue
				}
				dx %= DisplayWidth
			}

			p := &m.display[dy*DisplayWidth+dx]
			if *p != 0 {
				m.v[0xF] = 1
			}
			*p ^= 0xFF
		}
	}
	return nil
}

func (m *Machine) keyPressed(k byte) bool {
	return k < 16 && m.keypad[k]
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
