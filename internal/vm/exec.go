/*
 * Synacore VM - Instruction dispatch
 *
 * Copyright 2025, Synacore VM contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package vm

const wordMod = 1 << 15 // 32768

// resolveRead decodes a raw argument word and resolves it as a read operand:
// a literal yields itself, a register yields its current contents.
func (s *State) resolveRead(word uint16) (uint16, *Fault) {
	op, f := decodeOperand(word)
	if f != nil {
		return 0, f
	}
	return s.read(op), nil
}

// resolveWrite decodes a raw argument word and resolves it as a write
// target, failing if it names a literal instead of a register.
func (s *State) resolveWrite(word uint16) (uint8, *Fault) {
	op, f := decodeOperand(word)
	if f != nil {
		return 0, f
	}
	return s.writeTarget(op)
}

// dispatch performs the side effect of a single decoded instruction. pc has
// already been advanced past it, so jmp/jt/jf/call/ret below assign pc
// directly and that assignment sticks.
func (s *State) dispatch(inst instruction) (halted bool, ferr *Fault) {
	a, b, c := inst.args[0], inst.args[1], inst.args[2]

	switch inst.op {
	case OpHalt:
		return true, nil

	case OpNoop:
		return false, nil

	case OpSet:
		reg, f := s.resolveWrite(a)
		if f != nil {
			return false, f
		}
		val, f := s.resolveRead(b)
		if f != nil {
			return false, f
		}
		s.setRegister(reg, val)

	case OpPush:
		val, f := s.resolveRead(a)
		if f != nil {
			return false, f
		}
		s.stack = append(s.stack, val)

	case OpPop:
		val, f := s.popStack()
		if f != nil {
			return false, f
		}
		reg, f := s.resolveWrite(a)
		if f != nil {
			return false, f
		}
		s.setRegister(reg, val)

	case OpEq:
		return false, s.compare(a, b, c, func(x, y uint16) bool { return x == y })

	case OpGt:
		return false, s.compare(a, b, c, func(x, y uint16) bool { return x > y })

	case OpJmp:
		target, f := s.resolveRead(a)
		if f != nil {
			return false, f
		}
		s.pc = int(target)

	case OpJt:
		return false, s.jumpIf(a, b, func(v uint16) bool { return v != 0 })

	case OpJf:
		return false, s.jumpIf(a, b, func(v uint16) bool { return v == 0 })

	case OpAdd:
		return false, s.binaryOp(a, b, c, func(x, y uint16) uint16 {
			return uint16((uint32(x) + uint32(y)) % wordMod)
		})

	case OpMult:
		return false, s.binaryOp(a, b, c, func(x, y uint16) uint16 {
			return uint16((uint32(x) * uint32(y)) % wordMod)
		})

	case OpMod:
		reg, valB, valC, f := s.readBinaryOperands(a, b, c)
		if f != nil {
			return false, f
		}
		if valC == 0 {
			return false, fault(DivisionByZero, "mod by zero")
		}
		s.setRegister(reg, valB%valC)

	case OpAnd:
		return false, s.binaryOp(a, b, c, func(x, y uint16) uint16 { return x & y })

	case OpOr:
		return false, s.binaryOp(a, b, c, func(x, y uint16) uint16 { return x | y })

	case OpNot:
		reg, f := s.resolveWrite(a)
		if f != nil {
			return false, f
		}
		val, f := s.resolveRead(b)
		if f != nil {
			return false, f
		}
		s.setRegister(reg, (^val)&0x7FFF)

	case OpRmem:
		reg, f := s.resolveWrite(a)
		if f != nil {
			return false, f
		}
		addr, f := s.resolveRead(b)
		if f != nil {
			return false, f
		}
		s.setRegister(reg, s.mem.get(addr))

	case OpWmem:
		addr, f := s.resolveRead(a)
		if f != nil {
			return false, f
		}
		val, f := s.resolveRead(b)
		if f != nil {
			return false, f
		}
		s.mem.set(addr, val)

	case OpCall:
		target, f := s.resolveRead(a)
		if f != nil {
			return false, f
		}
		s.stack = append(s.stack, uint16(s.pc))
		s.pc = int(target)

	case OpRet:
		ret, f := s.popStack()
		if f != nil {
			return false, f
		}
		s.pc = int(ret)

	case OpOut:
		val, f := s.resolveRead(a)
		if f != nil {
			return false, f
		}
		if f := writeChar(s.output, val); f != nil {
			return false, f
		}

	case OpIn:
		reg, f := s.resolveWrite(a)
		if f != nil {
			return false, f
		}
		inByte, f := s.input.next()
		if f != nil {
			return false, f
		}
		s.setRegister(reg, uint16(inByte))
	}

	return false, nil
}

func (s *State) popStack() (uint16, *Fault) {
	if len(s.stack) == 0 {
		return 0, fault(StackUnderflow, "pop on empty stack")
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, nil
}

// readBinaryOperands resolves the write target and the two read operands
// shared by the three-argument arithmetic/logic instructions.
func (s *State) readBinaryOperands(a, b, c uint16) (reg uint8, valB, valC uint16, ferr *Fault) {
	reg, f := s.resolveWrite(a)
	if f != nil {
		return 0, 0, 0, f
	}
	valB, f = s.resolveRead(b)
	if f != nil {
		return 0, 0, 0, f
	}
	valC, f = s.resolveRead(c)
	if f != nil {
		return 0, 0, 0, f
	}
	return reg, valB, valC, nil
}

func (s *State) binaryOp(a, b, c uint16, op func(x, y uint16) uint16) *Fault {
	reg, valB, valC, f := s.readBinaryOperands(a, b, c)
	if f != nil {
		return f
	}
	s.setRegister(reg, op(valB, valC))
	return nil
}

func (s *State) compare(a, b, c uint16, op func(x, y uint16) bool) *Fault {
	reg, valB, valC, f := s.readBinaryOperands(a, b, c)
	if f != nil {
		return f
	}
	if op(valB, valC) {
		s.setRegister(reg, 1)
	} else {
		s.setRegister(reg, 0)
	}
	return nil
}

func (s *State) jumpIf(a, b uint16, cond func(uint16) bool) *Fault {
	valA, f := s.resolveRead(a)
	if f != nil {
		return f
	}
	valB, f := s.resolveRead(b)
	if f != nil {
		return f
	}
	if cond(valA) {
		s.pc = int(valB)
	}
	return nil
}
