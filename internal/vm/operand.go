/*
 * Synacore VM - Operand resolution
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

const (
	literalMax  = 32767
	registerMax = 32775
	numRegs     = 8
)

// operandTag distinguishes the two shapes a raw argument word can take.
type operandTag uint8

const (
	tagLiteral operandTag = iota
	tagRegister
)

// operand is the resolved form of a raw argument word: either a literal
// value or a register index. Decoding a raw word into an operand never
// touches VM state; it is a pure function of the word's numeric range.
type operand struct {
	tag   operandTag
	value uint16 // literal value, or register index 0..7
}

// decodeOperand classifies a raw 16-bit argument word: 0..32767 names a
// literal, 32768..32775 names one of the eight registers. Values above
// 32775 are never valid operands.
func decodeOperand(word uint16) (operand, *Fault) {
	switch {
	case word <= literalMax:
		return operand{tag: tagLiteral, value: word}, nil
	case word <= registerMax:
		return operand{tag: tagRegister, value: word - (literalMax + 1)}, nil
	default:
		return operand{}, fault(InvalidOperand, "word %d exceeds 32775", word)
	}
}

// read resolves an operand for a read position: a literal yields its value,
// a register yields the register's current contents.
func (s *State) read(op operand) uint16 {
	if op.tag == tagRegister {
		return s.registers[op.value]
	}
	return op.value
}

// writeTarget resolves an operand for a write position. Only a register
// reference is valid there; a literal used as a write target is a fault.
func (s *State) writeTarget(op operand) (regIndex uint8, err *Fault) {
	if op.tag != tagRegister {
		return 0, fault(InvalidWriteTarget, "literal %d used as write target", op.value)
	}
	return uint8(op.value), nil
}

// setRegister stores a value already known to be in 0..32767.
func (s *State) setRegister(idx uint8, value uint16) {
	s.registers[idx] = value
}
