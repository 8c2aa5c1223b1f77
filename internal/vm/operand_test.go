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

import "testing"

func TestDecodeOperandBoundaries(t *testing.T) {
	cases := []struct {
		word    uint16
		wantTag operandTag
		wantVal uint16
		wantErr bool
	}{
		{0, tagLiteral, 0, false},
		{32767, tagLiteral, 32767, false},
		{32768, tagRegister, 0, false},
		{32775, tagRegister, 7, false},
		{32776, 0, 0, true},
		{65535, 0, 0, true},
	}
	for _, c := range cases {
		op, f := decodeOperand(c.word)
		if c.wantErr {
			if f == nil || f.Kind != InvalidOperand {
				t.Errorf("word %d: got %v want InvalidOperand", c.word, f)
			}
			continue
		}
		if f != nil {
			t.Errorf("word %d: unexpected error %v", c.word, f)
			continue
		}
		if op.tag != c.wantTag || op.value != c.wantVal {
			t.Errorf("word %d: got {%v %d} want {%v %d}", c.word, op.tag, op.value, c.wantTag, c.wantVal)
		}
	}
}

func TestStateReadLiteralAndRegister(t *testing.T) {
	s := &State{}
	s.registers[3] = 99
	if got := s.read(operand{tag: tagLiteral, value: 7}); got != 7 {
		t.Errorf("literal read got %d want 7", got)
	}
	if got := s.read(operand{tag: tagRegister, value: 3}); got != 99 {
		t.Errorf("register read got %d want 99", got)
	}
}

func TestWriteTargetRejectsLiteral(t *testing.T) {
	s := &State{}
	_, f := s.writeTarget(operand{tag: tagLiteral, value: 5})
	if f == nil || f.Kind != InvalidWriteTarget {
		t.Fatalf("got %v want InvalidWriteTarget", f)
	}
}
