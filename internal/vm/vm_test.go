/*
 * Synacore VM - Executor and entry point
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

import (
	"bytes"
	"strings"
	"testing"
)

// encode packs a little-endian program image from raw words.
func encode(words ...uint16) []byte {
	buf := make([]byte, 0, len(words)*2)
	for _, w := range words {
		buf = append(buf, byte(w&0xFF), byte(w>>8))
	}
	return buf
}

func TestExecuteHelloLiteral(t *testing.T) {
	// out 65; out 66; halt
	img := encode(19, 65, 19, 66, 0)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader(""), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "AB" {
		t.Errorf("got %q want %q", got, "AB")
	}
}

func TestExecuteSetAndOutputRegister(t *testing.T) {
	// set r0 65; out r0; halt
	img := encode(1, 32768, 65, 19, 32768, 0)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader(""), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "A" {
		t.Errorf("got %q want %q", got, "A")
	}
}

func TestExecuteModularAdd(t *testing.T) {
	// add r0 32767 10; out r0 (wraps: (32767+10) % 32768 == 9, not printable
	// but we can verify via eq against expected wrapped value instead)
	// set r1 9; eq r2 r0 r1; out r2 (prints 1 if equal)
	img := encode(
		9, 32768, 32767, 10, // add r0, 32767, 10
		1, 32769, 9, // set r1, 9
		4, 32770, 32768, 32769, // eq r2, r0, r1
		19, 32770, // out r2 -- this prints the raw value 1, not a char; use echo check below
		0,
	)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader(""), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	// r2 should hold 1 (true); out writes codepoint 1, a control character
	// but a valid rune, so it's written as the single byte 0x01.
	if got := out.Bytes(); len(got) != 1 || got[0] != 1 {
		t.Errorf("got %v want [1]", got)
	}
}

func TestExecuteConditionalJump(t *testing.T) {
	// jt 1, 5 -> jumps to address 5 since literal 1 is truthy
	// out 65 (addr 3,4 -- skipped)
	// out 66; halt (addr 5..7)
	img := encode(
		7, 1, 5, // jt 1, 5
		19, 65, // addr 3: out 'A' (skipped)
		19, 66, // addr 5: out 'B'
		0, // halt
	)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader(""), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "B" {
		t.Errorf("got %q want %q", got, "B")
	}
}

func TestExecuteCallRet(t *testing.T) {
	// call 5; out 66; halt; out 65 (addr5); ret
	img := encode(
		17, 5, // 0: call 5
		19, 66, // 2: out 'B'
		0,      // 4: halt
		19, 65, // 5: out 'A'
		18, // 7: ret
	)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader(""), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "AB" {
		t.Errorf("got %q want %q", got, "AB")
	}
}

func TestExecuteInputEcho(t *testing.T) {
	// in r0; out r0; in r0; out r0; halt
	img := encode(20, 32768, 19, 32768, 20, 32768, 19, 32768, 0)
	var out bytes.Buffer
	if err := Execute(img, strings.NewReader("X\n"), &out, Config{}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "X\n" {
		t.Errorf("got %q want %q", got, "X\n")
	}
}

func TestExecuteDivisionByZero(t *testing.T) {
	// mod r0 10 0; halt
	img := encode(11, 32768, 10, 0, 0)
	err := Execute(img, strings.NewReader(""), &bytes.Buffer{}, Config{})
	f, ok := err.(*Fault)
	if !ok || f.Kind != DivisionByZero {
		t.Fatalf("got %v want DivisionByZero", err)
	}
}

func TestExecuteStackUnderflow(t *testing.T) {
	// pop r0; halt
	img := encode(3, 32768, 0)
	err := Execute(img, strings.NewReader(""), &bytes.Buffer{}, Config{})
	f, ok := err.(*Fault)
	if !ok || f.Kind != StackUnderflow {
		t.Fatalf("got %v want StackUnderflow", err)
	}
}

func TestExecuteInputExhausted(t *testing.T) {
	// in r0; halt, with no stdin bytes available
	img := encode(20, 32768, 0)
	err := Execute(img, strings.NewReader(""), &bytes.Buffer{}, Config{})
	f, ok := err.(*Fault)
	if !ok || f.Kind != InputExhausted {
		t.Fatalf("got %v want InputExhausted", err)
	}
}

func TestExecuteImageTruncated(t *testing.T) {
	err := Execute([]byte{0x01}, strings.NewReader(""), &bytes.Buffer{}, Config{})
	f, ok := err.(*Fault)
	if !ok || f.Kind != ImageTruncated {
		t.Fatalf("got %v want ImageTruncated", err)
	}
}
