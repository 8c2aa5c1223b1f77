/*
 * Synacore VM - Character stream I/O
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
	"bufio"
	"errors"
	"io"
	"unicode/utf8"
)

// inputBuffer serves the `in` opcode one byte at a time, refilling itself a
// full line at a time from the underlying reader. The newline terminator is
// preserved as a deliverable byte rather than trimmed and re-appended.
type inputBuffer struct {
	src     *bufio.Reader
	pending []byte
}

func newInputBuffer(r io.Reader) *inputBuffer {
	return &inputBuffer{src: bufio.NewReader(r)}
}

func (b *inputBuffer) next() (byte, *Fault) {
	if len(b.pending) == 0 {
		if f := b.refill(); f != nil {
			return 0, f
		}
	}
	c := b.pending[0]
	b.pending = b.pending[1:]
	return c, nil
}

func (b *inputBuffer) refill() *Fault {
	line, err := b.src.ReadString('\n')
	if len(line) == 0 {
		if errors.Is(err, io.EOF) {
			return fault(InputExhausted, "no more input")
		}
		return fault(IoFailure, "reading stdin: %v", err)
	}
	b.pending = []byte(line)
	return nil
}

// writeChar emits the code point as a character. Code points that do not
// form a valid rune are silently dropped: the instruction never fails on
// bad output. Nothing is buffered here, so a write is observable to the
// outside world as soon as this returns.
func writeChar(w io.Writer, codePoint uint16) *Fault {
	r := rune(codePoint)
	if !utf8.ValidRune(r) {
		return nil
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if _, err := w.Write(buf[:n]); err != nil {
		return fault(IoFailure, "writing stdout: %v", err)
	}
	return nil
}
