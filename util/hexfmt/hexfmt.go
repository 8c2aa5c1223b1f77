/*
 * Synacore VM - Word formatting for fault diagnostics
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

// Package hexfmt renders 15-bit VM words and short memory spans as hex for
// fault messages and trace logs. It is not a disassembler: it never
// interprets a word as an opcode.
package hexfmt

import "strings"

var hexMap = "0123456789abcdef"

// Word renders a single 16-bit memory word as four hex digits, e.g. "1a05".
func Word(w uint16) string {
	var b strings.Builder
	b.Grow(4)
	WriteWord(&b, w)
	return b.String()
}

// WriteWord appends the four hex digits of w to b.
func WriteWord(b *strings.Builder, w uint16) {
	shift := 12
	for range 4 {
		b.WriteByte(hexMap[(w>>shift)&0xf])
		shift -= 4
	}
}

// Span renders a contiguous run of memory words as space-separated hex,
// useful for dumping the few words around a faulting pc.
func Span(words []uint16) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		WriteWord(&b, w)
	}
	return b.String()
}

// Byte renders a single byte as two hex digits.
func Byte(by byte) string {
	var b strings.Builder
	b.Grow(2)
	b.WriteByte(hexMap[(by>>4)&0xf])
	b.WriteByte(hexMap[by&0xf])
	return b.String()
}
