/*
 * Synacore VM - Image loader and memory
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

// memSize is the address space in words: 0..32767.
const memSize = 32768

// memory is the VM's fixed 15-bit-addressed word array. Unlike the
// mainframe-style package-global memory this is modeled after, one memory
// lives per VM instance so concurrent Execute calls never share state.
type memory struct {
	words [memSize]uint16
}

// load converts a flat byte image into little-endian 16-bit words starting
// at address 0. Addresses beyond the image stay zero.
func (m *memory) load(bytes []byte) *Fault {
	if len(bytes)%2 != 0 {
		return fault(ImageTruncated, "image length %d is odd", len(bytes))
	}
	if len(bytes) > memSize*2 {
		return fault(ImageTooLarge, "image is %d bytes, max %d", len(bytes), memSize*2)
	}
	for addr := 0; addr*2 < len(bytes); addr++ {
		lo := uint16(bytes[addr*2])
		hi := uint16(bytes[addr*2+1])
		m.words[addr] = lo | hi<<8
	}
	return nil
}

func (m *memory) get(addr uint16) uint16 {
	return m.words[addr]
}

func (m *memory) set(addr, value uint16) {
	m.words[addr] = value
}
