/*
 * Synacore VM - Instruction decoder
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

// instruction is a decoded opcode with its raw, unresolved argument words.
// Decoding never touches registers or the stack: role enforcement (a
// writable argument must be a register) happens at execution time.
type instruction struct {
	op   Opcode
	args [3]uint16
}

// decode reads the opcode word at pc and its fixed-arity argument words,
// returning the instruction and the pc of the next instruction. It never
// reads past address 32767.
func decode(mem *memory, pc int) (instruction, int, *Fault) {
	if pc < 0 || pc >= memSize {
		return instruction{}, 0, fault(PcOutOfRange, "fetch at %d", pc)
	}
	opWord := mem.get(uint16(pc))
	if opWord > uint16(maxOpcode) {
		return instruction{}, 0, fault(UnknownOpcode, "opcode %d at %d", opWord, pc)
	}
	op := Opcode(opWord)
	n := arity[op]

	var inst instruction
	inst.op = op
	for i := uint8(0); i < n; i++ {
		argAddr := pc + 1 + int(i)
		if argAddr >= memSize {
			return instruction{}, 0, fault(PcOutOfRange, "argument fetch at %d", argAddr)
		}
		inst.args[i] = mem.get(uint16(argAddr))
	}
	return inst, pc + 1 + int(n), nil
}
