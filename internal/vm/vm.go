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

// Package vm implements the Synacor Challenge virtual machine: a 15-bit
// fixed-ISA bytecode interpreter with eight registers, an unbounded stack,
// and line-buffered character I/O.
package vm

import (
	"io"
	"log/slog"

	"github.com/rcornwell/synacore/util/hexfmt"
)

// State holds everything a single Execute call owns: memory, registers, the
// stack, the program counter, and the pending input queue. It is created
// once per Execute call and discarded on return; nothing survives a fault.
type State struct {
	mem       memory
	registers [numRegs]uint16
	stack     []uint16
	pc        int

	input  *inputBuffer
	output io.Writer

	log   *slog.Logger
	trace bool
}

// Config carries the optional ambient wiring Execute accepts alongside the
// raw binary/stdin/stdout triple. A zero Config is the default: no logging,
// no instruction tracing.
type Config struct {
	Logger *slog.Logger
	Trace  bool
}

// Execute loads binary into a fresh VM and runs it to completion. It returns
// nil on a normal halt, or a *Fault describing the first fatal condition
// encountered. Output already written to stdout before a fault is not
// rolled back.
func Execute(binary []byte, stdin io.Reader, stdout io.Writer, cfg Config) error {
	s := &State{
		input:  newInputBuffer(stdin),
		output: stdout,
		log:    cfg.Logger,
		trace:  cfg.Trace,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if f := s.mem.load(binary); f != nil {
		return f
	}
	return s.run()
}

// run drives the fetch-decode-execute loop until Halt or a fault. The
// program counter advances past the current instruction before dispatch, so
// jmp/jt/jf/call/ret can overwrite it correctly.
func (s *State) run() error {
	for {
		inst, nextPC, f := decode(&s.mem, s.pc)
		if f != nil {
			return f
		}
		pc := s.pc
		s.pc = nextPC

		if s.trace {
			s.log.Debug("step", "op", inst.op.String(), "pc", s.pc)
		}

		halt, f := s.dispatch(inst)
		if f != nil {
			s.log.Error("fault", "kind", f.Kind.String(),
				"pc", hexfmt.Word(uint16(pc)), "word", hexfmt.Word(s.mem.get(uint16(pc))))
			return f
		}
		if halt {
			return nil
		}
	}
}
