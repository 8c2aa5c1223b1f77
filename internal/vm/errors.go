/*
 * Synacore VM - Fault taxonomy
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

import "fmt"

// Kind identifies one of the fatal fault conditions a running VM can hit.
type Kind int

const (
	ImageTruncated Kind = iota
	ImageTooLarge
	PcOutOfRange
	UnknownOpcode
	InvalidOperand
	InvalidWriteTarget
	StackUnderflow
	DivisionByZero
	InputExhausted
	IoFailure
)

func (k Kind) String() string {
	switch k {
	case ImageTruncated:
		return "ImageTruncated"
	case ImageTooLarge:
		return "ImageTooLarge"
	case PcOutOfRange:
		return "PcOutOfRange"
	case UnknownOpcode:
		return "UnknownOpcode"
	case InvalidOperand:
		return "InvalidOperand"
	case InvalidWriteTarget:
		return "InvalidWriteTarget"
	case StackUnderflow:
		return "StackUnderflow"
	case DivisionByZero:
		return "DivisionByZero"
	case InputExhausted:
		return "InputExhausted"
	case IoFailure:
		return "IoFailure"
	default:
		return "Unknown"
	}
}

// Fault is the single error type the VM ever returns. Execution stops on the
// first one; nothing is retried and no partial state is exposed.
type Fault struct {
	Kind Kind
	msg  string
}

func (f *Fault) Error() string {
	if f.msg == "" {
		return f.Kind.String()
	}
	return f.Kind.String() + ": " + f.msg
}

// Is lets callers compare against the package sentinels with errors.Is.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return t.Kind == f.Kind
}

func fault(kind Kind, format string, a ...any) *Fault {
	return &Fault{Kind: kind, msg: fmt.Sprintf(format, a...)}
}

// Sentinels for errors.Is comparisons against a specific fault kind, e.g.
// errors.Is(err, vm.ErrStackUnderflow).
var (
	ErrImageTruncated     = &Fault{Kind: ImageTruncated}
	ErrImageTooLarge      = &Fault{Kind: ImageTooLarge}
	ErrPcOutOfRange       = &Fault{Kind: PcOutOfRange}
	ErrUnknownOpcode      = &Fault{Kind: UnknownOpcode}
	ErrInvalidOperand     = &Fault{Kind: InvalidOperand}
	ErrInvalidWriteTarget = &Fault{Kind: InvalidWriteTarget}
	ErrStackUnderflow     = &Fault{Kind: StackUnderflow}
	ErrDivisionByZero     = &Fault{Kind: DivisionByZero}
	ErrInputExhausted     = &Fault{Kind: InputExhausted}
	ErrIoFailure          = &Fault{Kind: IoFailure}
)
