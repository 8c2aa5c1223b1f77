/*
 * Synacore VM - Guest input front-end
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

// Package input adapts a terminal into the line-buffered io.Reader the VM's
// `in` opcode expects. At an interactive terminal it edits lines with
// history and arrow-key recall; it never inspects or steps the guest VM, so
// there is no command language here, only player text fed straight through
// to the program running inside the machine.
package input

import (
	"errors"
	"io"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// LineReader feeds a prompted, history-edited line at a time to the VM's
// input buffer, terminating each with the newline the guest program expects
// to see. It is only wired up when stdin is a terminal; piped input is read
// directly, unedited, via os.Stdin instead.
type LineReader struct {
	line    *liner.State
	prompt  string
	pending []byte
}

// NewLineReader builds a LineReader that prompts with prompt before each
// line of guest input.
func NewLineReader(prompt string) *LineReader {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &LineReader{line: l, prompt: prompt}
}

// Close releases the underlying terminal state.
func (r *LineReader) Close() error {
	return r.line.Close()
}

// Read implements io.Reader, prompting for one line at a time and handing
// its bytes (newline included) back to the caller's buffer.
func (r *LineReader) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		text, err := r.line.Prompt(r.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
		r.line.AppendHistory(text)
		r.pending = append([]byte(text), '\n')
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// IsTerminal reports whether fd (ordinarily os.Stdin's descriptor) is
// attached to an interactive terminal. The VM never switches the terminal
// into raw mode; this only decides whether to show a prompt and offer line
// editing, never whether to bypass the line-buffered `in` discipline.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
