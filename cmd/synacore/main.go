/*
 * Synacore VM - Main process.
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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/synacore/internal/input"
	"github.com/rcornwell/synacore/internal/vm"
	"github.com/rcornwell/synacore/util/logger"
)

func main() {
	optImage := getopt.StringLong("image", 'i', "", "Program image to load")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optTrace := getopt.BoolLong("trace", 't', "Log every instruction as it executes")
	optQuiet := getopt.BoolLong("quiet", 'q', "Suppress the terminal input prompt")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logOut *os.File = os.Stderr
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "creating log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logOut, *optTrace)
	slog.SetDefault(log)

	if *optImage == "" {
		log.Error("no program image specified; pass --image")
		os.Exit(1)
	}

	binary, err := os.ReadFile(*optImage)
	if err != nil {
		log.Error("reading image", "error", err)
		os.Exit(1)
	}

	stdin, closeStdin := inputReader(*optQuiet)
	if closeStdin != nil {
		defer closeStdin()
	}

	err = vm.Execute(binary, stdin, os.Stdout, vm.Config{Logger: log, Trace: *optTrace})
	if err != nil {
		var fault *vm.Fault
		if errors.As(err, &fault) {
			log.Error("halted", "kind", fault.Kind.String(), "error", fault.Error())
			os.Exit(1)
		}
		log.Error("halted", "error", err)
		os.Exit(1)
	}
}

// inputReader picks the front-end that feeds the VM's `in` opcode: a
// history-edited prompt at an interactive terminal, or stdin read straight
// through when quiet mode is requested or stdin is piped/redirected.
func inputReader(quiet bool) (r io.Reader, closer func()) {
	if quiet || !input.IsTerminal(os.Stdin.Fd()) {
		return os.Stdin, nil
	}
	lr := input.NewLineReader("")
	return lr, func() { lr.Close() }
}
