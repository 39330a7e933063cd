// This file is part of ui-sim - https://github.com/samblenny/ui-sim
//
// Copyright 2020 The ui-sim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "strings"

// Errno identifies the nature of a fatal error.
type Errno int

// Parse errors.
const (
	ErrMissingParen Errno = iota
	ErrBitmapSyntax
	ErrMissingAngle
	ErrMissingSemicolon
	ErrMissingName
	ErrReservedName
	ErrBadName
	ErrNoFloats
	ErrIntRange
)

// Runtime errors.
const (
	ErrUnderflow Errno = iota + 100
	ErrOperandType
	ErrBitmapSize
	ErrStepLimit
)

var strError = map[Errno]string{
	ErrMissingParen:     "missing ')'",
	ErrBitmapSyntax:     "syntax error",
	ErrMissingAngle:     "missing '>'",
	ErrMissingSemicolon: "missing ';'",
	ErrMissingName:      "missing function name",
	ErrReservedName:     "cannot redefine keyword",
	ErrBadName:          "name cannot be number, <bitmap>, or (string)",
	ErrNoFloats:         "no floats",
	ErrIntRange:         "integer out of range",
	ErrUnderflow:        "underflow",
	ErrOperandType:      "operand type",
	ErrBitmapSize:       "bitmap size",
	ErrStepLimit:        "step limit exceeded",
}

func (e Errno) Error() string {
	return strError[e]
}

// IsParse reports whether e is raised while reading program text, as opposed
// to while evaluating it.
func (e Errno) IsParse() bool {
	return e < ErrUnderflow
}

// Error is the fatal error recorded by an Instance. Only the first error of a
// run is kept.
type Error struct {
	Errno   Errno   // nature of the error
	Op      string  // construct or opcode that raised it ("string", "function", "+", ...)
	Detail  string  // operands or offending name, may be empty
	Context string  // quoted code around a parse error
	Pos     int     // byte offset in the source of a parse error
	Stack   []Token // data stack when a runtime error was raised
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Errno.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Context != "" {
		b.WriteString(": ")
		b.WriteString(e.Context)
	}
	return b.String()
}

// Cause returns the Errno so that errors.Cause from github.com/pkg/errors
// can be used to classify wrapped VM errors.
func (e *Error) Cause() error {
	return e.Errno
}

// setError records e unless an error is already set.
func (i *Instance) setError(e *Error) {
	if i.err == nil {
		i.err = e
	}
}

// runtimeError records a fatal evaluation error together with a snapshot of
// the data stack.
func (i *Instance) runtimeError(errno Errno, op, detail string) {
	if i.err != nil {
		return
	}
	i.setError(&Error{
		Errno:  errno,
		Op:     op,
		Detail: detail,
		Pos:    -1,
		Stack:  i.Data(),
	})
}

// parseError records a fatal parse error. start is the offset where the
// construct began and end the offset of the failure point.
func (i *Instance) parseError(errno Errno, op, detail string, start, end int) {
	i.setError(&Error{
		Errno:   errno,
		Op:      op,
		Detail:  detail,
		Context: i.codeAround(start, end),
		Pos:     start,
	})
}

const contextBefore = 20

// codeAround returns the quoted source from a few bytes before start through
// end.
func (i *Instance) codeAround(start, end int) string {
	before := start - contextBefore
	if before < 0 {
		before = 0
	}
	if end > len(i.code) {
		end = len(i.code)
	}
	if end < before {
		end = before
	}
	return `"...` + i.code[before:end] + `"`
}
