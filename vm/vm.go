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

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

// DefaultMaxDepth is the default symbol expansion depth limit.
const DefaultMaxDepth = 30

// Logger receives VM diagnostics. A commonlog.Logger satisfies it.
type Logger interface {
	Warningf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Instance is the state of a single run: data stack, registers, function
// table and lexer position in the program text. An Instance must not be
// reused for another program; create a new one with New.
type Instance struct {
	X, Y         int // draw cursor
	MarkX, MarkY int // saved cursor
	Stroke, Fill int // style registers
	TraceLevel   int // 0: off, 1: draw commands, 2: +evaluation, 3: +stack dump

	code      string
	pos       int
	stack     []Token
	funcs     map[string][]Token
	err       *Error
	sink      Sink
	log       Logger
	maxDepth  int
	stepLimit int64
	steps     int64
}

// Option interface
type Option func(*Instance) error

// Output sets the Sink receiving drawing commands. The default is Discard.
func Output(s Sink) Option {
	return func(i *Instance) error {
		if s == nil {
			s = Discard
		}
		i.sink = s
		return nil
	}
}

// Log sets the Logger used for diagnostics. The default logs to the
// commonlog logger named "bkit.vm".
func Log(l Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			return errors.New("Log: nil logger")
		}
		i.log = l
		return nil
	}
}

// Trace sets the initial trace level. Programs can change it with the trace
// opcode.
func Trace(level int) Option {
	return func(i *Instance) error { i.TraceLevel = level; return nil }
}

// MaxDepth sets the symbol expansion depth limit. The default is
// DefaultMaxDepth.
func MaxDepth(depth int) Option {
	return func(i *Instance) error {
		if depth < 1 {
			return errors.Errorf("MaxDepth: invalid depth %d", depth)
		}
		i.maxDepth = depth
		return nil
	}
}

// StepLimit bounds the number of tokens evaluated during Run. When the limit
// is reached, a fatal ErrStepLimit error is recorded. The default, 0, means no
// limit.
func StepLimit(steps int64) Option {
	return func(i *Instance) error {
		if steps < 0 {
			return errors.Errorf("StepLimit: invalid limit %d", steps)
		}
		i.stepLimit = steps
		return nil
	}
}

// Define compiles body with the same rules as a ':' definition and registers
// it under name before the program runs. It fails if name is not a single
// word or if body ends the definition early.
func Define(name, body string) Option {
	return func(i *Instance) error {
		d, err := New(": " + name + " " + body + "\n;")
		if err != nil {
			return err
		}
		d.log = i.log
		if err = d.Run(); err != nil {
			return errors.Wrapf(err, "Define %s", name)
		}
		body, ok := d.funcs[name]
		if !ok || len(d.funcs) != 1 || d.Steps() > 0 {
			return errors.Errorf("Define %s: body is not a single definition of %q", name, name)
		}
		i.funcs[name] = body
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance for the given program text.
//
// Options will be set by calling SetOptions.
func New(code string, opts ...Option) (*Instance, error) {
	i := &Instance{
		Stroke:   1,
		code:     code,
		stack:    make([]Token, 0, 32),
		funcs:    make(map[string][]Token),
		sink:     Discard,
		log:      commonlog.GetLogger("bkit.vm"),
		maxDepth: DefaultMaxDepth,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Data returns a copy of the data stack, bottom first.
func (i *Instance) Data() []Token {
	return append([]Token(nil), i.stack...)
}

// Depth returns the data stack depth.
func (i *Instance) Depth() int {
	return len(i.stack)
}

// Push pushes v on top of the data stack. Tokens other than STRING, BITMAP
// and INTEGER are ignored.
func (i *Instance) Push(v Token) {
	if !v.IsValue() {
		return
	}
	i.stack = append(i.stack, v)
}

// Pop removes the top of the data stack and returns it. If the stack is
// empty, it returns an UNDERFLOW token.
func (i *Instance) Pop() Token {
	n := len(i.stack) - 1
	if n < 0 {
		return Token{Kind: UNDERFLOW}
	}
	t := i.stack[n]
	i.stack = i.stack[:n]
	return t
}

// Func returns the body of the named function.
func (i *Instance) Func(name string) ([]Token, bool) {
	body, ok := i.funcs[name]
	return body, ok
}

// Funcs returns the sorted names of all defined functions.
func (i *Instance) Funcs() []string {
	names := make([]string, 0, len(i.funcs))
	for n := range i.funcs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Err returns the first fatal error of the run, or nil.
func (i *Instance) Err() error {
	if i.err == nil {
		return nil
	}
	return i.err
}

// Steps returns the number of tokens evaluated so far.
func (i *Instance) Steps() int64 {
	return i.steps
}
