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
	"github.com/pkg/errors"
)

// Run interprets code with a fresh Instance, sending drawing commands to
// sink, and returns the first fatal error, if any.
func Run(code string, sink Sink, opts ...Option) error {
	i, err := New(code, append([]Option{Output(sink)}, opts...)...)
	if err != nil {
		return err
	}
	return i.Run()
}

// Run reads and evaluates the program one top-level token at a time until
// the end of input or until a fatal error has been recorded.
//
// The error is checked only between top-level tokens: a function that raises
// an error still evaluates the rest of its body (and the functions it calls)
// before execution stops. Only the first error is kept and returned; it is of
// type *Error.
//
// Undefined symbols and symbol expansions deeper than the MaxDepth option are
// logged as warnings and do not stop execution.
//
// A panic raised by the Sink is recovered and returned as an error.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "Recovered error @pos=%d/%d, stack %d, (x:%d,y:%d)", i.pos, len(i.code), len(i.stack), i.X, i.Y)
			default:
				err = errors.Errorf("Recovered panic @pos=%d/%d: %v", i.pos, len(i.code), e)
			}
		}
	}()
	for i.err == nil {
		tok, ok := i.next()
		if !ok {
			break
		}
		i.evaluate(tok, 0)
	}
	if i.err != nil {
		i.warn("error: %v", i.err)
		return i.err
	}
	return nil
}

// evaluate pushes value tokens, executes opcodes and expands symbols. Symbol
// bodies are evaluated at depth+1; tokens at or beyond the depth limit are
// dropped with a warning.
func (i *Instance) evaluate(tok Token, depth int) {
	if tok.Kind == INVALID {
		return
	}
	if depth >= i.maxDepth {
		i.warn("call stack too deep: %v", tok)
		return
	}
	if i.stepLimit > 0 && i.steps >= i.stepLimit {
		i.runtimeError(ErrStepLimit, "eval", tok.String())
		return
	}
	i.steps++
	switch tok.Kind {
	case STRING, BITMAP, INTEGER:
		i.traceDebug("eval %v", tok)
		i.Push(tok)
	case OPCODE:
		i.traceDebug("eval %v", tok)
		i.exec(Opcode(tok.Int))
	case SYMBOL:
		i.traceDebug("eval %v", tok)
		body, ok := i.funcs[tok.Text]
		if !ok {
			i.warn("eval of undefined symbol: %v", tok)
			return
		}
		for _, t := range body {
			i.evaluate(t, depth+1)
		}
	default:
		i.warn("eval ???: %v", tok)
	}
}
