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

import "strconv"

// compileFunction compiles a ': name body ;' definition. The body is stored
// unevaluated; nothing is checked about it until the function is called.
func (i *Instance) compileFunction() {
	var words []Token
	start := i.pos
	for i.pos++; i.err == nil && i.pos < len(i.code); {
		c := i.code[i.pos]
		switch {
		case c == '#':
			i.skipComment()
		case isSpace(c):
			i.pos++
		case c == '(':
			words = append(words, i.scanString())
		case c == '<':
			words = append(words, i.scanBitmap())
		case c == ';':
			i.pos++
			i.define(words, start)
			return
		default:
			words = append(words, i.scanWord())
		}
	}
	i.parseError(ErrMissingSemicolon, "function", "", start, start+contextAfter)
}

func (i *Instance) define(words []Token, start int) {
	if len(words) == 0 {
		i.parseError(ErrMissingName, "function", "", start, i.pos)
		return
	}
	name := words[0]
	switch name.Kind {
	case SYMBOL:
	case OPCODE:
		i.parseError(ErrReservedName, "function", strconv.Quote(name.Text), start, i.pos)
		return
	default:
		i.parseError(ErrBadName, "function", "", start, i.pos)
		return
	}
	body := append([]Token(nil), words[1:]...)
	i.traceDebug(": %s ... ; = %v", name.Text, body)
	i.funcs[name.Text] = body
}
