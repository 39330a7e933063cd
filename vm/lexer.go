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
	"strconv"
	"strings"
)

// unterminated constructs report this many bytes of code past their start.
const contextAfter = 40

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// next scans the next top-level token. ok is false at end of input. A ':'
// definition is compiled on the fly and yields an INVALID token, as do
// malformed literals, after recording an error.
func (i *Instance) next() (tok Token, ok bool) {
	for i.pos < len(i.code) {
		c := i.code[i.pos]
		switch {
		case c == '#':
			i.skipComment()
		case isSpace(c):
			i.pos++
		case c == '(':
			return i.scanString(), true
		case c == '<':
			return i.scanBitmap(), true
		case c == ':':
			i.compileFunction()
			return Token{}, true
		default:
			return i.scanWord(), true
		}
	}
	return Token{}, false
}

// skipComment skips to the end of the current line.
func (i *Instance) skipComment() {
	for ; i.pos < len(i.code); i.pos++ {
		if c := i.code[i.pos]; c == '\n' || c == '\r' {
			break
		}
	}
}

// scanString scans a string literal up to the first unescaped ')'. A '\'
// escapes the following byte, whatever it is.
func (i *Instance) scanString() Token {
	var b strings.Builder
	start := i.pos
	for i.pos++; i.pos < len(i.code); i.pos++ {
		c := i.code[i.pos]
		switch {
		case c == '\\' && i.pos < len(i.code)-1:
			i.pos++
			b.WriteByte(i.code[i.pos])
		case c == ')':
			i.pos++
			return Str(b.String())
		default:
			b.WriteByte(c)
		}
	}
	i.parseError(ErrMissingParen, "string", "", start, start+contextAfter)
	return Token{}
}

// scanBitmap scans a bitmap literal up to '>'. Whitespace inside the literal
// is layout only.
func (i *Instance) scanBitmap() Token {
	var b strings.Builder
	start := i.pos
	for i.pos++; i.pos < len(i.code); i.pos++ {
		c := i.code[i.pos]
		switch {
		case c == '0' || c == '1':
			b.WriteByte(c)
		case isSpace(c):
		case c == '>':
			i.pos++
			return Bits(b.String())
		default:
			i.parseError(ErrBitmapSyntax, "bitmap", "", start, i.pos+1)
			return Token{}
		}
	}
	i.parseError(ErrMissingAngle, "bitmap", "", start, start+contextAfter)
	return Token{}
}

// scanWord scans a run of non-whitespace bytes and classifies it as an
// INTEGER, OPCODE or SYMBOL.
func (i *Instance) scanWord() Token {
	start := i.pos
	for i.pos < len(i.code) && !isSpace(i.code[i.pos]) {
		i.pos++
	}
	w := i.code[start:i.pos]
	switch {
	case isInteger(w):
		n, err := strconv.Atoi(w)
		if err != nil {
			i.parseError(ErrIntRange, "number", w, start, i.pos)
			return Token{}
		}
		return Int(n)
	case isFloat(w):
		i.parseError(ErrNoFloats, "number", "", start, i.pos+1)
		return Token{}
	}
	if op, ok := opcodeIndex[w]; ok {
		return Op(op)
	}
	return Sym(w)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isInteger matches -?[0-9]+
func isInteger(w string) bool {
	if len(w) > 0 && w[0] == '-' {
		w = w[1:]
	}
	if len(w) == 0 {
		return false
	}
	for j := 0; j < len(w); j++ {
		if !isDigit(w[j]) {
			return false
		}
	}
	return true
}

// isFloat matches words starting with [0-9]+\.
func isFloat(w string) bool {
	j := 0
	for j < len(w) && isDigit(w[j]) {
		j++
	}
	return j > 0 && j < len(w) && w[j] == '.'
}
