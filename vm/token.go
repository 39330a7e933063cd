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

// Kind identifies the variant held by a Token.
type Kind uint8

// Token kinds. The zero Kind (INVALID) means that no token was produced.
const (
	INVALID Kind = iota
	STRING
	BITMAP
	INTEGER
	OPCODE
	SYMBOL
	UNDERFLOW
)

var kindNames = [...]string{
	INVALID:   "Invalid",
	STRING:    "String",
	BITMAP:    "Bitmap",
	INTEGER:   "Integer",
	OPCODE:    "Opcode",
	SYMBOL:    "Symbol",
	UNDERFLOW: "Underflow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a classified unit of program text. Which payload field is
// meaningful depends on Kind:
//
//	STRING		Text holds the decoded string
//	BITMAP		Text holds the '0' and '1' characters of the bitmap
//	INTEGER		Int holds the value
//	OPCODE		Int holds the Opcode value, Text its name
//	SYMBOL		Text holds the name
//	UNDERFLOW	no payload
type Token struct {
	Kind Kind
	Text string
	Int  int
}

// Str returns a String token.
func Str(s string) Token { return Token{Kind: STRING, Text: s} }

// Bits returns a Bitmap token. bits is expected to contain only '0' and '1'.
func Bits(bits string) Token { return Token{Kind: BITMAP, Text: bits} }

// Int returns an Integer token.
func Int(n int) Token { return Token{Kind: INTEGER, Int: n} }

// Sym returns a Symbol token.
func Sym(name string) Token { return Token{Kind: SYMBOL, Text: name} }

// Op returns an Opcode token.
func Op(op Opcode) Token { return Token{Kind: OPCODE, Int: int(op), Text: op.String()} }

// IsValue reports whether the token may be stored on the data stack.
func (t Token) IsValue() bool {
	switch t.Kind {
	case STRING, BITMAP, INTEGER:
		return true
	}
	return false
}

// Value returns the payload of a value token as an int or a string, or nil
// for other kinds.
func (t Token) Value() interface{} {
	switch t.Kind {
	case INTEGER:
		return t.Int
	case STRING, BITMAP:
		return t.Text
	}
	return nil
}

func (t Token) String() string {
	switch t.Kind {
	case STRING:
		return "String(" + strconv.Quote(t.Text) + ")"
	case BITMAP:
		return "Bitmap(" + t.Text + ")"
	case INTEGER:
		return "Integer(" + strconv.Itoa(t.Int) + ")"
	case OPCODE, SYMBOL:
		return t.Kind.String() + "(" + t.Text + ")"
	}
	return t.Kind.String()
}
