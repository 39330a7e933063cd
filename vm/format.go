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
	"io"
	"strconv"
	"strings"
)

// QuoteString returns s as a string literal, escaping '\' and ')'.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('(')
	for j := 0; j < len(s); j++ {
		if c := s[j]; c == '\\' || c == ')' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[j])
	}
	b.WriteByte(')')
	return b.String()
}

// FormatBitmap returns bits as a bitmap literal with one row of w bits per
// line. If w <= 0 or does not divide len(bits), the literal is written on a
// single line.
func FormatBitmap(bits string, w int) string {
	if w <= 0 || len(bits)%w != 0 || len(bits) <= w {
		return "<" + bits + ">"
	}
	var b strings.Builder
	b.WriteString("< ")
	for j := 0; j < len(bits); j += w {
		if j > 0 {
			b.WriteString("\n  ")
		}
		b.WriteString(bits[j : j+w])
	}
	b.WriteString(" >")
	return b.String()
}

// Source returns tok as program text. UNDERFLOW and INVALID tokens have no
// source form and yield an empty string.
func (t Token) Source() string {
	switch t.Kind {
	case STRING:
		return QuoteString(t.Text)
	case BITMAP:
		return "<" + t.Text + ">"
	case INTEGER:
		return strconv.Itoa(t.Int)
	case OPCODE, SYMBOL:
		return t.Text
	}
	return ""
}

// WriteSource writes the definitions of all functions of i to w, sorted by
// name, in a form that can be read back.
func (i *Instance) WriteSource(w io.Writer) error {
	var b strings.Builder
	for _, name := range i.Funcs() {
		b.WriteString(": ")
		b.WriteString(name)
		for _, t := range i.funcs[name] {
			b.WriteByte(' ')
			b.WriteString(t.Source())
		}
		b.WriteString(" ;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
