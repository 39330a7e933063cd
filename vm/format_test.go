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

package vm_test

import (
	"bytes"
	"testing"

	"github.com/samblenny/ui-sim/vm"
)

func TestQuoteString(t *testing.T) {
	for _, s := range []string{"", "abc", "a)b", `a\b`, `\)`, "x (y) z", "ünï\n"} {
		i, _, _ := setup(vm.QuoteString(s))
		check(t, "QuoteString "+s, i, C{S(s)})
	}
}

func TestFormatBitmap(t *testing.T) {
	for _, test := range []struct {
		bits string
		w    int
		src  string
	}{
		{"101", 0, "<101>"},
		{"101", 3, "<101>"},
		{"10101", 2, "<10101>"},
		{"110011", 2, "< 11\n  00\n  11 >"},
	} {
		src := vm.FormatBitmap(test.bits, test.w)
		if src != test.src {
			t.Errorf("FormatBitmap(%q, %d): expected %q, got %q", test.bits, test.w, test.src, src)
		}
		i, _, _ := setup(src)
		check(t, "FormatBitmap "+test.bits, i, C{B(test.bits)})
	}
}

func TestWriteSource(t *testing.T) {
	code := `: b (a\)b) <0110> -3 ;
		: a b dup + nop undefined ;
		# comment
		: c ;`
	i, _, _ := setup(code)
	check(t, "WriteSource", i, nil)
	var buf bytes.Buffer
	if err := i.WriteSource(&buf); err != nil {
		t.Fatal(err)
	}
	expected := ": a b dup + nop undefined ;\n: b (a\\)b) <0110> -3 ;\n: c ;\n"
	if buf.String() != expected {
		t.Errorf("WriteSource: expected %q, got %q", expected, buf.String())
	}

	j, _, _ := setup(buf.String())
	check(t, "WriteSource reload", j, nil)
	for _, name := range i.Funcs() {
		b1, _ := i.Func(name)
		b2, ok := j.Func(name)
		if !ok || len(b1) != len(b2) {
			t.Errorf("%s: reload mismatch %v != %v", name, b1, b2)
			continue
		}
		for n := range b1 {
			if b1[n] != b2[n] {
				t.Errorf("%s: token %d: %v != %v", name, n, b1[n], b2[n])
			}
		}
	}
}

func TestTokenString(t *testing.T) {
	for _, test := range []struct {
		tok vm.Token
		s   string
	}{
		{S("a"), `String("a")`},
		{B("01"), "Bitmap(01)"},
		{I(-2), "Integer(-2)"},
		{vm.Op(vm.OpAddXY), "Opcode(+xy)"},
		{vm.Sym("foo"), "Symbol(foo)"},
		{vm.Token{Kind: vm.UNDERFLOW}, "Underflow"},
		{vm.Token{}, "Invalid"},
	} {
		if s := test.tok.String(); s != test.s {
			t.Errorf("expected %s, got %s", test.s, s)
		}
	}
}
