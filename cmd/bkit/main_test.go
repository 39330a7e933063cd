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

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/samblenny/ui-sim/rom"
	"github.com/samblenny/ui-sim/vm"
)

func TestRunFrame(t *testing.T) {
	m, r, err := loadROM("")
	if err != nil {
		t.Fatal(err)
	}
	i, cmds, err := runFrame(m, r.Repaint(": wTitle (Test) ;"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if i.Depth() != 0 || len(cmds) != 50 {
		t.Errorf("depth %d, %d commands", i.Depth(), len(cmds))
	}
	var b bytes.Buffer
	if err = writeList(&b, cmds[:2]); err != nil {
		t.Fatal(err)
	}
	exp := "     0\trect\t0 0\t335x23\ts1 f1\n     1\ttext\t168 17\tcenter\tf2\t(Test)\n"
	if b.String() != exp {
		t.Errorf("expected\n%q\ngot\n%q", exp, b.String())
	}
}

func TestDump(t *testing.T) {
	i, err := vm.New(": f (a\\)) 2 ; f 3 <01> 10 20 goxy")
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err = dumpVM(i, &b); err != nil {
		t.Fatal(err)
	}
	exp := "# (x:10,y:20) mark 0 0 stroke 1 fill 0 trace 0 steps 8\n" +
		": f (a\\)) 2 ;\n" +
		"# stack 4\n" +
		"(a\\)) 2 3 <01>\n"
	if b.String() != exp {
		t.Errorf("expected\n%s\ngot\n%s", exp, b.String())
	}

	// the dump reads back into the same functions and stack
	j, err := vm.New(b.String())
	if err != nil {
		t.Fatal(err)
	}
	if err = j.Run(); err != nil {
		t.Fatal(err)
	}
	if len(j.Data()) != 4 || j.Data()[0].Text != "a)" || len(j.Funcs()) != 1 {
		t.Errorf("bad read back: %v %v", j.Data(), j.Funcs())
	}
}

func TestInteract(t *testing.T) {
	noRawIO = true
	m := rom.DefaultManifest()
	r, err := rom.Open(m)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	out := bufio.NewWriter(&b)
	// x is not bound, the Esc key quits before h is read.
	if err = interact(m, r, nil, strings.NewReader("axs\x1bh"), out); err != nil {
		t.Fatal(err)
	}
	frames := strings.Split(b.String(), vtClear)
	if len(frames) != 4 {
		t.Fatalf("expected 3 frames, got %d", len(frames)-1)
	}
	for n, test := range []struct{ key, title string }{
		{"(q)", "(Home)"},
		{"(a)", "(Home)"},
		{"(a)", "(Settings)"},
	} {
		f := frames[n+1]
		if !strings.Contains(f, "text\t24 373\tcenter\tf1\t"+test.key+"\n") {
			t.Errorf("frame %d: missing key label %s", n, test.key)
		}
		if !strings.Contains(f, "text\t168 17\tcenter\tf2\t"+test.title+"\n") {
			t.Errorf("frame %d: missing title %s", n, test.title)
		}
	}
}
