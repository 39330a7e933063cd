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

package render_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/samblenny/ui-sim/render"
	"github.com/samblenny/ui-sim/vm"
)

const frame = `
	1 stroke 2 fill 10 20 goxy 8 4 rect
	(Home) 5 0 +xy txtC
	0 fill 3 stroke (a\)b) txtL
	<0110 1111> 4 2 image
`

var frameCmds = []render.Command{
	{Op: render.Rect, X: 10, Y: 20, W: 7, H: 3, Stroke: 1, Fill: 2},
	{Op: render.Text, X: 15, Y: 20, Text: "Home", Align: vm.AlignCenter, Color: 1},
	{Op: render.Text, X: 15, Y: 20, Text: "a)b", Align: vm.AlignLeft, Color: 3},
	{Op: render.Bitmap, X: 15, Y: 20, W: 4, H: 2, Bits: "01101111"},
}

func record(t *testing.T, code string) []render.Command {
	rec := new(render.Recorder)
	if err := vm.Run(code, rec); err != nil {
		t.Fatalf("%+v", err)
	}
	return rec.Commands
}

func TestRecorder(t *testing.T) {
	cmds := record(t, frame)
	if !reflect.DeepEqual(cmds, frameCmds) {
		t.Fatalf("expected\n%v\ngot\n%v", frameCmds, cmds)
	}
	rec := &render.Recorder{Commands: cmds}
	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Errorf("Reset: %d commands left", len(rec.Commands))
	}
}

func TestReplayMulti(t *testing.T) {
	var a, b render.Recorder
	render.Replay(frameCmds, render.Multi(&a, &b, vm.Discard))
	if !reflect.DeepEqual(a.Commands, frameCmds) || !reflect.DeepEqual(b.Commands, frameCmds) {
		t.Errorf("expected\n%v\ngot\n%v\n%v", frameCmds, a.Commands, b.Commands)
	}
}

func TestOpString(t *testing.T) {
	for op, s := range map[render.Op]string{0: "???", render.Rect: "rect", render.Text: "text", render.Bitmap: "image", 42: "???"} {
		if op.String() != s {
			t.Errorf("%d: expected %q, got %q", op, s, op.String())
		}
	}
}

func TestWire(t *testing.T) {
	b, err := render.Marshal(frameCmds)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := render.Marshal(record(t, frame))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, b2) {
		t.Error("encoding of identical display lists differs")
	}
	cmds, err := render.Unmarshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cmds, frameCmds) {
		t.Errorf("expected\n%v\ngot\n%v", frameCmds, cmds)
	}

	var buf bytes.Buffer
	if err = render.Encode(&buf, frameCmds); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), b) {
		t.Error("Encode and Marshal output differ")
	}
	if cmds, err = render.Decode(&buf); err != nil || !reflect.DeepEqual(cmds, frameCmds) {
		t.Errorf("Decode: %v %v", cmds, err)
	}

	if b, err = render.Marshal(nil); err != nil || !bytes.Equal(b, []byte{0x80}) {
		t.Errorf("Marshal(nil): %x %v", b, err)
	}
	if _, err = render.Unmarshal([]byte{0xff}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestList(t *testing.T) {
	var b strings.Builder
	if err := render.List(&b, frameCmds); err != nil {
		t.Fatal(err)
	}
	exp := "     0\trect\t10 20\t7x3\ts1 f2\n" +
		"     1\ttext\t15 20\tcenter\tf1\t(Home)\n" +
		"     2\ttext\t15 20\tleft\tf3\t(a\\)b)\n" +
		"     3\timage\t15 20\t4x2\t01101111\n"
	if b.String() != exp {
		t.Errorf("expected\n%s\ngot\n%s", exp, b.String())
	}
}

type failWriter int

func (w *failWriter) Write(p []byte) (int, error) {
	if *w == 0 {
		return 0, errors.New("disk full")
	}
	*w--
	return len(p), nil
}

func TestListError(t *testing.T) {
	w := failWriter(3)
	err := render.List(&w, frameCmds)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error, got %v", err)
	}
	w = 0
	if err = render.Encode(&w, frameCmds); err == nil {
		t.Error("expected Encode error")
	}
}
