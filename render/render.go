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

// Package render provides vm.Sink implementations and encodings for the
// display lists they produce.
//
// A display list is the ordered list of drawing commands emitted by one run
// of a program. Order matters: later commands paint over earlier ones.
package render

import "github.com/samblenny/ui-sim/vm"

// Op is the kind of a drawing command.
type Op uint8

// Drawing commands.
const (
	Rect Op = iota + 1
	Text
	Bitmap
)

var opNames = [...]string{
	Rect:   "rect",
	Text:   "text",
	Bitmap: "image",
}

func (op Op) String() string {
	if op > 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

// Command is a single drawing command. Fields not used by Op are left zero:
//
//	Rect	X, Y, W, H, Stroke, Fill
//	Text	X, Y, Text, Align, Color
//	Bitmap	X, Y, W, H, Bits
type Command struct {
	Op     Op       `cbor:"1,keyasint"`
	X      int      `cbor:"2,keyasint"`
	Y      int      `cbor:"3,keyasint"`
	W      int      `cbor:"4,keyasint,omitempty"`
	H      int      `cbor:"5,keyasint,omitempty"`
	Stroke int      `cbor:"6,keyasint,omitempty"`
	Fill   int      `cbor:"7,keyasint,omitempty"`
	Color  int      `cbor:"8,keyasint,omitempty"`
	Align  vm.Align `cbor:"9,keyasint,omitempty"`
	Text   string   `cbor:"10,keyasint,omitempty"`
	Bits   string   `cbor:"11,keyasint,omitempty"`
}

// Recorder is a vm.Sink that records commands in a display list.
type Recorder struct {
	Commands []Command
}

// DrawRect implements vm.Sink.
func (r *Recorder) DrawRect(x, y, w, h, stroke, fill int) {
	r.Commands = append(r.Commands, Command{Op: Rect, X: x, Y: y, W: w, H: h, Stroke: stroke, Fill: fill})
}

// DrawText implements vm.Sink.
func (r *Recorder) DrawText(x, y int, text string, align vm.Align, color int) {
	r.Commands = append(r.Commands, Command{Op: Text, X: x, Y: y, Text: text, Align: align, Color: color})
}

// DrawBitmap implements vm.Sink.
func (r *Recorder) DrawBitmap(x, y int, bits string, w, h int) {
	r.Commands = append(r.Commands, Command{Op: Bitmap, X: x, Y: y, W: w, H: h, Bits: bits})
}

// Reset clears the display list.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay sends the commands to s, in order.
func Replay(cmds []Command, s vm.Sink) {
	for _, c := range cmds {
		switch c.Op {
		case Rect:
			s.DrawRect(c.X, c.Y, c.W, c.H, c.Stroke, c.Fill)
		case Text:
			s.DrawText(c.X, c.Y, c.Text, c.Align, c.Color)
		case Bitmap:
			s.DrawBitmap(c.X, c.Y, c.Bits, c.W, c.H)
		}
	}
}

type multi []vm.Sink

func (m multi) DrawRect(x, y, w, h, stroke, fill int) {
	for _, s := range m {
		s.DrawRect(x, y, w, h, stroke, fill)
	}
}

func (m multi) DrawText(x, y int, text string, align vm.Align, color int) {
	for _, s := range m {
		s.DrawText(x, y, text, align, color)
	}
}

func (m multi) DrawBitmap(x, y int, bits string, w, h int) {
	for _, s := range m {
		s.DrawBitmap(x, y, bits, w, h)
	}
}

// Multi returns a Sink that duplicates its commands to all the provided
// sinks, in order.
func Multi(sinks ...vm.Sink) vm.Sink {
	return multi(append([]vm.Sink(nil), sinks...))
}
