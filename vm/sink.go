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

// Align is the horizontal alignment of a text command.
type Align uint8

// Text alignments.
const (
	AlignCenter Align = iota
	AlignLeft
)

func (a Align) String() string {
	if a == AlignLeft {
		return "left"
	}
	return "center"
}

// Sink is the drawing surface commands are emitted to. Coordinates are
// integer pixels with the origin at the top-left corner, x growing to the
// right and y growing down. Commands arrive in execution order and later
// commands paint over earlier ones.
//
// Style values for stroke, fill and color are passed through unvalidated: 0
// means none, 1 and 2 are the two colour classes of the surface. A sink should
// ignore values it does not know.
type Sink interface {
	// DrawRect draws a w by h rectangle anchored at x, y. The rect opcode
	// passes its width and height minus one; surfaces that stroke along pixel
	// centres are expected to offset the rectangle by half a pixel.
	DrawRect(x, y, w, h, stroke, fill int)
	// DrawText draws text anchored at x, y in the given color.
	DrawText(x, y int, text string, align Align, color int)
	// DrawBitmap draws a w by h block at x, y where each '1' of bits, in
	// row-major order, is a filled unit cell. It uses a fixed style.
	DrawBitmap(x, y int, bits string, w, h int)
}

type discard struct{}

func (discard) DrawRect(x, y, w, h, stroke, fill int)                {}
func (discard) DrawText(x, y int, text string, align Align, color int) {}
func (discard) DrawBitmap(x, y int, bits string, w, h int)           {}

// Discard is a Sink that drops all commands.
var Discard Sink = discard{}
