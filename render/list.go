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

package render

import (
	"fmt"
	"io"

	"github.com/samblenny/ui-sim/internal/ngi"
	"github.com/samblenny/ui-sim/vm"
)

// Format writes a one line description of c to w.
func Format(c Command, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	switch c.Op {
	case Rect:
		fmt.Fprintf(ew, "rect\t%d %d\t%dx%d\ts%d f%d", c.X, c.Y, c.W, c.H, c.Stroke, c.Fill)
	case Text:
		fmt.Fprintf(ew, "text\t%d %d\t%s\tf%d\t%s", c.X, c.Y, c.Align, c.Color, vm.QuoteString(c.Text))
	case Bitmap:
		fmt.Fprintf(ew, "image\t%d %d\t%dx%d\t%s", c.X, c.Y, c.W, c.H, c.Bits)
	default:
		fmt.Fprintf(ew, "???\t%d", c.Op)
	}
	return ew.Err
}

// List writes a listing of a display list to w, one command per line,
// prefixed by its index.
func List(w io.Writer, cmds []Command) error {
	ew := ngi.NewErrWriter(w)
	for n, c := range cmds {
		fmt.Fprintf(ew, "% 6d\t", n)
		Format(c, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
