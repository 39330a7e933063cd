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
	"fmt"
	"io"

	"github.com/samblenny/ui-sim/internal/ngi"
	"github.com/samblenny/ui-sim/vm"
)

// dumpVM writes the state of i to w as program text: registers as a
// comment, function definitions, then the data stack. Feeding the dump back
// to a fresh instance restores the functions and the stack.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	fmt.Fprintf(ew, "# (x:%d,y:%d) mark %d %d stroke %d fill %d trace %d steps %d\n",
		i.X, i.Y, i.MarkX, i.MarkY, i.Stroke, i.Fill, i.TraceLevel, i.Steps())
	i.WriteSource(ew)
	ew.WriteString("# stack ")
	ew.WriteInt(i.Depth())
	ew.WriteString("\n")
	for n, t := range i.Data() {
		if n > 0 {
			ew.Write([]byte{' '})
		}
		ew.WriteString(t.Source())
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}
