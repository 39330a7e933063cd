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
	"fmt"

	"github.com/samblenny/ui-sim/vm"
)

// printer is a vm.Sink that prints the commands it receives.
type printer struct{}

func (printer) DrawRect(x, y, w, h, stroke, fill int) {
	fmt.Printf("rect %d,%d %dx%d s%d f%d\n", x, y, w, h, stroke, fill)
}

func (printer) DrawText(x, y int, text string, align vm.Align, color int) {
	fmt.Printf("text %d,%d %s f%d %q\n", x, y, align, color, text)
}

func (printer) DrawBitmap(x, y int, bits string, w, h int) {
	fmt.Printf("image %d,%d %dx%d %s\n", x, y, w, h, bits)
}

func ExampleRun() {
	code := `
# status bar with a title and a battery sprite
: bar 0 0 goxy 2 fill 336 24 rect ;
: title 168 18 goxy 2 stroke (Home) txtC ;
: sprBat < 0110
           1111 > 4 2 image ;
bar title
300 4 goxy sprBat
`
	err := vm.Run(code, printer{})
	fmt.Println(err)

	// Output:
	// rect 0,0 335x23 s1 f2
	// text 168,18 center f2 "Home"
	// image 300,4 4x2 01101111
	// <nil>
}

// Errors stop the program before the next top-level word, but the function
// that raised it runs to its end.
func ExampleInstance_Run_error() {
	i, err := vm.New(": f drop 1 ; f 2")
	if err != nil {
		panic(err)
	}
	err = i.Run()
	fmt.Println(err)
	fmt.Println(i.Data())

	// Output:
	// drop: underflow
	// [Integer(1)]
}
