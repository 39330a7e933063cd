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

// Package rom manages ROM pages: the program text painting the screen of the
// simulated device.
//
// A ROM is made of library pages, which only define functions, and a paint
// page which calls them to draw a frame. Library pages define "slots":
// functions returning the variable parts of a frame, such as the title of the
// status bar or the active keyboard layout. Event code redefining slots is
// spliced between the library and the paint page to repaint the frame with
// new values:
//
//	r, _ := rom.Open(rom.DefaultManifest())
//	code := r.Repaint(rom.SetSlot("wTitle", "Settings"), ": kbd kAzerty ;")
//	err := vm.Run(code, sink)
//
// The pages and settings of a ROM are listed in a TOML manifest:
//
//	[rom]
//	dir = "pages"
//	library = ["sprites.bk", "widgets.bk", "views.bk"]
//	paint = "paint.bk"
//
//	[run]
//	trace = 0
//	max_depth = 30
//	step_limit = 0
//
//	[triggers]
//	a = ": kbd kAzerty ;"
package rom
