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

// The bkit command runs a ROM on the bkit drawing VM and writes the display
// list of the resulting frame.
//
// Without -config, the built-in demo ROM is used: a status bar, a
// notification and an on-screen keyboard.
//
// Usage:
//
//	-config filename
//		  load ROM manifest from filename (default built-in demo)
//	-debug
//		  enable debug diagnostics
//	-dump
//		  dump stack, registers and functions to stderr upon exit
//	-e code
//		  event code to run before the paint page
//	-format format
//		  display list output format: list or cbor (default list)
//	-i
//		  interactive mode: repaint on manifest trigger keys
//	-noraw
//		  disable raw terminal IO in interactive mode
//	-o filename
//		  write display list to filename instead of stdout
//	-trace level
//		  trace level 0-3 (default from manifest) (default -1)
//	-with filename
//		  Add filename to the event code (can be specified multiple times)
//
// -with, -e: event code is run after the ROM library pages and before its
// paint page. It usually redefines slots, functions returning the variable
// parts of a frame:
//
//	bkit -e ': wTitle (Settings) ; : kbd kAzerty ;'
//
// Files given with -with are added in order of appearance on the command
// line, followed by the -e code.
//
// -format: the list format prints one command per line, prefixed by its index.
// The cbor format writes the display list as a CBOR array of maps with integer
// keys, in canonical encoding.
//
// -dump: after the run, the VM registers, function definitions and data
// stack are written to stderr as program text.
//
// -i: the frame is repainted each time a key bound in the [triggers] table of
// the manifest is pressed. Events accumulate: a later event overrides slots
// redefined by an earlier one. Upon startup, bkit switches the terminal to raw
// mode so that keys are read without waiting for Enter, unless -noraw is
// given or raw mode is not available. Esc and Ctrl-D quit.
//
// -debug: errors are printed with a full stack trace, along with the VM
// registers and stack.
package main
