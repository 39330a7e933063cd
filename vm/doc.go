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

// Package vm implements the bkit drawing language: a small stack-oriented
// language used to describe what to paint on the screen of a simulated
// device.
//
// A program is read once, from left to right. Top-level tokens are evaluated
// as soon as they are read and drawing opcodes send commands to a Sink.
//
// Syntax:
//
//	# comment		up to the end of the line
//	(text)			string. '\' escapes the next character, so \) is a ')'
//	<0110 1001>		bitmap. Only 0 and 1 are significant, whitespace is layout
//	: name body ;		function definition
//	42 -7			integers. 1.5 is an error: there are no floats
//	dup			opcode
//	anything-else		symbol, looked up in the function table when evaluated
//
// Words are separated by whitespace and are case sensitive. Opcode names are
// reserved: ": + 1 ;" is an error. Redefining a function replaces the previous
// definition. Function bodies are not checked when defined; an undefined
// symbol is only a warning when it is evaluated.
//
// Opcodes:
//
//	T is the value on top of the data stack. S is the value below it.
//
//	opcode	stack		description
//	------	-----		------------------------------------------------------
//	+	S T - n		S+T
//	-	S T - n		S-T
//	*	S T - n		S*T
//	shr	T - n		T>>1
//	dup	T - T T
//	drop	T -
//	swap	S T - T S
//	over	S T - S T S
//	goxy	x y -		move the cursor to x, y
//	+xy	dx dy -		move the cursor by dx, dy
//	mark	-		save the cursor
//	gomark	-		restore the saved cursor
//	stroke	n -		set the stroke style (0: none)
//	fill	n -		set the fill style (0: none)
//	txtC	(s) -		draw centered text at the cursor, colored with stroke
//	txtL	(s) -		draw left aligned text at the cursor, colored with stroke
//	rect	w h -		draw a w by h rectangle at the cursor
//	image	<b> w h -	draw a w by h bitmap at the cursor
//	trace	n -		set the trace level (0-3)
//	nop	-		do nothing
//
// Errors:
//
// Malformed literals and definitions, stack underflows and operand type
// mismatches are fatal: the first one is recorded and execution stops before
// the next top-level token. A function body that raised an error still runs
// to its end. Undefined symbols and expansions nested deeper than MaxDepth
// (30 by default) are only logged.
package vm
