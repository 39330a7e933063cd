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

import (
	"sort"
	"strconv"
)

// Opcode identifies a built-in primitive.
type Opcode uint8

// Drawing VM opcodes.
const (
	OpNop Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpShr
	OpDup
	OpDrop
	OpSwap
	OpOver
	OpGoXY
	OpAddXY
	OpMark
	OpGoMark
	OpStroke
	OpFill
	OpTxtC
	OpTxtL
	OpRect
	OpImage
	OpTrace
	opCount
)

var opcodes = [...]string{
	OpNop:    "nop",
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpShr:    "shr",
	OpDup:    "dup",
	OpDrop:   "drop",
	OpSwap:   "swap",
	OpOver:   "over",
	OpGoXY:   "goxy",
	OpAddXY:  "+xy",
	OpMark:   "mark",
	OpGoMark: "gomark",
	OpStroke: "stroke",
	OpFill:   "fill",
	OpTxtC:   "txtC",
	OpTxtL:   "txtL",
	OpRect:   "rect",
	OpImage:  "image",
	OpTrace:  "trace",
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for i, v := range opcodes {
		opcodeIndex[v] = Opcode(i)
	}
}

func (op Opcode) String() string {
	if op < opCount {
		return opcodes[op]
	}
	return "Opcode(" + strconv.Itoa(int(op)) + ")"
}

// LookupOpcode returns the opcode with the given name. Names are case
// sensitive.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Opcodes returns the sorted list of opcode names. These names are reserved
// and cannot be used as function names.
func Opcodes() []string {
	names := make([]string, 0, len(opcodes))
	for _, n := range opcodes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
