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

import "strconv"

func operands(s, t Token) string {
	return "S=" + s.String() + " T=" + t.String()
}

// pop2 pops T then S and checks that both are integers. On failure it records
// an operand type error for op; the operands stay dropped.
func (i *Instance) pop2(op Opcode) (s, t int, ok bool) {
	tt, st := i.Pop(), i.Pop()
	if tt.Kind != INTEGER || st.Kind != INTEGER {
		i.runtimeError(ErrOperandType, op.String(), operands(st, tt))
		return 0, 0, false
	}
	return st.Int, tt.Int, true
}

// pop1 pops T and checks its kind.
func (i *Instance) pop1(op Opcode, k Kind) (Token, bool) {
	t := i.Pop()
	if t.Kind != k {
		i.runtimeError(ErrOperandType, op.String(), "T="+t.String())
		return t, false
	}
	return t, true
}

// exec executes a single opcode. Opcodes pop their own operands; on error
// they record it and return without further effect.
func (i *Instance) exec(op Opcode) {
	switch op {
	case OpNop:
	case OpAdd:
		if s, t, ok := i.pop2(op); ok {
			i.Push(Int(s + t))
		}
	case OpSub:
		if s, t, ok := i.pop2(op); ok {
			i.Push(Int(s - t))
		}
	case OpMul:
		if s, t, ok := i.pop2(op); ok {
			i.Push(Int(s * t))
		}
	case OpShr:
		if t, ok := i.pop1(op, INTEGER); ok {
			i.Push(Int(t.Int >> 1))
		}
	case OpDup:
		t := i.Pop()
		if t.Kind == UNDERFLOW {
			i.runtimeError(ErrUnderflow, op.String(), "")
			return
		}
		i.Push(t)
		i.Push(t)
	case OpDrop:
		if i.Pop().Kind == UNDERFLOW {
			i.runtimeError(ErrUnderflow, op.String(), "")
		}
	case OpSwap, OpOver:
		t, s := i.Pop(), i.Pop()
		if t.Kind == UNDERFLOW || s.Kind == UNDERFLOW {
			i.runtimeError(ErrUnderflow, op.String(), operands(s, t))
			return
		}
		if op == OpOver {
			i.Push(s)
		}
		i.Push(t)
		i.Push(s)
	case OpGoXY:
		if s, t, ok := i.pop2(op); ok {
			i.X, i.Y = s, t
		}
	case OpAddXY:
		if s, t, ok := i.pop2(op); ok {
			i.X += s
			i.Y += t
		}
	case OpMark:
		i.MarkX, i.MarkY = i.X, i.Y
	case OpGoMark:
		i.X, i.Y = i.MarkX, i.MarkY
	case OpStroke:
		if t, ok := i.pop1(op, INTEGER); ok {
			i.Stroke = t.Int
		}
	case OpFill:
		if t, ok := i.pop1(op, INTEGER); ok {
			i.Fill = t.Int
		}
	case OpTxtC, OpTxtL:
		t, ok := i.pop1(op, STRING)
		if !ok {
			return
		}
		align := AlignCenter
		if op == OpTxtL {
			align = AlignLeft
		}
		i.traceInfo("%s: %q %s f%d", op, t.Text, align, i.Stroke)
		i.sink.DrawText(i.X, i.Y, t.Text, align, i.Stroke)
	case OpRect:
		w, h, ok := i.pop2(op)
		if !ok {
			return
		}
		i.traceInfo("rect: %dx%d s%d f%d", w, h, i.Stroke, i.Fill)
		i.sink.DrawRect(i.X, i.Y, w-1, h-1, i.Stroke, i.Fill)
	case OpImage:
		ht, wt, bits := i.Pop(), i.Pop(), i.Pop()
		if ht.Kind != INTEGER || wt.Kind != INTEGER || bits.Kind != BITMAP {
			i.runtimeError(ErrOperandType, op.String(), bits.String()+" wide="+wt.String()+" high="+ht.String())
			return
		}
		w, h := wt.Int, ht.Int
		size := w * h
		if w != 0 && size/w != h || h != 0 && size/h != w {
			i.runtimeError(ErrBitmapSize, op.String(),
				"len(pixels)="+strconv.Itoa(len(bits.Text))+" w*h overflows: w="+strconv.Itoa(w)+" h="+strconv.Itoa(h))
			return
		}
		if len(bits.Text) != size {
			i.runtimeError(ErrBitmapSize, op.String(),
				"len(pixels)="+strconv.Itoa(len(bits.Text))+" w*h="+strconv.Itoa(size))
			return
		}
		i.traceInfo("image: %dx%d", wt.Int, ht.Int)
		i.sink.DrawBitmap(i.X, i.Y, bits.Text, wt.Int, ht.Int)
	case OpTrace:
		if t, ok := i.pop1(op, INTEGER); ok {
			i.TraceLevel = t.Int
		}
	default:
		i.warn("unknown opcode %v", op)
	}
}
