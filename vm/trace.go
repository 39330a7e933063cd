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
	"fmt"
	"strconv"

	"github.com/alecthomas/repr"
)

// prefix returns the register and stack summary printed in front of trace
// messages. Above level 2 the whole stack is dumped.
func (i *Instance) prefix() string {
	regs := "(x:" + strconv.Itoa(i.X) + ",y:" + strconv.Itoa(i.Y) + ")"
	if i.TraceLevel >= 3 {
		vals := make([]interface{}, len(i.stack))
		for n, t := range i.stack {
			vals[n] = t.Value()
		}
		return regs + " " + repr.String(vals)
	}
	return regs + "  len(stack)=" + strconv.Itoa(len(i.stack))
}

func (i *Instance) traceInfo(format string, args ...interface{}) {
	if i.TraceLevel >= 1 {
		i.log.Infof("%s  %s", i.prefix(), fmt.Sprintf(format, args...))
	}
}

func (i *Instance) traceDebug(format string, args ...interface{}) {
	if i.TraceLevel >= 2 {
		i.log.Debugf("%s  %s", i.prefix(), fmt.Sprintf(format, args...))
	}
}

func (i *Instance) warn(format string, args ...interface{}) {
	i.log.Warningf(format, args...)
}
