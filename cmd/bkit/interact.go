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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/samblenny/ui-sim/render"
	"github.com/samblenny/ui-sim/rom"
)

const (
	keyETX = 3
	keyEOT = 4
	keyEsc = 27

	vtClear = "\x1b[H\x1b[2J"
)

// screen repaints a ROM frame after each trigger key and prints its display
// list.
type screen struct {
	m      *rom.Manifest
	r      *rom.ROM
	events []string
	out    *bufio.Writer
	rows   func() int
}

func (s *screen) paint() error {
	s.out.WriteString(vtClear)
	_, cmds, err := runFrame(s.m, s.r.Repaint(s.events...))
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
	}
	// keep the key help on screen
	if n := s.rows() - 2; n > 0 && len(cmds) > n {
		render.List(s.out, cmds[:n-1])
		fmt.Fprintf(s.out, "... %d more\n", len(cmds)-n+1)
	} else {
		render.List(s.out, cmds)
	}
	fmt.Fprintf(s.out, "keys: %s, Esc or Ctrl-D to quit\n", s.m.Keys())
	return s.out.Flush()
}

// interact runs the trigger loop on in until EOF or a quit key. Each trigger
// key appends the event code bound to it in the manifest, later events
// overriding earlier ones.
func interact(m *rom.Manifest, r *rom.ROM, events []string, in io.Reader, out *bufio.Writer) error {
	s := &screen{m: m, r: r, events: events, out: out, rows: func() int { return 0 }}

	if !noRawIO {
		if tearDown, err := setRawIO(); err == nil {
			defer tearDown()
			s.rows = consoleRows(os.Stdout)
		}
	}

	if err := s.paint(); err != nil {
		return err
	}
	br := bufio.NewReader(in)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch c {
		case keyETX, keyEOT, keyEsc:
			return nil
		}
		code, ok := m.Triggers[string(c)]
		if !ok {
			continue
		}
		s.events = append(s.events, code)
		if err = s.paint(); err != nil {
			return err
		}
	}
}
