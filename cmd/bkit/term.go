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

//go:build !windows

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// keyMode reads stdin one key at a time: no line editing, no echo, and
// Ctrl-C or Ctrl-Z are delivered as bytes so that interact can handle them.
// Output processing is left alone so that listings keep their line breaks.
func keyMode(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ISTRIP | unix.IXON | unix.IXOFF
	t.Iflag |= unix.IGNBRK | unix.IGNPAR
	t.Lflag &^= unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHO
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// setRawIO puts stdin in key mode and returns a function restoring the saved
// settings.
func setRawIO() (func(), error) {
	var saved unix.Termios
	if err := termios.Tcgetattr(0, &saved); err != nil {
		return nil, errors.Wrap(err, "raw IO: get stdin attributes")
	}
	restore := func() { termios.Tcsetattr(0, termios.TCSANOW, &saved) }
	raw := keyMode(saved)
	if err := termios.Tcsetattr(0, termios.TCSANOW, &raw); err != nil {
		restore()
		return nil, errors.Wrap(err, "raw IO: set stdin attributes")
	}
	return restore, nil
}

func consoleRows(f *os.File) func() int {
	return func() int {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			return 0
		}
		return int(ws.Row)
	}
}
