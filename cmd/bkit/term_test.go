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
	"testing"

	"golang.org/x/sys/unix"
)

func TestKeyMode(t *testing.T) {
	cooked := unix.Termios{Iflag: unix.IXON | unix.BRKINT, Lflag: unix.ICANON | unix.ECHO | unix.ISIG}
	raw := keyMode(cooked)
	if raw.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG) != 0 {
		t.Errorf("line mode left on: lflag %#x", raw.Lflag)
	}
	if raw.Iflag&(unix.IXON|unix.BRKINT) != 0 || raw.Iflag&unix.IGNBRK == 0 {
		t.Errorf("bad iflag %#x", raw.Iflag)
	}
	if raw.Cc[unix.VMIN] != 1 || raw.Cc[unix.VTIME] != 0 {
		t.Errorf("bad VMIN/VTIME %d/%d", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
	if cooked.Lflag&unix.ICANON == 0 {
		t.Error("saved settings modified")
	}
}
