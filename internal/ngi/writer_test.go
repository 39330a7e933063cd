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

package ngi_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/samblenny/ui-sim/internal/ngi"
)

type shortWriter struct{ n int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("no space left")
	}
	w.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b strings.Builder
	w := ngi.NewErrWriter(&b)
	if ngi.NewErrWriter(w) != w {
		t.Error("NewErrWriter did not return its *ErrWriter argument")
	}
	w.WriteString("x=")
	w.WriteInt(-42)
	if w.Err != nil || b.String() != "x=-42" {
		t.Errorf("got %q, %v", b.String(), w.Err)
	}

	w = ngi.NewErrWriter(&shortWriter{1})
	w.WriteString("a")
	w.WriteString("b")
	if _, err := w.WriteString("c"); err == nil || err != w.Err {
		t.Errorf("expected sticky error, got %v / %v", err, w.Err)
	}
	if !strings.Contains(w.Err.Error(), "no space left") {
		t.Errorf("unexpected error %v", w.Err)
	}
}
