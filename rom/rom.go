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

package rom

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"github.com/samblenny/ui-sim/vm"
)

// Page is a named chunk of program text.
type Page struct {
	Name string
	Code string
}

// ROM is a set of pages: a library defining functions and slots, and a paint
// page drawing a frame with them.
type ROM struct {
	Library []Page
	Paint   Page
}

func readPage(fsys fs.FS, name string) (Page, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Page{}, errors.Wrap(err, "read page")
	}
	return Page{Name: name, Code: string(b)}, nil
}

// Open loads the pages listed in m.
func Open(m *Manifest) (*ROM, error) {
	r := new(ROM)
	for _, name := range m.ROM.Library {
		p, err := readPage(m.fsys, name)
		if err != nil {
			return nil, err
		}
		r.Library = append(r.Library, p)
	}
	p, err := readPage(m.fsys, m.ROM.Paint)
	if err != nil {
		return nil, err
	}
	r.Paint = p
	return r, nil
}

// Page returns the named page.
func (r *ROM) Page(name string) (Page, bool) {
	if r.Paint.Name == name {
		return r.Paint, true
	}
	for _, p := range r.Library {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// SetPage replaces the code of the named page. It returns false if there is
// no such page.
func (r *ROM) SetPage(name, code string) bool {
	if r.Paint.Name == name {
		r.Paint.Code = code
		return true
	}
	for n := range r.Library {
		if r.Library[n].Name == name {
			r.Library[n].Code = code
			return true
		}
	}
	return false
}

func (r *ROM) library() []string {
	code := make([]string, 0, len(r.Library)+2)
	for _, p := range r.Library {
		code = append(code, p.Code)
	}
	return code
}

// Boot returns the program painting a frame with the default slot values:
// the library pages followed by the paint page.
func (r *ROM) Boot() string {
	return strings.Join(append(r.library(), r.Paint.Code), "\n")
}

// Repaint returns the program painting a frame after event code has been
// spliced between the library and the paint page, so that it can redefine
// slots before the frame is drawn.
func (r *ROM) Repaint(event ...string) string {
	code := append(r.library(), event...)
	return strings.Join(append(code, r.Paint.Code), "\n")
}

// SetSlot returns event code redefining the slot name as a function pushing
// text.
func SetSlot(name, text string) string {
	return ": " + name + " " + vm.QuoteString(text) + " ;"
}
