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
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samblenny/ui-sim/render"
	"github.com/samblenny/ui-sim/rom"
	"github.com/samblenny/ui-sim/vm"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type listFormat string

func (lf *listFormat) String() string { return string(*lf) }
func (lf *listFormat) Set(s string) error {
	switch s {
	case "list", "cbor":
		*lf = listFormat(s)
		return nil
	default:
		return errors.Errorf("unsupported output format %q", s)
	}
}
func (lf *listFormat) Get() interface{} { return *lf }

var (
	noRawIO     bool
	debug       bool
	dump        bool
	interactive bool
	traceLevel  int
	outFileName string
	format      = listFormat("list")
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "(x:%d,y:%d) stroke %d fill %d, Stack: %v\n", i.X, i.Y, i.Stroke, i.Fill, i.Data())
	}
	os.Exit(1)
}

func loadROM(config string) (*rom.Manifest, *rom.ROM, error) {
	var m *rom.Manifest
	if config == "" {
		m = rom.DefaultManifest()
	} else {
		var err error
		if m, err = rom.LoadManifest(config); err != nil {
			return nil, nil, err
		}
	}
	r, err := rom.Open(m)
	if err != nil {
		return nil, nil, err
	}
	return m, r, nil
}

// runFrame runs code and returns the resulting display list. The instance is
// returned even on error so that its state can be reported.
func runFrame(m *rom.Manifest, code string) (*vm.Instance, []render.Command, error) {
	rec := new(render.Recorder)
	opts := append(m.Options(), vm.Output(rec))
	if traceLevel >= 0 {
		opts = append(opts, vm.Trace(traceLevel))
	}
	i, err := vm.New(code, opts...)
	if err != nil {
		return nil, nil, err
	}
	err = i.Run()
	return i, rec.Commands, err
}

func writeList(w io.Writer, cmds []render.Command) error {
	if format == "cbor" {
		return render.Encode(w, cmds)
	}
	return render.List(w, cmds)
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush stdout")
		}
		atExit(i, err)
	}()

	var withFiles fileList
	var config = flag.String("config", "", "load ROM manifest from `filename` (default built-in demo)")
	var expr = flag.String("e", "", "event `code` to run before the paint page")
	flag.Var(&withFiles, "with", "Add `filename` to the event code (can be specified multiple times)")
	flag.IntVar(&traceLevel, "trace", -1, "trace `level` 0-3 (default from manifest)")
	flag.Var(&format, "format", "display list output `format`: list or cbor")
	flag.StringVar(&outFileName, "o", "", "write display list to `filename` instead of stdout")
	flag.BoolVar(&dump, "dump", false, "dump stack, registers and functions to stderr upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.BoolVar(&interactive, "i", false, "interactive mode: repaint on manifest trigger keys")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in interactive mode")

	flag.Parse()

	m, r, err := loadROM(*config)
	if err != nil {
		return
	}

	// trace lines go to Info and Debug, warnings are always shown.
	verbosity := traceLevel
	if verbosity < 0 {
		verbosity = m.Run.Trace
	}
	if verbosity > 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	var events []string
	for _, name := range withFiles {
		var b []byte
		if b, err = os.ReadFile(name); err != nil {
			err = errors.Wrap(err, "with")
			return
		}
		events = append(events, string(b))
	}
	if *expr != "" {
		events = append(events, *expr)
	}

	if interactive {
		err = interact(m, r, events, os.Stdin, stdout)
		return
	}

	var cmds []render.Command
	i, cmds, err = runFrame(m, r.Repaint(events...))
	if dump && i != nil {
		if e := dumpVM(i, os.Stderr); err == nil {
			err = e
		}
	}
	if err != nil {
		return
	}

	var w io.Writer = stdout
	if outFileName != "" {
		var f *os.File
		if f, err = os.Create(outFileName); err != nil {
			return
		}
		defer func() {
			if e := f.Close(); err == nil && e != nil {
				err = errors.Wrap(e, "close output")
			}
		}()
		w = f
	}
	err = writeList(w, cmds)
}
