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
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/samblenny/ui-sim/vm"
)

//go:embed demo
var demoFS embed.FS

// Manifest is the TOML description of a ROM: which pages make up the library,
// which page paints a frame, VM settings and interactive triggers.
type Manifest struct {
	ROM      Config            `toml:"rom"`
	Run      RunConfig         `toml:"run"`
	Triggers map[string]string `toml:"triggers"`

	fsys fs.FS
}

// Config lists the ROM pages. Page file names are relative to Dir, which is
// itself relative to the manifest.
type Config struct {
	Dir     string   `toml:"dir"`
	Library []string `toml:"library"`
	Paint   string   `toml:"paint"`
}

// RunConfig holds the VM settings used to run the ROM.
type RunConfig struct {
	Trace     int   `toml:"trace"`
	MaxDepth  int   `toml:"max_depth"`
	StepLimit int64 `toml:"step_limit"`
}

// ParseManifest parses a manifest. Page files will be looked up in fsys.
func ParseManifest(data string, fsys fs.FS) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(data, &m)
	if err != nil {
		return nil, errors.Wrap(err, "manifest")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("manifest: unknown key %s", keys[0])
	}
	if m.ROM.Paint == "" {
		return nil, errors.New("manifest: missing rom.paint")
	}
	for k := range m.Triggers {
		if len(k) != 1 {
			return nil, errors.Errorf("manifest: trigger %q: keys must be a single character", k)
		}
	}
	if m.ROM.Dir != "" {
		if fsys, err = fs.Sub(fsys, m.ROM.Dir); err != nil {
			return nil, errors.Wrapf(err, "manifest: rom.dir %s", m.ROM.Dir)
		}
	}
	m.fsys = fsys
	return &m, nil
}

// LoadManifest reads the manifest file at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "LoadManifest")
	}
	m, err := ParseManifest(string(data), os.DirFS(filepath.Dir(path)))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

// DefaultManifest returns the manifest of the built-in demo ROM.
func DefaultManifest() *Manifest {
	fsys, err := fs.Sub(demoFS, "demo")
	if err != nil {
		panic(err)
	}
	data, err := fs.ReadFile(fsys, "demo.toml")
	if err != nil {
		panic(err)
	}
	m, err := ParseManifest(string(data), fsys)
	if err != nil {
		panic(err)
	}
	return m
}

// Options returns the VM options matching the run settings.
func (m *Manifest) Options() []vm.Option {
	opts := []vm.Option{vm.Trace(m.Run.Trace)}
	if m.Run.MaxDepth > 0 {
		opts = append(opts, vm.MaxDepth(m.Run.MaxDepth))
	}
	if m.Run.StepLimit > 0 {
		opts = append(opts, vm.StepLimit(m.Run.StepLimit))
	}
	return opts
}

// Keys returns the sorted trigger keys.
func (m *Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Triggers))
	for k := range m.Triggers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
