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

package render

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// display lists are encoded in canonical mode so that identical runs produce
// identical bytes.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.Wrap(err, "render: CBOR enc mode"))
	}
	encMode = em
}

// Marshal returns the CBOR encoding of a display list.
func Marshal(cmds []Command) ([]byte, error) {
	if cmds == nil {
		cmds = []Command{}
	}
	return encMode.Marshal(cmds)
}

// Unmarshal decodes a display list encoded with Marshal.
func Unmarshal(data []byte) ([]Command, error) {
	var cmds []Command
	if err := cbor.Unmarshal(data, &cmds); err != nil {
		return nil, errors.Wrap(err, "render: unmarshal display list")
	}
	return cmds, nil
}

// Encode writes the CBOR encoding of a display list to w.
func Encode(w io.Writer, cmds []Command) error {
	b, err := Marshal(cmds)
	if err != nil {
		return errors.Wrap(err, "render: marshal display list")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "render: write display list")
}

// Decode reads a display list written by Encode.
func Decode(r io.Reader) ([]Command, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "render: read display list")
	}
	return Unmarshal(b)
}
