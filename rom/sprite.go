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
	"regexp"
	"strconv"
	"strings"

	"github.com/samblenny/ui-sim/vm"
)

// FormatSprite returns the source of a w by h sprite: a bitmap literal with
// one row per line followed by its dimensions, ready to be passed to image.
func FormatSprite(bits string, w, h int) string {
	return vm.FormatBitmap(bits, w) + "\n" + strconv.Itoa(w) + " " + strconv.Itoa(h)
}

var spriteRe = regexp.MustCompile(`<([01]*)>`)

var layout = strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "")

// MatchSprite extracts the bits of a w by h sprite from text. Whitespace is
// ignored, as is any text outside the first bitmap literal of the right size.
func MatchSprite(text string, w, h int) (string, bool) {
	for _, m := range spriteRe.FindAllStringSubmatch(layout.Replace(text), -1) {
		if len(m[1]) == w*h {
			return m[1], true
		}
	}
	return "", false
}
