// Copyright 2025 walteh LLC
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

package operation

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📝 LineDiff renders the changed lines between before and after. Each change
// run starts with an "@@ -N @@" header naming its first line in before.
func LineDiff(before, after string) string {
	a, b, lines := linesToRunes(before, after)
	diffs := diffmatchpatch.New().DiffMainRunes(a, b, false)

	var sb strings.Builder
	line := 1
	inHunk := false
	for _, d := range diffs {
		chunk := runesToLines([]rune(d.Text), lines)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += len(chunk)
			inHunk = false
			continue
		case diffmatchpatch.DiffDelete:
			if !inHunk {
				fmt.Fprintf(&sb, "%s\n", color.CyanString("@@ -%d @@", line))
				inHunk = true
			}
			for _, l := range chunk {
				fmt.Fprintf(&sb, "%s\n", color.RedString("- %s", l))
			}
			line += len(chunk)
		case diffmatchpatch.DiffInsert:
			if !inHunk {
				fmt.Fprintf(&sb, "%s\n", color.CyanString("@@ -%d @@", line))
				inHunk = true
			}
			for _, l := range chunk {
				fmt.Fprintf(&sb, "%s\n", color.GreenString("+ %s", l))
			}
		}
	}
	return sb.String()
}

// linesToRunes encodes every distinct line as a single rune so the diff works
// line by line. diffmatchpatch.DiffLinesToRunes encodes indices as decimal
// text, which splits indices of ten and above across several runes.
func linesToRunes(before, after string) ([]rune, []rune, []string) {
	var lines []string
	index := make(map[string]rune)

	encode := func(text string) []rune {
		var out []rune
		for _, l := range splitLines(text) {
			r, ok := index[l]
			if !ok {
				r = lineRune(len(lines))
				index[l] = r
				lines = append(lines, l)
			}
			out = append(out, r)
		}
		return out
	}

	return encode(before), encode(after), lines
}

// lineRune maps a line index to a valid rune, skipping NUL and the surrogate range.
func lineRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func runeLine(r rune) int {
	if r >= 0xE000 {
		r -= 0x800
	}
	return int(r) - 1
}

func runesToLines(runes []rune, lines []string) []string {
	out := make([]string, 0, len(runes))
	for _, r := range runes {
		out = append(out, lines[runeLine(r)])
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
