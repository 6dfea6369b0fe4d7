// Copyright 2024 The dtparse Authors.
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

package dtparse

import (
	"time"
	"unicode"
)

// parseState is the per-call scratch state: the input, decoded once to
// runes so position arithmetic is correct for non-ASCII locale text, the
// shared mutable position, and the intermediate record being filled in.
type parseState struct {
	runes []rune
	pos   int
	rec   *record

	nowVal time.Time
}

func newParseState(text string) *parseState {
	return &parseState{runes: []rune(text)}
}

// now memoizes the clock read for this parse call, so the two-digit-year
// window (section 4.3.1) and its resolution-time fixup (section 4.3 step
// 9) are measured against the same instant.
func (s *parseState) now(clock Clock) time.Time {
	if s.nowVal.IsZero() {
		s.nowVal = clock.Now()
	}
	return s.nowVal
}

func (s *parseState) atEnd() bool { return s.pos >= len(s.runes) }

func (s *parseState) remaining() string {
	if s.pos >= len(s.runes) {
		return ""
	}
	return string(s.runes[s.pos:])
}

// skipWhitespace advances pos over any run of Unicode whitespace, without
// requiring that any be present.
func (s *parseState) skipWhitespace() {
	for s.pos < len(s.runes) && unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}
}

// matchWhitespace requires and consumes at least one whitespace character.
func (s *parseState) matchWhitespace() bool {
	start := s.pos
	s.skipWhitespace()
	return s.pos > start
}

// matchLiteral requires the exact text to appear verbatim (case-sensitive)
// at the current position.
func (s *parseState) matchLiteral(text string) bool {
	tr := []rune(text)
	if s.pos+len(tr) > len(s.runes) {
		return false
	}
	for i, c := range tr {
		if s.runes[s.pos+i] != c {
			return false
		}
	}
	s.pos += len(tr)
	return true
}
