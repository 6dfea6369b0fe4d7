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

import "github.com/icu4go/dtparse/pattern"

// parseAbutRun implements the abutting numeric run backtracking algorithm:
// when several fixed-width numeric fields run together with no separator,
// the run's variable-width head field is retried with shrinking width
// until the remaining fixed-width fields all parse. elems[head] must have
// AbutStart set. Any element that is not a numeric field (a literal, a
// whitespace run, or a textual field) ends the run. Every field after the
// head must consume exactly its declared width; a shorter match counts as
// a failure of that pass.
//
// It returns the number of elements consumed by the run (so the caller
// can advance its own index past it) on success.
func (p *Parser) parseAbutRun(s *parseState, elems []pattern.Element, head int) (int, error) {
	entryPos := s.pos
	abutPass := 0

	for {
		i := head
		ok := true

		for ; i < len(elems); i++ {
			e := elems[i]
			if e.Kind != pattern.Field || !e.Numeric {
				break
			}

			width := e.Count
			if i == head {
				width -= abutPass
				if width <= 0 {
					return 0, ErrAbutExhausted.New(string(e.Letter))
				}
			}

			start := s.pos
			if err := p.parseField(s, e, width); err != nil {
				ok = false
				break
			}
			if i != head && s.pos-start < width {
				ok = false
				break
			}
		}

		if ok {
			return i - head, nil
		}

		s.pos = entryPos
		abutPass++
	}
}
