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

// parseTimezone recognizes an optional GMT literal followed by a numeric
// offset in GMT+-hhmm, GMT+-hh:mm, +-hhmm or +-hh:mm form. Named time
// zones (e.g. "America/New_York") are not supported.
func (p *Parser) parseTimezone(s *parseState) error {
	s.matchLiteral("GMT")

	if s.atEnd() {
		s.rec.tzOffset = intPtr(0)
		return nil
	}

	first, firstLen, ok := p.scanInt(s, 0, true)
	if !ok {
		return ErrNumericField.New("Z", s.pos)
	}

	var offset int
	if !s.atEnd() && s.runes[s.pos] == ':' {
		s.pos++
		second, _, ok := p.scanInt(s, 0, false)
		if !ok {
			return ErrNumericField.New("Z", s.pos)
		}
		offset = int(first)*60 + int(second)
	} else {
		n := firstLen
		if first < 24 && n <= 3 {
			offset = int(first) * 60
		} else {
			// Packed HHMM form. No bounds check on the minutes part is
			// intentional: an input like "+0199" yields 99 minutes past
			// the hour, uncorrected.
			offset = int(first)%100 + int(first)/100*60
		}
	}

	// Captured with the opposite sign of the spelled offset, to align
	// with resolution's "minutes west of UTC" convention.
	s.rec.tzOffset = intPtr(-offset)
	return nil
}
