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

// parseYear first tries an unsigned integer parse capped at digitCount; if
// that consumes nothing it retries as a signed integer with no width cap
// at all - the cap is intentionally dropped on the signed retry so an
// explicit negative year is never truncated by the field's declared
// width.
func (p *Parser) parseYear(s *parseState, e pattern.Element, digitCount int) error {
	start := s.pos

	v, consumed, ok := p.scanInt(s, digitCount, false)
	if !ok {
		v, consumed, ok = p.scanInt(s, 0, true)
	}
	if !ok {
		return ErrNumericField.New("y", start)
	}

	if v >= 0 && consumed == 2 && e.Count == 2 {
		s.rec.year = intPtr(p.resolveTwoDigitYear(s, int(v)))
		return nil
	}

	s.rec.year = intPtr(int(v))
	return nil
}

// resolveTwoDigitYear disambiguates a two-digit year against the century
// window that starts centuryWindow (default 80) years before now. The
// boundary value is marked ambiguous on rec so that resolution can
// correct for it once the full date is known.
func (p *Parser) resolveTwoDigitYear(s *parseState, parsedYY int) int {
	now := s.now(p.clock)
	centuryStartYear := now.Year() - p.centuryWindow
	cutoffYY := mod(centuryStartYear, 100)

	s.rec.ambiguousYear = parsedYY == cutoffYY

	fullYear := floorDiv(centuryStartYear, 100)*100 + parsedYY
	if parsedYY < cutoffYY {
		fullYear += 100
	}
	return fullYear
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
