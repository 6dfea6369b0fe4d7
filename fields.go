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
	"github.com/icu4go/dtparse/internal/similartext"
	"github.com/icu4go/dtparse/locale"
	"github.com/icu4go/dtparse/pattern"
)

// parseEra matches the longest era string (BC/AD and friends). A miss
// leaves the field unset rather than failing: era always reports success.
func (p *Parser) parseEra(s *parseState) error {
	if idx, matched := locale.LongestMatch(p.locale.Eras, s.remaining()); idx >= 0 {
		s.pos += len([]rune(matched))
		s.rec.era = intPtr(idx)
	}
	return nil
}

// parseMonth handles both M and L: numeric when the compiled count is
// below 3, textual (longest-match across all four month-name arrays)
// otherwise.
func (p *Parser) parseMonth(s *parseState, e pattern.Element, digitCount int) error {
	if e.Numeric {
		v, _, ok := p.scanInt(s, digitCount, false)
		if !ok {
			return ErrNumericField.New(string(e.Letter), s.pos)
		}
		s.rec.month = intPtr(int(v) - 1)
		return nil
	}

	candidates := p.locale.AllMonthNames()
	idx, matched := locale.LongestMatch(candidates, s.remaining())
	if idx < 0 {
		return ErrNoLongestMatch.New(string(e.Letter), s.pos, similarMonthSuggestion(p.locale, s.remaining()))
	}
	s.pos += len([]rune(matched))
	monthsPerArray := len(p.locale.Months)
	if monthsPerArray == 0 {
		monthsPerArray = 12
	}
	s.rec.month = intPtr(idx % monthsPerArray)
	return nil
}

// parseWeekday matches against full weekday names first, falling back to
// short weekday names.
func (p *Parser) parseWeekday(s *parseState) error {
	if idx, matched := locale.LongestMatch(p.locale.Weekdays, s.remaining()); idx >= 0 {
		s.pos += len([]rune(matched))
		s.rec.dayOfWeek = intPtr(idx)
		return nil
	}
	if idx, matched := locale.LongestMatch(p.locale.ShortWeekdays, s.remaining()); idx >= 0 {
		s.pos += len([]rune(matched))
		s.rec.dayOfWeek = intPtr(idx)
		return nil
	}
	all := append(append([]string{}, p.locale.Weekdays...), p.locale.ShortWeekdays...)
	return ErrNoLongestMatch.New("E", s.pos, similarSuggestion(all, s.remaining()))
}

// parseAMPM matches the longest AM/PM marker. A miss leaves the field
// unset rather than failing: it always reports success.
func (p *Parser) parseAMPM(s *parseState) error {
	if idx, matched := locale.LongestMatch(p.locale.AMPMs, s.remaining()); idx >= 0 {
		s.pos += len([]rune(matched))
		s.rec.ampm = intPtr(idx)
	}
	return nil
}

// parseQuarter matches full quarter names first, then short quarter
// names, and on a hit records both month (quarter index * 3) and day (1).
func (p *Parser) parseQuarter(s *parseState) error {
	idx, matched := locale.LongestMatch(p.locale.Quarters, s.remaining())
	if idx < 0 {
		idx, matched = locale.LongestMatch(p.locale.ShortQuarters, s.remaining())
	}
	if idx < 0 {
		return ErrNoLongestMatch.New("Q", s.pos, "")
	}
	s.pos += len([]rune(matched))
	s.rec.month = intPtr(idx * 3)
	s.rec.day = intPtr(1)
	return nil
}

// parseDay parses an unsigned integer into day-of-month. It always reports
// success - a zero-length match (no digits) leaves the field unset rather
// than failing.
func (p *Parser) parseDay(s *parseState, digitCount int) error {
	if v, _, ok := p.scanInt(s, digitCount, false); ok {
		s.rec.day = intPtr(int(v))
	}
	return nil
}

// parseDayOfYear parses an unsigned integer for the D (day-of-year)
// pattern letter. The intermediate record has no day-of-year attribute, so
// the value is consumed for input-position purposes only and discarded,
// consistent with d/G/a's always-succeeds treatment.
func (p *Parser) parseDayOfYear(s *parseState, digitCount int) error {
	_, _, _ = p.scanInt(s, digitCount, false)
	return nil
}

// parseHours12 parses an unsigned integer into hours, folding a parsed 12
// to 0 (the h=12 clock-face convention; the AM/PM fold back to 12 happens
// later, in resolution).
func (p *Parser) parseHours12(s *parseState, digitCount int) error {
	v, _, ok := p.scanInt(s, digitCount, false)
	if !ok {
		return ErrNumericField.New("h", s.pos)
	}
	hv := int(v)
	if hv == 12 {
		hv = 0
	}
	s.rec.hours = intPtr(hv)
	return nil
}

// parseHoursPlain handles K, H and k: an unsigned integer into hours with
// no folding.
func (p *Parser) parseHoursPlain(s *parseState, e pattern.Element, digitCount int) error {
	v, _, ok := p.scanInt(s, digitCount, false)
	if !ok {
		return ErrNumericField.New(string(e.Letter), s.pos)
	}
	s.rec.hours = intPtr(int(v))
	return nil
}

func (p *Parser) parseMinutes(s *parseState, digitCount int) error {
	v, _, ok := p.scanInt(s, digitCount, false)
	if !ok {
		return ErrNumericField.New("m", s.pos)
	}
	s.rec.minutes = intPtr(int(v))
	return nil
}

func (p *Parser) parseSeconds(s *parseState, digitCount int) error {
	v, _, ok := p.scanInt(s, digitCount, false)
	if !ok {
		return ErrNumericField.New("s", s.pos)
	}
	s.rec.seconds = intPtr(int(v))
	return nil
}

func similarMonthSuggestion(sym *locale.Symbols, remaining string) string {
	return similarSuggestion(sym.AllMonthNames(), remaining)
}

// similarSuggestion renders a best-effort ", maybe you mean X?" hint for
// an unmatched textual field by comparing against the first word of the
// remaining input.
func similarSuggestion(candidates []string, remaining string) string {
	word := firstWord(remaining)
	if word == "" {
		return ""
	}
	return similartext.Find(candidates, word)
}

func firstWord(s string) string {
	for i, c := range s {
		if c == ' ' || c == ',' || c == '.' {
			return s[:i]
		}
	}
	return s
}
