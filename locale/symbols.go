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

// Package locale holds the read-only symbol table the parser consults for
// textual fields (month names, weekday names, era strings, AM/PM markers,
// quarter names) and for the twelve predefined standard patterns. The
// parser never mutates a Symbols value; it is a pure data/lookup
// collaborator.
package locale

import "strings"

// Symbols is the locale symbol table. Weekdays and the month arrays are
// ordered with Weekdays[0] as Sunday.
type Symbols struct {
	// Name is the locale name this table was resolved under (e.g.
	// "en_US"). The registry fills it in for providers that leave it
	// empty; it exists so callers that only hold a *Symbols (not the name
	// they requested it under) can still key a cache entry correctly.
	Name string

	Eras []string

	AMPMs []string

	Months                []string
	StandaloneMonths      []string
	ShortMonths           []string
	StandaloneShortMonths []string

	Weekdays      []string
	ShortWeekdays []string

	Quarters      []string
	ShortQuarters []string

	// DateFormats, TimeFormats and DateTimeFormats each hold exactly 4
	// entries, indexed short/medium/long/full (0..3).
	DateFormats     [4]string
	TimeFormats     [4]string
	DateTimeFormats [4]string

	// ZeroDigit, when non-nil, is the codepoint a native digit "zero"
	// maps to; used by the integer-parsing primitive to normalize
	// native-digit input before matching ASCII digits.
	ZeroDigit *rune
}

// DateFormat, TimeFormat and DateTimeFormat give pattern.Standard access to
// the style-indexed format templates without that package importing the
// full locale package surface.
func (s *Symbols) DateFormat(i int) string     { return s.DateFormats[i] }
func (s *Symbols) TimeFormat(i int) string     { return s.TimeFormats[i] }
func (s *Symbols) DateTimeFormat(i int) string { return s.DateTimeFormats[i] }

// AllMonthNames returns the concatenation of Months, StandaloneMonths,
// ShortMonths and StandaloneShortMonths in that order, the candidate set
// textual M/L matching searches.
func (s *Symbols) AllMonthNames() []string {
	out := make([]string, 0, len(s.Months)+len(s.StandaloneMonths)+len(s.ShortMonths)+len(s.StandaloneShortMonths))
	out = append(out, s.Months...)
	out = append(out, s.StandaloneMonths...)
	out = append(out, s.ShortMonths...)
	out = append(out, s.StandaloneShortMonths...)
	return out
}

// LongestMatch is the longest-match primitive textual fields use: among
// the candidates whose lowercased form is a prefix of the lowercased
// input, it returns the index and text of the longest one. Ties are broken
// by first occurrence - a candidate no longer than the current best never
// replaces it. It returns index -1 if nothing matched.
func LongestMatch(candidates []string, in string) (index int, matched string) {
	lowerIn := strings.ToLower(in)
	index = -1
	for i, c := range candidates {
		lc := strings.ToLower(c)
		if lc == "" {
			continue
		}
		if strings.HasPrefix(lowerIn, lc) && len(c) > len(matched) {
			index = i
			matched = c
		}
	}
	return index, matched
}
