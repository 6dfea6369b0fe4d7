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
	"io"

	"github.com/sirupsen/logrus"

	"github.com/icu4go/dtparse/cache"
	"github.com/icu4go/dtparse/locale"
	"github.com/icu4go/dtparse/pattern"
)

// defaultCache memoizes compiled element lists across Parser construction
// calls that share a pattern and locale. It is sized for a service holding
// a modest working set of distinct pattern/locale pairs; callers with
// different sharing needs can override it per Parser with WithCache.
var defaultCache = cache.New(256)

// Parser compiles a pattern once at construction and is safe to reuse (and
// to share across goroutines) for many calls to Parse: the compiled
// element list is build-once, read-many.
type Parser struct {
	elems []pattern.Element

	locale        *locale.Symbols
	clock         Clock
	centuryWindow int
	log           *logrus.Logger
	cache         *cache.Cache
}

// New compiles pat - either a direct pattern string or an int selecting
// one of the twelve standard patterns 0..11 (out-of-range values fold to
// combined-medium) - into a Parser. It panics with
// ErrInvalidPatternArg for any other argument type.
//
// Compilation is memoized in a cache shared across every Parser built
// with the default options (override with WithCache, or disable it by
// passing WithCache(nil)), so repeatedly constructing a Parser for the
// same pattern and locale does not repeatedly invoke pattern.Compile.
func New(pat interface{}, opts ...Option) *Parser {
	p := &Parser{
		locale:        locale.Default(),
		clock:         realClock{},
		centuryWindow: defaultCenturyWindow,
		log:           discardLogger(),
		cache:         defaultCache,
	}
	for _, o := range opts {
		o(p)
	}

	var raw string
	switch v := pat.(type) {
	case string:
		raw = v
	case int:
		raw = pattern.Standard(v, p.locale)
	default:
		panic(ErrInvalidPatternArg.New(pat))
	}

	if p.cache == nil {
		p.elems = pattern.Compile(raw)
		return p
	}

	key := cache.Key{Pattern: raw, Locale: p.locale.Name}
	v, _, err := p.cache.GetOrBuild(key, func(cache.Key) (interface{}, error) {
		return pattern.Compile(raw), nil
	})
	if err != nil {
		p.elems = pattern.Compile(raw)
		return p
	}
	p.elems = v.([]pattern.Element)
	return p
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Parse interprets text against the compiled pattern and populates date in
// place. It returns the number of input characters consumed, or 0 if the
// parse failed; on failure date is left untouched. It panics with
// ErrNilDateTime if date is nil.
func (p *Parser) Parse(text string, date DateTime, opts ...ParseOption) int {
	if date == nil {
		panic(ErrNilDateTime.New())
	}

	var po parseOptions
	for _, o := range opts {
		o(&po)
	}

	s := newParseState(text)
	s.rec = &record{}

	n, err := p.run(s)
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"text": text,
			"pos":  n,
		}).WithError(err).Debug("dtparse: parse failed")
		return 0
	}

	if err := p.resolve(s, date, po.validate); err != nil {
		p.log.WithFields(logrus.Fields{
			"text": text,
		}).WithError(err).Debug("dtparse: resolution failed")
		return 0
	}

	return n
}

// StrictParse is the deprecated entry point equivalent to
// Parse(text, date, WithValidate(true)).
//
// Deprecated: use Parse with WithValidate(true).
func (p *Parser) StrictParse(text string, date DateTime) int {
	return p.Parse(text, date, WithValidate(true))
}

// run drives the main per-element loop. It returns the final parse
// position on success.
func (p *Parser) run(s *parseState) (int, error) {
	i := 0
	for i < len(p.elems) {
		e := p.elems[i]

		switch e.Kind {
		case pattern.Literal:
			if !s.matchLiteral(e.Text) {
				return s.pos, ErrLiteralMismatch.New(e.Text, s.pos)
			}
			i++

		case pattern.Whitespace:
			if !s.matchWhitespace() {
				return s.pos, ErrWhitespaceRequired.New(s.pos)
			}
			i++

		case pattern.Field:
			if e.AbutStart {
				consumed, err := p.parseAbutRun(s, p.elems, i)
				if err != nil {
					return s.pos, err
				}
				i += consumed
				continue
			}
			if err := p.parseField(s, e, 0); err != nil {
				return s.pos, err
			}
			i++
		}
	}
	return s.pos, nil
}

// parseField dispatches a single field element to its per-letter
// sub-parser, skipping leading input whitespace first. digitCount is the
// width cap: 0 means unbounded.
func (p *Parser) parseField(s *parseState, e pattern.Element, digitCount int) error {
	s.skipWhitespace()

	switch e.Letter {
	case 'G':
		return p.parseEra(s)
	case 'M', 'L':
		return p.parseMonth(s, e, digitCount)
	case 'E':
		return p.parseWeekday(s)
	case 'a':
		return p.parseAMPM(s)
	case 'y':
		return p.parseYear(s, e, digitCount)
	case 'Q':
		return p.parseQuarter(s)
	case 'd':
		return p.parseDay(s, digitCount)
	case 'S':
		return p.parseFraction(s, digitCount)
	case 'h':
		return p.parseHours12(s, digitCount)
	case 'K', 'H', 'k':
		return p.parseHoursPlain(s, e, digitCount)
	case 'm':
		return p.parseMinutes(s, digitCount)
	case 's':
		return p.parseSeconds(s, digitCount)
	case 'z', 'Z', 'v':
		return p.parseTimezone(s)
	case 'D':
		return p.parseDayOfYear(s, digitCount)
	}
	return ErrNumericField.New(string(e.Letter), s.pos)
}
