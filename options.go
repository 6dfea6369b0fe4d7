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
	"github.com/sirupsen/logrus"

	"github.com/icu4go/dtparse/cache"
	"github.com/icu4go/dtparse/locale"
)

// defaultCenturyWindow is how many years before now the disambiguated
// century window for two-digit years starts.
const defaultCenturyWindow = 80

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLocale overrides the locale symbol table consulted for textual
// fields and standard-pattern resolution. The default is locale.Default().
func WithLocale(sym *locale.Symbols) Option {
	return func(p *Parser) { p.locale = sym }
}

// WithClock overrides the wall-clock source the two-digit-year window is
// measured against. The default reads real time.
func WithClock(c Clock) Option {
	return func(p *Parser) { p.clock = c }
}

// WithCenturyWindow overrides the number of years before now a two-digit
// year window starts.
func WithCenturyWindow(years int) Option {
	return func(p *Parser) { p.centuryWindow = years }
}

// WithLogger attaches a structured logger the Parser emits diagnostic
// entries to on parse failure. The default discards all output.
func WithLogger(l *logrus.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithCache overrides the cache consulted for the compiled element list
// of the pattern being constructed. Passing nil disables caching for
// that Parser and forces a direct pattern.Compile on every New call.
// The default is a shared package-level cache sized for a few hundred
// distinct patterns.
func WithCache(c *cache.Cache) Option {
	return func(p *Parser) { p.cache = c }
}

// ParseOption configures a single call to Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	validate bool
}

// WithValidate toggles strict round-trip validation during resolution.
// StrictParse is equivalent to Parse(text, date, WithValidate(true)).
func WithValidate(v bool) ParseOption {
	return func(o *parseOptions) { o.validate = v }
}
