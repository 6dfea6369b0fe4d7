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

package locale

import (
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// document is the plain-data shape locale packs are decoded into before
// being copied into a Symbols value; it exists so the on-disk format does
// not need to match Symbols field-for-field (in particular the two fixed
// [4]string arrays are expressed as slices in the document, so a pack
// author only needs to supply as many styles as they care about).
type document struct {
	Eras                  []string `yaml:"eras" toml:"eras" json:"eras"`
	AMPMs                 []string `yaml:"ampms" toml:"ampms" json:"ampms"`
	Months                []string `yaml:"months" toml:"months" json:"months"`
	StandaloneMonths      []string `yaml:"standalone_months" toml:"standalone_months" json:"standalone_months"`
	ShortMonths           []string `yaml:"short_months" toml:"short_months" json:"short_months"`
	StandaloneShortMonths []string `yaml:"standalone_short_months" toml:"standalone_short_months" json:"standalone_short_months"`
	Weekdays              []string `yaml:"weekdays" toml:"weekdays" json:"weekdays"`
	ShortWeekdays         []string `yaml:"short_weekdays" toml:"short_weekdays" json:"short_weekdays"`
	Quarters              []string `yaml:"quarters" toml:"quarters" json:"quarters"`
	ShortQuarters         []string `yaml:"short_quarters" toml:"short_quarters" json:"short_quarters"`
	DateFormats           []string `yaml:"date_formats" toml:"date_formats" json:"date_formats"`
	TimeFormats           []string `yaml:"time_formats" toml:"time_formats" json:"time_formats"`
	DateTimeFormats       []string `yaml:"date_time_formats" toml:"date_time_formats" json:"date_time_formats"`
	ZeroDigit             string   `yaml:"zero_digit" toml:"zero_digit" json:"zero_digit"`
}

func (d *document) toSymbols() *Symbols {
	s := &Symbols{
		Eras:                  d.Eras,
		AMPMs:                 d.AMPMs,
		Months:                d.Months,
		StandaloneMonths:      d.StandaloneMonths,
		ShortMonths:           d.ShortMonths,
		StandaloneShortMonths: d.StandaloneShortMonths,
		Weekdays:              d.Weekdays,
		ShortWeekdays:         d.ShortWeekdays,
		Quarters:              d.Quarters,
		ShortQuarters:         d.ShortQuarters,
	}
	copyStyles(&s.DateFormats, d.DateFormats)
	copyStyles(&s.TimeFormats, d.TimeFormats)
	copyStyles(&s.DateTimeFormats, d.DateTimeFormats)
	if r := []rune(d.ZeroDigit); len(r) == 1 {
		s.ZeroDigit = &r[0]
	}
	return s
}

func copyStyles(dst *[4]string, src []string) {
	for i := 0; i < len(src) && i < 4; i++ {
		dst[i] = src[i]
	}
}

// YAMLFileProvider returns a Provider that decodes a YAML-encoded locale
// pack from path, ignoring the requested name (one file, one locale).
func YAMLFileProvider(path string) Provider {
	return func(string) (*Symbols, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var doc document
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		return doc.toSymbols(), nil
	}
}

// TOMLFileProvider returns a Provider that decodes a TOML-encoded locale
// pack from path, ignoring the requested name (one file, one locale).
func TOMLFileProvider(path string) Provider {
	return func(string) (*Symbols, error) {
		var doc document
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return nil, err
		}
		return doc.toSymbols(), nil
	}
}
