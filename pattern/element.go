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

// Package pattern compiles an ICU/JDK-style letter pattern into an ordered
// list of parse elements. It is invoked once at Parser construction time;
// the resulting element list is immutable and is replayed against every
// input the Parser later sees.
package pattern

// Kind discriminates the three element shapes. Using an explicit tag
// (rather than the zero-count-means-literal convention of some C-derived
// ports) removes invalid states such as a zero-count numeric field.
type Kind int

const (
	Literal Kind = iota
	Whitespace
	Field
)

// Element is a single compiled piece of a pattern: a literal run, a
// collapsed whitespace run, or a field. Only the members relevant to Kind
// are meaningful; see the Kind-specific accessors below.
type Element struct {
	Kind Kind

	// Text holds the literal run's content. Only meaningful when
	// Kind == Literal.
	Text string

	// Letter, Count, Numeric and AbutStart describe a field element. Only
	// meaningful when Kind == Field.
	Letter    byte
	Count     int
	Numeric   bool
	AbutStart bool
}

// letters is the full set of reserved pattern letters recognized by the
// compiler.
const letters = "GyMdkHmsSEDahKzZvQL"

// numericLetters is the set of letters that are numeric, subject to the
// count<3 exception for M and L.
const numericLetters = "yMdhHmsSDkKL"

func isPatternLetter(c rune) bool {
	for i := 0; i < len(letters); i++ {
		if rune(letters[i]) == c {
			return true
		}
	}
	return false
}

// isNumeric applies the classification rules fixed at compile time: M and L
// are numeric only when their repeat count is below 3 (three or more
// repeats render the month/standalone-month textually); the rest of
// numericLetters is numeric unconditionally; everything else (G, E, a, z,
// Z, v, Q) is always textual.
func isNumeric(letter byte, count int) bool {
	switch letter {
	case 'M', 'L':
		return count < 3
	}
	for i := 0; i < len(numericLetters); i++ {
		if numericLetters[i] == letter {
			return true
		}
	}
	return false
}
