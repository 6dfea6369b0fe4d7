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
	errorkit "gopkg.in/src-d/go-errors.v1"
)

// Error kinds describing why a parse failed. Parser.Parse signals failure
// only through its returned 0 count and does not return these errors; it
// writes them, with the input text, at debug level to the Parser's logger
// (see WithLogger) so a failure can be diagnosed with a precise reason
// instead of a bare "parse failed".
var (
	// ErrLiteralMismatch is returned when a literal run in the pattern does
	// not appear verbatim at the current input position.
	ErrLiteralMismatch = errorkit.NewKind("expected literal %q at position %d")

	// ErrWhitespaceRequired is returned when the pattern demands at least
	// one whitespace character but none is present.
	ErrWhitespaceRequired = errorkit.NewKind("expected whitespace at position %d")

	// ErrNumericField is returned when a numeric field could not consume
	// the characters it required.
	ErrNumericField = errorkit.NewKind("could not parse numeric field %q at position %d")

	// ErrNoLongestMatch is returned when a textual field (month, weekday,
	// era, quarter) had no viable candidate at the current position.
	ErrNoLongestMatch = errorkit.NewKind("no match for field %q at position %d%s")

	// ErrAbutExhausted is returned when the abutting-run backtracking
	// algorithm shrank the head field's width to zero without the run
	// succeeding at any width.
	ErrAbutExhausted = errorkit.NewKind("abutting numeric run starting at %q exhausted all widths")

	// ErrValidation is returned, under WithValidate(true), when the resolved
	// date does not round-trip the parsed fields, or when a resolved
	// field is out of range.
	ErrValidation = errorkit.NewKind("%s")

	// ErrDayOfWeekMismatch is returned when an explicit day and an
	// explicit day-of-week were both parsed and they disagree.
	ErrDayOfWeekMismatch = errorkit.NewKind("parsed day of week does not match resolved date")

	// ErrInvalidPatternArg is the panic value New raises when the pattern
	// argument is neither a string nor an int (an out-of-range int selector
	// folds to the combined-medium pattern instead).
	ErrInvalidPatternArg = errorkit.NewKind("pattern must be a string or a standard-pattern index, got %T")
)

// ErrNilDateTime is the caller-error kind: a nil date argument panics
// rather than being reported as a structural parse failure.
var ErrNilDateTime = errorkit.NewKind("dtparse: date argument must not be nil")
