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

// record is the intermediate accumulator a parse fills in field by field:
// every attribute is optional, represented here with pointers rather than
// sentinel values so "unset" and "zero" are distinguishable. It is created
// fresh per call to Parse and discarded after resolution.
type record struct {
	era          *int
	year         *int
	month        *int
	day          *int
	hours        *int
	minutes      *int
	seconds      *int
	milliseconds *int
	ampm         *int
	tzOffset     *int
	dayOfWeek    *int

	// ambiguousYear marks that a two-digit year exactly equaled the
	// century-window cutoff.
	ambiguousYear bool
}

func intPtr(v int) *int { return &v }
