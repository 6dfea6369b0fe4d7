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

import "time"

// DateTime is the date adapter contract: the parser only ever calls this
// fixed set of getters and setters on the caller-supplied date/time value.
// It never holds a reference to the value beyond a single call to Parse.
//
// FullYear, Month (0-based), Day (day of month), Hours, DayOfWeek
// (Sunday=0) and TimezoneOffset (minutes that local lags UTC) are the
// getters consulted during resolution; the Set* methods and UnixMilli/
// SetUnixMilli are how resolution writes fields and performs the timezone
// epoch shift.
type DateTime interface {
	FullYear() int
	Month() int
	Day() int
	Hours() int
	DayOfWeek() int
	TimezoneOffset() int
	UnixMilli() int64

	SetFullYear(year int)
	SetMonth(month int)
	SetDay(day int)
	SetHours(hours int)
	SetMinutes(minutes int)
	SetSeconds(seconds int)
	SetMilliseconds(ms int)
	SetUnixMilli(ms int64)

	// SupportsTimeOfDay reports whether this value has a time-of-day
	// component. A date-only value returns false, and the parser omits
	// hours/minutes/seconds/milliseconds application for it.
	SupportsTimeOfDay() bool
}

// Clock supplies the wall-clock "now" the two-digit-year window is
// measured against. It is injectable so tests can pin it to a fixed
// instant instead of reading the real wall clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
