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

// TimeValue adapts a time.Time to the DateTime contract, always UTC. It is
// the concrete adapter most callers reach for; anyone with their own
// date/time type only needs to implement DateTime directly.
type TimeValue struct {
	t time.Time
}

// NewTimeValue wraps t, normalizing it to UTC so the getters/setters agree
// with TimezoneOffset's "minutes that local lags UTC" contract (a
// TimeValue's local offset is always 0; use tzOffset in the pattern to
// shift the instant instead).
func NewTimeValue(t time.Time) *TimeValue {
	return &TimeValue{t: t.UTC()}
}

// Time returns the current wrapped value.
func (v *TimeValue) Time() time.Time { return v.t }

func (v *TimeValue) FullYear() int        { return v.t.Year() }
func (v *TimeValue) Month() int           { return int(v.t.Month()) - 1 }
func (v *TimeValue) Day() int             { return v.t.Day() }
func (v *TimeValue) Hours() int           { return v.t.Hour() }
func (v *TimeValue) DayOfWeek() int       { return int(v.t.Weekday()) }
func (v *TimeValue) TimezoneOffset() int  { return 0 }
func (v *TimeValue) UnixMilli() int64     { return v.t.UnixMilli() }
func (v *TimeValue) SupportsTimeOfDay() bool { return true }

func (v *TimeValue) SetFullYear(year int) {
	v.t = time.Date(year, v.t.Month(), v.t.Day(), v.t.Hour(), v.t.Minute(), v.t.Second(), v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetMonth(month int) {
	v.t = time.Date(v.t.Year(), time.Month(month+1), v.t.Day(), v.t.Hour(), v.t.Minute(), v.t.Second(), v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetDay(day int) {
	v.t = time.Date(v.t.Year(), v.t.Month(), day, v.t.Hour(), v.t.Minute(), v.t.Second(), v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetHours(hours int) {
	v.t = time.Date(v.t.Year(), v.t.Month(), v.t.Day(), hours, v.t.Minute(), v.t.Second(), v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetMinutes(minutes int) {
	v.t = time.Date(v.t.Year(), v.t.Month(), v.t.Day(), v.t.Hour(), minutes, v.t.Second(), v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetSeconds(seconds int) {
	v.t = time.Date(v.t.Year(), v.t.Month(), v.t.Day(), v.t.Hour(), v.t.Minute(), seconds, v.t.Nanosecond(), time.UTC)
}

func (v *TimeValue) SetMilliseconds(ms int) {
	v.t = time.Date(v.t.Year(), v.t.Month(), v.t.Day(), v.t.Hour(), v.t.Minute(), v.t.Second(), ms*int(time.Millisecond), time.UTC)
}

func (v *TimeValue) SetUnixMilli(ms int64) {
	v.t = time.UnixMilli(ms).UTC()
}

// DateOnlyValue adapts a time.Time to the DateTime contract but reports
// SupportsTimeOfDay false, so the parser skips hours/minutes/seconds/
// milliseconds application entirely.
type DateOnlyValue struct {
	TimeValue
}

// NewDateOnlyValue wraps t, truncated to a calendar day in UTC.
func NewDateOnlyValue(t time.Time) *DateOnlyValue {
	t = t.UTC()
	return &DateOnlyValue{TimeValue{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}}
}

func (v *DateOnlyValue) SupportsTimeOfDay() bool { return false }
