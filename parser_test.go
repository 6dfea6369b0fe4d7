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

package dtparse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse"
	"github.com/icu4go/dtparse/cache"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestParseAbuttingRun(t *testing.T) {
	p := dtparse.New("HHmmss")

	t.Run("six digits", func(t *testing.T) {
		date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		n := p.Parse("123456", date)
		require.Equal(t, 6, n)
		require.Equal(t, 12, date.Hours())
	})

	t.Run("five digits shrinks head to width one", func(t *testing.T) {
		date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		n := p.Parse("12345", date)
		require.Equal(t, 5, n)
		require.Equal(t, 1, date.Hours())
	})

	t.Run("four digits fails entirely", func(t *testing.T) {
		date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		n := p.Parse("1234", date)
		require.Equal(t, 0, n)
	})
}

func TestParseTwoDigitYearWindow(t *testing.T) {
	clock := fixedClock{t: time.Date(1997, 1, 1, 0, 0, 0, 0, time.UTC)}
	p := dtparse.New("MM/dd/yy", dtparse.WithClock(clock))

	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	n := p.Parse("01/11/12", date)
	require.Equal(t, 8, n)
	require.Equal(t, 2012, date.FullYear())
	require.Equal(t, 0, date.Month())
	require.Equal(t, 11, date.Day())

	date2 := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	n2 := p.Parse("05/04/64", date2)
	require.Equal(t, 8, n2)
	require.Equal(t, 1964, date2.FullYear())
	require.Equal(t, 4, date2.Month())
	require.Equal(t, 4, date2.Day())
}

func TestParseEraAndLiteralAndQuotedText(t *testing.T) {
	p := dtparse.New("yyyy.MM.dd G 'at' HH:mm:ss")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("1996.07.10 AD at 15:08:56", date)
	require.NotZero(t, n)
	require.Equal(t, 1996, date.FullYear())
	require.Equal(t, 6, date.Month())
	require.Equal(t, 10, date.Day())
	require.Equal(t, 15, date.Hours())
}

func TestParseHour12PMFold(t *testing.T) {
	p := dtparse.New("h:mm a")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("12:08 PM", date)
	require.NotZero(t, n)
	require.Equal(t, 12, date.Hours())
	require.Equal(t, 8, date.Time().Minute())
}

func TestParseAbuttingYearMonthDay(t *testing.T) {
	p := dtparse.New("yyyyMMdd")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("19960710", date)
	require.Equal(t, 8, n)
	require.Equal(t, 1996, date.FullYear())
	require.Equal(t, 6, date.Month())
	require.Equal(t, 10, date.Day())
}

func TestParseTimezoneOffsetShiftsEpoch(t *testing.T) {
	p := dtparse.New("Z")
	base := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	date := dtparse.NewTimeValue(base)

	n := p.Parse("-0800", date)
	require.NotZero(t, n)
	require.Equal(t, base.Add(8*time.Hour), date.Time())
}

func TestParseMonthNameLongestMatch(t *testing.T) {
	p := dtparse.New("MMMM d, yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("July 10, 1996", date)
	require.NotZero(t, n)
	require.Equal(t, 6, date.Month())
	require.Equal(t, 10, date.Day())
	require.Equal(t, 1996, date.FullYear())
}

func TestParseValidateRejectsRolloverDate(t *testing.T) {
	p := dtparse.New("MM/dd/yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("02/30/1996", date, dtparse.WithValidate(true))
	require.Equal(t, 0, n)
}

func TestStrictParseIsValidateTrue(t *testing.T) {
	p := dtparse.New("MM/dd/yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.StrictParse("02/30/1996", date)
	require.Equal(t, 0, n)
}

func TestParseNoPartialMutationOnFailure(t *testing.T) {
	p := dtparse.New("MM/dd/yyyy")
	original := time.Date(1970, 6, 15, 0, 0, 0, 0, time.UTC)
	date := dtparse.NewTimeValue(original)

	n := p.Parse("not-a-date", date)
	require.Equal(t, 0, n)
	require.Equal(t, original, date.Time())
}

func TestParseWhitespaceCollapsing(t *testing.T) {
	p := dtparse.New("MM dd yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("07   10   1996", date)
	require.Equal(t, len("07   10   1996"), n)
	require.Equal(t, 1996, date.FullYear())
}

func TestParseNilDateTimePanics(t *testing.T) {
	p := dtparse.New("yyyy")
	require.Panics(t, func() {
		p.Parse("1996", nil)
	})
}

func TestParseDateOnlyValueSkipsTimeFields(t *testing.T) {
	p := dtparse.New("yyyy-MM-dd HH:mm")
	date := dtparse.NewDateOnlyValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("1996-07-10 15:08", date)
	require.NotZero(t, n)
	require.Equal(t, 1996, date.FullYear())
	require.Equal(t, 6, date.Month())
	require.Equal(t, 10, date.Day())
}

func TestParseDayOfWeekMismatchFails(t *testing.T) {
	p := dtparse.New("EEEE, MMMM d, yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	// July 10, 1996 was a Wednesday, not a Monday.
	n := p.Parse("Monday, July 10, 1996", date)
	require.Equal(t, 0, n)
}

func TestNewReusesCompiledElementsAcrossCache(t *testing.T) {
	c := cache.New(8)
	defer c.Close()

	p1 := dtparse.New("MM/dd/yyyy", dtparse.WithCache(c))
	p2 := dtparse.New("MM/dd/yyyy", dtparse.WithCache(c))
	require.Equal(t, 1, c.Len())

	date1 := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	date2 := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, len("07/10/1996"), p1.Parse("07/10/1996", date1))
	require.Equal(t, len("07/10/1996"), p2.Parse("07/10/1996", date2))
	require.Equal(t, date1.Time(), date2.Time())
}

func TestNewWithNilCacheCompilesDirectly(t *testing.T) {
	p := dtparse.New("MM/dd/yyyy", dtparse.WithCache(nil))
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("07/10/1996", date)
	require.Equal(t, len("07/10/1996"), n)
}

func TestParseDayOfWeekNudgeWithoutExplicitDay(t *testing.T) {
	p := dtparse.New("EEEE MMMM yyyy")
	date := dtparse.NewTimeValue(time.Date(1996, 7, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("Wednesday July 1996", date)
	require.NotZero(t, n)
	require.Equal(t, time.Wednesday, date.Time().Weekday())
	require.Equal(t, 6, date.Month())
}
