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
)

func TestParseBCEEraNegatesYear(t *testing.T) {
	p := dtparse.New("yyyy G")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("0044 BC", date)
	require.NotZero(t, n)
	require.Equal(t, -43, date.FullYear())
}

func TestParseFractionalSecondsLeftJustifies(t *testing.T) {
	p := dtparse.New("ss.S")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("05.5", date)
	require.NotZero(t, n)
	require.Equal(t, 500, date.Time().Nanosecond()/int(time.Millisecond))
}

func TestParseFractionalSecondsRoundsLongerInput(t *testing.T) {
	p := dtparse.New("ss.SSS")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	n := p.Parse("05.1234", date)
	require.Equal(t, len("05.1234"), n)
	require.Equal(t, 123, date.Time().Nanosecond()/int(time.Millisecond))
}

func TestParseQuarterSetsMonthAndDay(t *testing.T) {
	p := dtparse.New("QQQQ yyyy")
	date := dtparse.NewTimeValue(time.Date(2000, 5, 20, 0, 0, 0, 0, time.UTC))

	n := p.Parse("2nd quarter 1996", date)
	require.NotZero(t, n)
	require.Equal(t, 3, date.Month())
	require.Equal(t, 1, date.Day())
}

func TestParseUnknownEraLeavesFieldUnsetButSucceeds(t *testing.T) {
	p := dtparse.New("yyyy G")
	date := dtparse.NewTimeValue(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	// G always reports success even with no match: the unmatched era
	// text is simply never consumed, and the year resolves without any
	// BCE normalization since era stayed unset.
	n := p.Parse("1996 ZZ", date)
	require.Equal(t, len("1996 "), n)
	require.Equal(t, 1996, date.FullYear())
}
