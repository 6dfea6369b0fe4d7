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

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse/locale"
)

func TestLongestMatchPrefersLongerOverPrefix(t *testing.T) {
	idx, matched := locale.LongestMatch([]string{"Jun", "June"}, "June 1996")
	require.Equal(t, 1, idx)
	require.Equal(t, "June", matched)
}

func TestLongestMatchNoCandidate(t *testing.T) {
	idx, _ := locale.LongestMatch([]string{"January", "February"}, "xyz")
	require.Equal(t, -1, idx)
}

func TestLongestMatchCaseInsensitive(t *testing.T) {
	idx, matched := locale.LongestMatch([]string{"July"}, "july 10")
	require.Equal(t, 0, idx)
	require.Equal(t, "July", matched)
}

func TestDefaultLocaleHasTwelveMonths(t *testing.T) {
	sym := locale.Default()
	require.Len(t, sym.Months, 12)
	require.Len(t, sym.ShortMonths, 12)
	require.Equal(t, "Sunday", sym.Weekdays[0])
}

func TestAllMonthNamesConcatenatesAllFourArrays(t *testing.T) {
	sym := locale.Default()
	all := sym.AllMonthNames()
	require.Len(t, all, 48)
}

func TestRegistryGetUnknownLocale(t *testing.T) {
	_, err := locale.Get("xx_XX_does_not_exist")
	require.Error(t, err)
	require.True(t, locale.ErrUnknownLocale.Is(err))
}

func TestRegistryGetDefault(t *testing.T) {
	sym, err := locale.Get("")
	require.NoError(t, err)
	require.Same(t, locale.Default(), sym)
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	err := locale.Register("", func(string) (*locale.Symbols, error) { return nil, nil })
	require.True(t, locale.ErrNameEmpty.Is(err))
}
