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

package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse/pattern"
)

func TestCompileLiteralsAndFields(t *testing.T) {
	elems := pattern.Compile("MM/dd/yyyy")
	require.Len(t, elems, 5)

	require.Equal(t, pattern.Field, elems[0].Kind)
	require.EqualValues(t, 'M', elems[0].Letter)
	require.Equal(t, 2, elems[0].Count)
	require.True(t, elems[0].Numeric)

	require.Equal(t, pattern.Literal, elems[1].Kind)
	require.Equal(t, "/", elems[1].Text)
}

func TestCompileAbutStart(t *testing.T) {
	elems := pattern.Compile("HHmmss")
	require.Len(t, elems, 3)
	require.True(t, elems[0].AbutStart)
	require.False(t, elems[1].AbutStart)
	require.False(t, elems[2].AbutStart)
}

func TestCompileAbutStartOnlyAtRunHead(t *testing.T) {
	elems := pattern.Compile("yyyyMMdd")
	require.Len(t, elems, 3)
	require.True(t, elems[0].AbutStart)
	require.False(t, elems[1].AbutStart)
	require.False(t, elems[2].AbutStart)
}

func TestCompileMonthThreeOrMoreIsTextual(t *testing.T) {
	elems := pattern.Compile("MMM")
	require.Len(t, elems, 1)
	require.False(t, elems[0].Numeric)
}

func TestCompileQuotedLiteralAndDoubledApostrophe(t *testing.T) {
	elems := pattern.Compile("HH 'o''clock'")
	require.Len(t, elems, 3)
	require.Equal(t, pattern.Literal, elems[2].Kind)
	require.Equal(t, "o'clock", elems[2].Text)
}

func TestCompileCollapsesWhitespaceRun(t *testing.T) {
	elems := pattern.Compile("yyyy  MM")
	require.Len(t, elems, 3)
	require.Equal(t, pattern.Whitespace, elems[1].Kind)
}

func TestCompileNeverLosesCharacters(t *testing.T) {
	// want is the pattern's length less its quoting apostrophes: every
	// other character is accounted for exactly once.
	for _, tc := range []struct {
		pattern string
		want    int
	}{
		{"yyyy-MM-dd'T'HH:mm:ss.SSSZ", 24},
		{"EEEE, MMMM d, yyyy", 18},
		{"'it''s' h:mm a", 11},
	} {
		elems := pattern.Compile(tc.pattern)
		var rebuilt int
		for _, e := range elems {
			switch e.Kind {
			case pattern.Literal:
				rebuilt += len([]rune(e.Text))
			case pattern.Whitespace:
				rebuilt++
			case pattern.Field:
				rebuilt += e.Count
			}
		}
		require.Equal(t, tc.want, rebuilt, tc.pattern)
	}
}
