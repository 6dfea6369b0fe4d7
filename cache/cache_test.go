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

package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse/cache"
)

func TestGetOrBuildMemoizes(t *testing.T) {
	c := cache.New(8)
	defer c.Close()

	calls := 0
	build := func(cache.Key) (interface{}, error) {
		calls++
		return "built", nil
	}

	key := cache.Key{Pattern: "MM/dd/yyyy", Locale: "en_US"}
	v1, hit1, err := c.GetOrBuild(key, build)
	require.NoError(t, err)
	require.False(t, hit1)
	require.Equal(t, "built", v1)

	v2, hit2, err := c.GetOrBuild(key, build)
	require.NoError(t, err)
	require.True(t, hit2)
	require.Equal(t, "built", v2)
	require.Equal(t, 1, calls)
}

func TestGetOrBuildDistinguishesKeys(t *testing.T) {
	c := cache.New(8)
	defer c.Close()

	calls := 0
	build := func(k cache.Key) (interface{}, error) {
		calls++
		return k.Pattern, nil
	}

	_, _, err := c.GetOrBuild(cache.Key{Pattern: "yyyy", Locale: "en_US"}, build)
	require.NoError(t, err)
	_, _, err = c.GetOrBuild(cache.Key{Pattern: "MM", Locale: "en_US"}, build)
	require.NoError(t, err)

	require.Equal(t, 2, calls)
	require.Equal(t, 2, c.Len())
}

func TestEvictsOldestPastCapacity(t *testing.T) {
	c := cache.New(2)
	defer c.Close()

	build := func(k cache.Key) (interface{}, error) { return k.Pattern, nil }

	_, _, _ = c.GetOrBuild(cache.Key{Pattern: "a"}, build)
	_, _, _ = c.GetOrBuild(cache.Key{Pattern: "b"}, build)
	_, _, _ = c.GetOrBuild(cache.Key{Pattern: "c"}, build)

	require.Equal(t, 2, c.Len())
}
