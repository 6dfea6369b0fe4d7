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

// Package cache memoizes compiled Parser construction so that a service
// handling many distinct pattern/locale combinations does not recompile
// the same pattern on every request.
package cache

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/mitchellh/hashstructure"
)

// Key identifies a compiled Parser: the pattern argument (string or
// standard-pattern index) plus the locale name it was compiled against.
type Key struct {
	Pattern interface{}
	Locale  string
}

// hash combines hashstructure's structural hash of Key with an xxhash pass
// so the final value is a single fast-to-compare uint64 rather than the
// raw FNV hashstructure produces - this is purely a cache bucket key, not
// a content digest that needs to survive a format change.
func (k Key) hash() (uint64, error) {
	h, err := hashstructure.Hash(k, nil)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (8 * i))
	}
	return xxhash.Sum64(buf[:]), nil
}

func (k Key) String() string {
	return fmt.Sprintf("%v|%s", k.Pattern, k.Locale)
}
