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

// Package similartext renders a "maybe you mean X?" suggestion suffix used
// in error messages for an unmatched name - a month or weekday name that
// matched none of the locale's candidates.
package similartext

import (
	"fmt"
	"strings"

	"github.com/icu4go/dtparse/internal/text_distance"
)

// maxDistanceRatio bounds how different target may be from its closest
// match before the suggestion is considered too weak to offer; expressed
// as a fraction of target's length so short and long targets are held to
// the same relative standard.
const maxDistanceRatio = 0.5

// Find returns a suggestion suffix of the form ", maybe you mean X?" (or
// ", maybe you mean X or Y?" when multiple names tie for closest) for the
// names in names closest to target, or the empty string if names is empty,
// target is empty, or nothing is close enough to be useful.
func Find(names []string, target string) string {
	if target == "" || len(names) == 0 {
		return ""
	}
	dist, matches := text_distance.FindAllSimilarNames(names, target)
	return render(dist, matches, target)
}

// FindFromMap is Find over a map's keys.
func FindFromMap[V any](names map[string]V, target string) string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	return Find(keys, target)
}

func render(dist int, matches []string, target string) string {
	if len(matches) == 0 || !closeEnough(dist, matches[0], target) {
		return ""
	}
	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

func closeEnough(dist int, a, b string) bool {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return false
	}
	return float64(dist)/float64(longest) <= maxDistanceRatio
}
