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

// Package text_distance finds the name in a set that is nearest to a given
// target by Levenshtein edit distance. It backs internal/similartext's
// "maybe you mean X?" suggestions.
package text_distance

// FindSimilarName returns the element of names with the smallest edit
// distance to target. Ties are broken in favor of the first occurrence. It
// returns the empty string for an empty names slice, and names[0] if
// target is empty (there is nothing to compare against, so the first name
// is as good a guess as any).
func FindSimilarName(names []string, target string) string {
	if len(names) == 0 {
		return ""
	}
	if target == "" {
		return names[0]
	}

	best := names[0]
	bestDist := levenshtein(names[0], target)
	for _, n := range names[1:] {
		if d := levenshtein(n, target); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// FindSimilarNameFromMap is FindSimilarName over a map's keys.
func FindSimilarNameFromMap[V any](names map[string]V, target string) string {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	return FindSimilarName(keys, target)
}

// FindAllSimilarNames returns every element of names tied for the smallest
// edit distance to target, along with that distance. It returns a nil
// slice for an empty names slice.
func FindAllSimilarNames(names []string, target string) (dist int, matches []string) {
	if len(names) == 0 {
		return 0, nil
	}
	dist = -1
	for _, n := range names {
		d := levenshtein(n, target)
		switch {
		case dist == -1 || d < dist:
			dist = d
			matches = []string{n}
		case d == dist:
			matches = append(matches, n)
		}
	}
	return dist, matches
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
