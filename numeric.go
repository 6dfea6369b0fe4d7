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

import "strconv"

// scanInt is the integer-parsing primitive shared by every numeric field:
// given a maximum character count (0 meaning unbounded) and whether a
// leading sign is permitted, it consumes the longest valid run of
// `[+-]?[0-9]+` (sign only when allowSigned) at the current position.
// Before matching, any locale-specific native digit codepoints are
// normalized to ASCII across the full remainder, and only then is the
// maxChars window applied - that ordering matters when maxChars would
// otherwise split a multi-byte native digit.
//
// It returns the parsed value and the number of input characters consumed;
// consumed is 0 and ok is false if no digits were present.
func (p *Parser) scanInt(s *parseState, maxChars int, allowSigned bool) (value int64, consumed int, ok bool) {
	if s.pos > len(s.runes) {
		return 0, 0, false
	}
	remainder := s.runes[s.pos:]

	if p.locale.ZeroDigit != nil {
		z := *p.locale.ZeroDigit
		mapped := make([]rune, len(remainder))
		for i, c := range remainder {
			if d := c - z; d >= 0 && d <= 9 {
				mapped[i] = rune('0' + d)
			} else {
				mapped[i] = c
			}
		}
		remainder = mapped
	}

	if maxChars > 0 && maxChars < len(remainder) {
		remainder = remainder[:maxChars]
	}

	i := 0
	sign := int64(1)
	if allowSigned && i < len(remainder) && (remainder[i] == '+' || remainder[i] == '-') {
		if remainder[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(remainder) && remainder[i] >= '0' && remainder[i] <= '9' {
		i++
	}
	if i == start {
		return 0, 0, false
	}

	digits := string(remainder[start:i])
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0, false
	}

	s.pos += i
	return sign * v, i, true
}
