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

import "math"

// parseFraction parses an unsigned integer and left-justifies it to
// milliseconds. A consumed length shorter
// than 3 digits is scaled up (".5" -> 500ms); longer than 3 is rounded
// to the nearest millisecond (".1235" -> 124ms).
func (p *Parser) parseFraction(s *parseState, digitCount int) error {
	v, consumed, ok := p.scanInt(s, digitCount, false)
	if !ok {
		return ErrNumericField.New("S", s.pos)
	}

	switch {
	case consumed < 3:
		v *= int64(math.Pow10(3 - consumed))
	case consumed > 3:
		v = int64(math.Round(float64(v) / math.Pow10(consumed-3)))
	}

	s.rec.milliseconds = intPtr(int(v))
	return nil
}
