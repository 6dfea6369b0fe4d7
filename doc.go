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

// Package dtparse implements a locale-sensitive date/time parser that
// interprets a human-readable string against an ICU/JDK-style letter
// pattern and populates a caller-supplied date/time value.
//
// A Parser is built once from a pattern and is safe to reuse (and to share
// across goroutines) for many calls to Parse. The pattern language and the
// parsing algorithm - including the abutting-numeric-run backtracking used
// for undelimited runs such as "HHmmss", and the moving 80-year window used
// to disambiguate two-digit years - are described in the sub-parser files
// (year.go, fraction.go, timezone.go, abut.go).
package dtparse
