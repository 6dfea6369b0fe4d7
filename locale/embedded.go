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

package locale

// enUS is the process-wide default locale. It is registered under the
// name "en_US" and returned by Default().
var enUS = &Symbols{
	Name: "en_US",

	Eras: []string{"BC", "AD"},

	AMPMs: []string{"AM", "PM"},

	Months: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	StandaloneMonths: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	StandaloneShortMonths: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},

	Weekdays: []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	ShortWeekdays: []string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	},

	Quarters:      []string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
	ShortQuarters: []string{"Q1", "Q2", "Q3", "Q4"},

	DateFormats: [4]string{
		"M/d/yy",                // short
		"MMM d, yyyy",           // medium
		"MMMM d, yyyy",          // long
		"EEEE, MMMM d, yyyy",    // full
	},
	TimeFormats: [4]string{
		"h:mm a",           // short
		"h:mm:ss a",        // medium
		"h:mm:ss a z",      // long
		"h:mm:ss a zzzz",   // full
	},
	DateTimeFormats: [4]string{
		"{1} {0}",
		"{1} {0}",
		"{1} {0}",
		"{1} {0}",
	},
}

// Default returns the process-wide default locale symbol table.
func Default() *Symbols {
	return enUS
}
