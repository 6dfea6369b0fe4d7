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

// Command dtparse is a one-shot CLI wrapper over the parser: it parses a
// single text against a pattern and prints the resolved instant.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/icu4go/dtparse"
)

func main() {
	var (
		pattern = flag.String("pattern", "yyyy-MM-dd'T'HH:mm:ss", "ICU/JDK-style pattern")
		strict  = flag.Bool("strict", false, "enable round-trip validation")
		base    = flag.String("base", "", "RFC3339 baseline instant (defaults to now)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dtparse -pattern PATTERN [-strict] [-base RFC3339] TEXT")
		os.Exit(2)
	}

	baseTime := time.Now().UTC()
	if *base != "" {
		parsed, err := time.Parse(time.RFC3339, *base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dtparse: invalid -base: %v\n", err)
			os.Exit(2)
		}
		baseTime = parsed.UTC()
	}

	parser := dtparse.New(*pattern)
	date := dtparse.NewTimeValue(baseTime)

	var opts []dtparse.ParseOption
	if *strict {
		opts = append(opts, dtparse.WithValidate(true))
	}

	consumed := parser.Parse(flag.Arg(0), date, opts...)
	if consumed == 0 {
		fmt.Fprintln(os.Stderr, "dtparse: parse failed")
		os.Exit(1)
	}

	fmt.Printf("consumed=%d result=%s\n", consumed, date.Time().Format(time.RFC3339))
}
