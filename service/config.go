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

// Package service exposes the date/time parser over HTTP: a request
// supplies a pattern, a locale name and a text to parse, and gets back the
// resolved fields or a structured error.
package service

import "github.com/BurntSushi/toml"

// Config is the dtparsed server configuration, decoded from a TOML file.
type Config struct {
	Addr string `toml:"addr"`

	CacheCapacity int    `toml:"cache_capacity"`
	BoltPath      string `toml:"bolt_path"`

	LocaleRemoteBaseURL string `toml:"locale_remote_base_url"`

	// LocaleFilePath, when set, registers an additional locale provider
	// backed by a local file instead of (or alongside) the embedded and
	// remote providers. LocaleFileFormat selects the decoder ("yaml" or
	// "toml", defaulting to "yaml") and LocaleFileName is the locale name
	// it is registered under (defaulting to "file").
	LocaleFilePath   string `toml:"locale_file_path"`
	LocaleFileFormat string `toml:"locale_file_format"`
	LocaleFileName   string `toml:"locale_file_name"`

	CenturyWindowYears int `toml:"century_window_years"`

	APIKeys []string `toml:"api_keys"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Addr:               ":8080",
		CacheCapacity:      256,
		CenturyWindowYears: 80,
	}
}

// LoadConfig decodes a TOML configuration file at path, starting from
// DefaultConfig so unspecified fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
