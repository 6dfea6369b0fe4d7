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

import (
	"sort"
	"sync"

	errorkit "gopkg.in/src-d/go-errors.v1"
)

// Provider resolves a named locale pack to a Symbols table. Implementations
// may read an embedded literal, decode a file, or fetch a remote pack - the
// registry does not care, it only caches the resolved Symbols per name.
type Provider func(name string) (*Symbols, error)

var (
	// ErrNameEmpty: an empty registration name is always rejected.
	ErrNameEmpty = errorkit.NewKind("locale: provider name must not be empty")
	// ErrUnknownLocale is returned by Get when no provider has been
	// registered under the requested name.
	ErrUnknownLocale = errorkit.NewKind("locale: unknown locale %q")
)

var (
	registryMu sync.RWMutex
	providers  = map[string]Provider{}
	cache      = map[string]*Symbols{}
	defaultOne = "en_US"
)

func init() {
	_ = Register("en_US", func(string) (*Symbols, error) { return enUS, nil })
}

// Register associates a provider with a locale name, replacing any
// provider previously registered under that name. It returns ErrNameEmpty
// for an empty name.
func Register(name string, p Provider) error {
	if name == "" {
		return ErrNameEmpty.New()
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = p
	delete(cache, name)
	return nil
}

// Names returns the sorted list of currently registered locale names.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(providers))
	for n := range providers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// DefaultName returns the name of the locale Default() resolves to.
func DefaultName() string { return defaultOne }

// Get resolves a locale by name, memoizing the provider's result. Passing
// an empty string is equivalent to requesting DefaultName().
func Get(name string) (*Symbols, error) {
	if name == "" {
		name = defaultOne
	}
	registryMu.RLock()
	if s, ok := cache[name]; ok {
		registryMu.RUnlock()
		return s, nil
	}
	p, ok := providers[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrUnknownLocale.New(name)
	}

	sym, err := p(name)
	if err != nil {
		return nil, err
	}
	if sym.Name == "" {
		sym.Name = name
	}

	registryMu.Lock()
	cache[name] = sym
	registryMu.Unlock()
	return sym, nil
}
