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

package service

import (
	"net/http"

	errorkit "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrMissingAPIKey is given when a request carries no X-API-Key header
	// at all, as distinct from one that was rejected for not matching.
	ErrMissingAPIKey = errorkit.NewKind("missing X-API-Key header")
	// ErrUnknownAPIKey is given when the supplied key does not match any
	// configured key.
	ErrUnknownAPIKey = errorkit.NewKind("unknown API key")
)

// KeyAuth checks requests against a fixed set of configured API keys. An
// empty set disables authentication entirely (every request is allowed) -
// the zero value is therefore safe for local development.
type KeyAuth struct {
	keys map[string]bool
}

// NewKeyAuth builds a KeyAuth from a configured key list.
func NewKeyAuth(keys []string) *KeyAuth {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return &KeyAuth{keys: m}
}

// Allowed checks the request's X-API-Key header against the configured
// set. When no keys are configured, every request is allowed.
func (a *KeyAuth) Allowed(r *http.Request) error {
	if len(a.keys) == 0 {
		return nil
	}
	key := r.Header.Get("X-API-Key")
	if key == "" {
		return ErrMissingAPIKey.New()
	}
	if !a.keys[key] {
		return ErrUnknownAPIKey.New()
	}
	return nil
}

// Middleware wraps next, rejecting unauthenticated requests with 401
// before they reach it.
func (a *KeyAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.Allowed(r); err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
