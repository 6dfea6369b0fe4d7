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

package cache

import (
	"time"

	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"
)

var bucketName = []byte("compiled_patterns")

// CompiledPattern is the msgpack-serializable shape persisted for a Key: a
// compiled pattern's own Element list is cheap to recompute, so what's
// worth persisting across process restarts is the resolved pattern string
// a standard-pattern index folded to (string patterns round-trip as
// themselves; this mostly saves the pattern.Standard substitution work).
type CompiledPattern struct {
	ResolvedPattern string
	LocaleName      string
}

// Store persists compiled patterns to a boltdb/bolt file so a restarted
// process can skip re-resolving standard-pattern indices against a
// (possibly remote-fetched) locale pack.
type Store struct {
	db *bolt.DB
}

// OpenStore opens (creating if necessary) a bolt database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bolt database.
func (s *Store) Close() error { return s.db.Close() }

// Put persists the resolved pattern under key.String().
func (s *Store) Put(key Key, cp CompiledPattern) error {
	b, err := msgpack.Marshal(cp)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key.String()), b)
	})
}

// Get retrieves a previously persisted resolved pattern. ok is false if
// nothing is stored under key.
func (s *Store) Get(key Key) (cp CompiledPattern, ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key.String()))
		if raw == nil {
			return nil
		}
		ok = true
		return msgpack.Unmarshal(raw, &cp)
	})
	return cp, ok, err
}
