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
	"container/list"
	"sync"

	"github.com/CAFxX/gcnotifier"
)

// Builder constructs the value for a Key the cache has not seen yet.
// Builder is supplied by the caller (ordinarily something that wraps
// dtparse.New) so this package stays independent of the parser package.
type Builder func(key Key) (interface{}, error)

// Cache is a bounded, LRU-evicted memoization of Builder results, keyed by
// the structural hash of a Key. Besides the normal capacity-triggered
// eviction it also listens for GC notifications and proactively trims
// itself on a GC cycle - the compiled parsers it holds are cheap to
// rebuild, so holding onto cold entries across a GC is pure waste.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[uint64]*list.Element

	notifier *gcnotifier.GCNotifier
	stopCh   chan struct{}
}

type entry struct {
	hash  uint64
	key   Key
	value interface{}
}

// New returns a Cache holding at most capacity entries; a capacity of zero
// or less places no bound on the number of entries.
func New(capacity int) *Cache {
	c := &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[uint64]*list.Element, capacity),
		notifier: gcnotifier.New(),
		stopCh:   make(chan struct{}),
	}
	go c.watchGC()
	return c
}

func (c *Cache) watchGC() {
	for {
		select {
		case <-c.notifier.AfterGC():
			c.trimToHalf()
		case <-c.stopCh:
			c.notifier.Close()
			return
		}
	}
}

func (c *Cache) trimToHalf() {
	c.mu.Lock()
	defer c.mu.Unlock()
	target := c.capacity / 2
	for c.order.Len() > target {
		c.evictOldest()
	}
}

// Close stops the background GC watcher. Callers that build a long-lived
// Cache at process start should defer Close on shutdown.
func (c *Cache) Close() {
	close(c.stopCh)
}

// GetOrBuild returns the cached value for key, calling build to construct
// and cache it on a miss. hit reports whether the value was already
// cached, so callers can report cache-hit metrics without a separate
// lookup.
func (c *Cache) GetOrBuild(key Key, build Builder) (value interface{}, hit bool, err error) {
	h, err := key.hash()
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	if el, ok := c.entries[h]; ok {
		c.order.MoveToFront(el)
		v := el.Value.(*entry).value
		c.mu.Unlock()
		return v, true, nil
	}
	c.mu.Unlock()

	v, err := build(key)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[h]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry).value, true, nil
	}
	el := c.order.PushFront(&entry{hash: h, key: key, value: v})
	c.entries[h] = el
	if c.capacity > 0 && c.order.Len() > c.capacity {
		c.evictOldest()
	}
	return v, false, nil
}

func (c *Cache) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.entries, oldest.Value.(*entry).hash)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
