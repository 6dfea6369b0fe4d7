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

package observability

import (
	"time"

	"github.com/DataDog/datadog-go/statsd"
)

// StatsdForwarder duplicates the Prometheus metrics onto a DataDog statsd
// endpoint, for deployments whose central dashboards already speak
// dogstatsd rather than scraping Prometheus. It is optional: a nil
// *StatsdForwarder's methods are no-ops.
type StatsdForwarder struct {
	client *statsd.Client
}

// NewStatsdForwarder dials addr (host:port of a dogstatsd agent).
func NewStatsdForwarder(addr string, tags ...string) (*StatsdForwarder, error) {
	c, err := statsd.New(addr, statsd.WithTags(tags))
	if err != nil {
		return nil, err
	}
	return &StatsdForwarder{client: c}, nil
}

func (f *StatsdForwarder) ParseOutcome(outcome string, d time.Duration) {
	if f == nil {
		return
	}
	_ = f.client.Incr("dtparse.parses_total", []string{"outcome:" + outcome}, 1)
	_ = f.client.Timing("dtparse.parse_duration", d, nil, 1)
}

func (f *StatsdForwarder) CacheHit() {
	if f == nil {
		return
	}
	_ = f.client.Incr("dtparse.pattern_cache_hits_total", nil, 1)
}

// Close flushes and closes the underlying statsd client.
func (f *StatsdForwarder) Close() error {
	if f == nil {
		return nil
	}
	return f.client.Close()
}
