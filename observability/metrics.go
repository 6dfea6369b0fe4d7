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

// Package observability wires the parse service's two metrics sinks
// (an in-process Prometheus registry for scraping, and an optional
// DataDog statsd forwarder for environments that centralize metrics that
// way) and a tracing helper for per-request spans.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the Prometheus collector set for a running parse service.
type Metrics struct {
	ParsesTotal    *prometheus.CounterVec
	ParseDuration  prometheus.Histogram
	CacheHitsTotal prometheus.Counter
}

// NewMetrics constructs and registers a Metrics set against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ParsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dtparse",
			Name:      "parses_total",
			Help:      "Total number of Parse calls, partitioned by outcome.",
		}, []string{"outcome"}),
		ParseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dtparse",
			Name:      "parse_duration_seconds",
			Help:      "Parse call latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dtparse",
			Name:      "pattern_cache_hits_total",
			Help:      "Total number of compiled-pattern cache hits.",
		}),
	}
	reg.MustRegister(m.ParsesTotal, m.ParseDuration, m.CacheHitsTotal)
	return m
}

// ObserveSuccess records a successful parse of the given duration in
// seconds.
func (m *Metrics) ObserveSuccess(seconds float64) {
	m.ParsesTotal.WithLabelValues("success").Inc()
	m.ParseDuration.Observe(seconds)
}

// ObserveFailure records a failed parse of the given duration in seconds.
func (m *Metrics) ObserveFailure(seconds float64) {
	m.ParsesTotal.WithLabelValues("failure").Inc()
	m.ParseDuration.Observe(seconds)
}
