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

package service_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse/observability"
	"github.com/icu4go/dtparse/service"
)

func newTestServer(t *testing.T, cfg service.Config) (*service.Server, *observability.Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	srv, err := service.NewServer(cfg, metrics, nil, logrus.New())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })
	return srv, metrics
}

func doParse(t *testing.T, srv *service.Server, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/v1/parse", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestHandleParseSuccess(t *testing.T) {
	cfg := service.DefaultConfig()
	srv, _ := newTestServer(t, cfg)

	out := doParse(t, srv, map[string]interface{}{
		"pattern": "MM/dd/yyyy",
		"locale":  "en_US",
		"text":    "07/10/1996",
	})
	require.EqualValues(t, 10, out["consumed"])
	require.Contains(t, out["result"], "1996-07-10")
}

func TestHandleParseFailureReportsZeroConsumed(t *testing.T) {
	cfg := service.DefaultConfig()
	srv, _ := newTestServer(t, cfg)

	out := doParse(t, srv, map[string]interface{}{
		"pattern": "MM/dd/yyyy",
		"locale":  "en_US",
		"text":    "not-a-date",
	})
	require.EqualValues(t, 0, out["consumed"])
	require.NotEmpty(t, out["error"])
}

func TestHandleParseRepeatedRequestIncrementsCacheHits(t *testing.T) {
	cfg := service.DefaultConfig()
	srv, metrics := newTestServer(t, cfg)

	req := map[string]interface{}{"pattern": "MM/dd/yyyy", "locale": "en_US", "text": "07/10/1996"}
	doParse(t, srv, req)
	before := counterValue(t, metrics.CacheHitsTotal)

	doParse(t, srv, req)
	after := counterValue(t, metrics.CacheHitsTotal)

	require.Equal(t, before+1, after)
}

func TestHandleParseStandardIndexPersistsThroughStore(t *testing.T) {
	cfg := service.DefaultConfig()
	cfg.BoltPath = filepath.Join(t.TempDir(), "patterns.db")
	srv, _ := newTestServer(t, cfg)

	idx := 0
	out := doParse(t, srv, map[string]interface{}{
		"standard_index": idx,
		"locale":         "en_US",
		"text":           "7/10/96",
	})
	require.EqualValues(t, 7, out["consumed"])
}
