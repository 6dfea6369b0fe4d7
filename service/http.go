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
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/icu4go/dtparse"
	"github.com/icu4go/dtparse/cache"
	"github.com/icu4go/dtparse/locale"
	"github.com/icu4go/dtparse/observability"
	"github.com/icu4go/dtparse/pattern"
)

// Server wires a parse cache, the locale registry and observability sinks
// into a gorilla/mux router.
type Server struct {
	cfg     Config
	cache   *cache.Cache
	store   *cache.Store
	metrics *observability.Metrics
	statsd  *observability.StatsdForwarder
	auth    *KeyAuth
	log     *logrus.Logger

	router *mux.Router
}

// NewServer builds a Server from cfg. metrics must already be registered
// against a Prometheus registerer by the caller; statsd may be nil. If
// cfg.BoltPath is set, NewServer opens (creating if necessary) a bolt
// store there to persist standard-pattern resolutions across restarts.
func NewServer(cfg Config, metrics *observability.Metrics, statsd *observability.StatsdForwarder, log *logrus.Logger) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		cache:   cache.New(cfg.CacheCapacity),
		metrics: metrics,
		statsd:  statsd,
		auth:    NewKeyAuth(cfg.APIKeys),
		log:     log,
	}

	if cfg.BoltPath != "" {
		store, err := cache.OpenStore(cfg.BoltPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening pattern store")
		}
		s.store = store
	}

	if cfg.LocaleRemoteBaseURL != "" {
		_ = locale.Register("remote", locale.RemoteProvider(cfg.LocaleRemoteBaseURL))
	}
	if cfg.LocaleFilePath != "" {
		name := cfg.LocaleFileName
		if name == "" {
			name = "file"
		}
		var provider locale.Provider
		if cfg.LocaleFileFormat == "toml" {
			provider = locale.TOMLFileProvider(cfg.LocaleFilePath)
		} else {
			provider = locale.YAMLFileProvider(cfg.LocaleFilePath)
		}
		_ = locale.Register(name, provider)
	}

	r := mux.NewRouter()
	r.Handle("/v1/parse", s.auth.Middleware(http.HandlerFunc(s.handleParse))).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router = r
	return s, nil
}

// Handler returns the fully wrapped HTTP handler: gorilla/handlers applies
// combined access logging and panic recovery around the router.
func (s *Server) Handler() http.Handler {
	return handlers.CombinedLoggingHandler(s.log.Writer(),
		handlers.RecoveryHandler()(s.router))
}

type parseRequest struct {
	Pattern string `json:"pattern"`
	// StandardIndex, when set, selects one of the twelve standard
	// patterns (see pattern.Standard) instead of Pattern; the resolved
	// pattern string is cached in the server's bolt store, if any, so a
	// restarted process does not re-resolve it against the locale pack.
	StandardIndex *int   `json:"standard_index,omitempty"`
	Locale        string `json:"locale"`
	Text          string `json:"text"`
	Base          string `json:"base,omitempty"` // RFC3339 baseline instant; defaults to now
	Strict        bool   `json:"strict,omitempty"`
}

type parseResponse struct {
	Consumed int    `json:"consumed"`
	Result   string `json:"result,omitempty"` // RFC3339 on success
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, parseResponse{Error: errors.Wrap(err, "decoding request body").Error()})
		return
	}

	sym, err := locale.Get(req.Locale)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, parseResponse{Error: err.Error()})
		return
	}

	patternArg := req.Pattern
	if req.StandardIndex != nil {
		patternArg = s.resolveStandardPattern(*req.StandardIndex, req.Locale, sym)
	}

	key := cache.Key{Pattern: patternArg, Locale: req.Locale}
	built, hit, err := s.cache.GetOrBuild(key, func(cache.Key) (interface{}, error) {
		return dtparse.New(patternArg, dtparse.WithLocale(sym), dtparse.WithCenturyWindow(s.cfg.CenturyWindowYears)), nil
	})
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, parseResponse{Error: err.Error()})
		return
	}
	if hit {
		if s.metrics != nil {
			s.metrics.CacheHitsTotal.Inc()
		}
		s.statsd.CacheHit()
	}
	parser := built.(*dtparse.Parser)

	base := time.Now().UTC()
	if req.Base != "" {
		if parsed, err := time.Parse(time.RFC3339, req.Base); err == nil {
			base = parsed.UTC()
		}
	}
	date := dtparse.NewTimeValue(base)

	var opts []dtparse.ParseOption
	if req.Strict {
		opts = append(opts, dtparse.WithValidate(true))
	}

	span, _ := observability.StartParseSpan(r.Context(), patternArg)

	consumed := parser.Parse(req.Text, date, opts...)
	observability.TagOutcome(span, consumed)
	span.Finish()

	elapsed := time.Since(start).Seconds()

	if consumed == 0 {
		if s.metrics != nil {
			s.metrics.ObserveFailure(elapsed)
		}
		s.statsd.ParseOutcome("failure", time.Since(start))
		s.writeJSON(w, http.StatusUnprocessableEntity, parseResponse{Consumed: 0, Error: "parse failed"})
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveSuccess(elapsed)
	}
	s.statsd.ParseOutcome("success", time.Since(start))
	s.writeJSON(w, http.StatusOK, parseResponse{
		Consumed: consumed,
		Result:   date.Time().Format(time.RFC3339),
	})
}

// resolveStandardPattern resolves a standard-pattern index against sym,
// consulting and populating the bolt store (if configured) so the
// resolution survives a process restart without refetching or
// re-walking a remote locale pack.
func (s *Server) resolveStandardPattern(index int, localeName string, sym *locale.Symbols) string {
	key := cache.Key{Pattern: index, Locale: localeName}
	if s.store != nil {
		if cp, ok, err := s.store.Get(key); err == nil && ok {
			return cp.ResolvedPattern
		}
	}

	resolved := pattern.Standard(index, sym)
	if s.store != nil {
		_ = s.store.Put(key, cache.CompiledPattern{ResolvedPattern: resolved, LocaleName: localeName})
	}
	return resolved
}

// Close releases the server's background resources: the compiled-pattern
// cache's GC watcher, the bolt store (if any) and the statsd forwarder's
// connection. All are closed even if one fails, and the failures are
// aggregated rather than only reporting the first.
func (s *Server) Close() error {
	var result *multierror.Error
	if s.cache != nil {
		s.cache.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := s.statsd.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed writing json response")
	}
}
