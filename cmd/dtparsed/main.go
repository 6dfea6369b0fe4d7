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

// Command dtparsed runs the HTTP parse service described in
// github.com/icu4go/dtparse/service.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/icu4go/dtparse/observability"
	"github.com/icu4go/dtparse/service"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	log := logrus.New()

	cfg := service.DefaultConfig()
	if *configPath != "" {
		loaded, err := service.LoadConfig(*configPath)
		if err != nil {
			log.WithError(err).Fatal("loading configuration")
		}
		cfg = loaded
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	var statsd *observability.StatsdForwarder
	if addr := os.Getenv("DTPARSE_STATSD_ADDR"); addr != "" {
		forwarder, err := observability.NewStatsdForwarder(addr)
		if err != nil {
			log.WithError(err).Warn("statsd forwarder disabled: dial failed")
		} else {
			statsd = forwarder
		}
	}

	srv, err := service.NewServer(cfg, metrics, statsd, log)
	if err != nil {
		log.WithError(err).Fatal("building server")
	}
	defer srv.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", srv.Handler())

	log.WithField("addr", cfg.Addr).Info("dtparsed listening")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.WithError(err).Fatal("dtparsed server exited")
	}
}
