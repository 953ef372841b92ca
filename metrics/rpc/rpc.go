// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package rpc exposes Prometheus metrics about the outbound JSON-RPC calls to
// the fullnode.
package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rosetta"
const subsystem = "fullnode"

// Metrics counts upstream calls by method and outcome and tracks their
// duration.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the upstream call metrics and registers them with the default
// Prometheus registry.
func New() *Metrics {

	callOpts := prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "calls_total",
		Help:      "number of upstream JSON-RPC calls by method and result",
	}
	calls := promauto.NewCounterVec(callOpts, []string{"method", "result"})

	durationOpts := prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "call_duration_seconds",
		Help:      "duration of upstream JSON-RPC calls by method",
	}
	duration := promauto.NewHistogramVec(durationOpts, []string{"method"})

	m := Metrics{
		calls:    calls,
		duration: duration,
	}

	return &m
}

// Observe records the outcome of one upstream call.
func (m *Metrics) Observe(method string, success bool, duration time.Duration) {

	result := "success"
	if !success {
		result = "failure"
	}

	m.calls.WithLabelValues(method, result).Inc()
	m.duration.WithLabelValues(method).Observe(duration.Seconds())
}
