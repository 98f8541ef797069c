/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/pkg/types"
	"d7y.io/preheat/version"
)

// Variables declared for metrics.
var (
	PreheatCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "preheat_total",
		Help:      "Counter of the number of the preheat.",
	}, []string{"type"})

	PreheatFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "preheat_failure_total",
		Help:      "Counter of the number of failed of the preheat.",
	}, []string{"kind"})

	PreheatDuplicateCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "preheat_duplicate_total",
		Help:      "Counter of the number of the preheat collapsed onto an existing task.",
	}, []string{"type"})

	PreheatCancelCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "preheat_cancel_total",
		Help:      "Counter of the number of the preheat canceled after the request is abandoned.",
	})

	PreheatCancelFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "preheat_cancel_failure_total",
		Help:      "Counter of the number of failed of the preheat cancel.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ManagerMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
