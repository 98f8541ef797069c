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

package config

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultServerAddr is default listen address for rest server.
	DefaultServerAddr = ":8080"

	// DefaultServerShutdownTimeout is default timeout of graceful shutdown.
	DefaultServerShutdownTimeout = 10 * time.Second
)

const (
	// DefaultTelemetryServiceName is default service name of traces.
	DefaultTelemetryServiceName = "dragonfly-preheat"
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultRedisDB is default db for preheat reservations.
	DefaultRedisDB = 0

	// DefaultRedisBrokerDB is default db for job broker.
	DefaultRedisBrokerDB = 1

	// DefaultRedisBackendDB is default db for job backend.
	DefaultRedisBackendDB = 2
)

const (
	// DefaultJobPreheatRegistryTimeout is the default timeout for requesting registry to get token and manifest.
	DefaultJobPreheatRegistryTimeout = 1 * time.Minute

	// DefaultJobPreheatReservationTTL is the default lifetime of a preheat identifier, it follows the job results expiry.
	DefaultJobPreheatReservationTTL = 24 * time.Hour

	// DefaultJobPreheatCancelTimeout is the default timeout of canceling an abandoned preheat.
	DefaultJobPreheatCancelTimeout = 5 * time.Second
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)

const (
	AttributePreheatType       = attribute.Key("d7y.preheat.type")
	AttributePreheatURL        = attribute.Key("d7y.preheat.url")
	AttributePreheatIdentifier = attribute.Key("d7y.preheat.identifier")
	AttributePreheatGroupID    = attribute.Key("d7y.preheat.group.id")
)

const (
	SpanPreheat          = "preheat"
	SpanGetLayers        = "get-layers"
	SpanAuthWithRegistry = "auth-with-registry"
)
