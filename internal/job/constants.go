/*
 *     Copyright 2020 The Dragonfly Authors
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

package job

import "time"

// Job Name.
const (
	// PreheatJob is the name of preheat job.
	PreheatJob = "preheat"
)

// Machinery server configuration.
const (
	DefaultResultsExpireIn     = 86400
	DefaultRedisMaxIdle        = 30
	DefaultRedisIdleTimeout    = 30
	DefaultRedisReadTimeout    = 60
	DefaultRedisWriteTimeout   = 60
	DefaultRedisConnectTimeout = 60
)

// DefaultPingTimeout is the timeout of pinging redis when creating job.
const DefaultPingTimeout = 5 * time.Second

// CanceledReason is the error message recorded for canceled tasks.
const CanceledReason = "canceled"
