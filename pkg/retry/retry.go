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

package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Run calls f until it succeeds, cancels the retries or maxAttempts is reached.
// Backoff between attempts grows exponentially from initBackoff up to maxBackoff
// with jitter, in seconds.
func Run(ctx context.Context,
	initBackoff float64,
	maxBackoff float64,
	maxAttempts int,
	f func() (data any, cancel bool, err error)) (any, bool, error) {
	var (
		res    any
		cancel bool
		cause  error
	)
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			select {
			case <-time.After(RandBackoff(initBackoff, maxBackoff, 2.0, i)):
			case <-ctx.Done():
				return nil, cancel, ctx.Err()
			}
		}

		res, cancel, cause = f()
		if cause == nil || cancel {
			break
		}
	}

	return res, cancel, cause
}

// RandBackoff returns the jittered backoff of the attempt.
func RandBackoff(initBackoff, maxBackoff, factor float64, attempt int) time.Duration {
	backoff := math.Min(initBackoff*math.Pow(factor, float64(attempt)), maxBackoff)
	return time.Duration((backoff/2 + rand.Float64()*backoff/2) * float64(time.Second))
}
