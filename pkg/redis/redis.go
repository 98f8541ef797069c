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

package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	logger "d7y.io/preheat/internal/dflog"
)

const (
	// KeySeparator is the separator of redis key.
	KeySeparator = ":"
)

const (
	// PreheatNamespace prefix of preheat reservations key.
	PreheatNamespace = "preheat"
)

// NewRedis returns a new redis client, the server must be reachable.
func NewRedis(ctx context.Context, cfg *redis.UniversalOptions) (redis.UniversalClient, error) {
	redis.SetLogger(&redisLogger{})
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:      cfg.Addrs,
		MasterName: cfg.MasterName,
		DB:         cfg.DB,
		Username:   cfg.Username,
		Password:   cfg.Password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// IsEnabled check redis is enabled.
func IsEnabled(addrs []string) bool {
	return len(addrs) != 0
}

// MakeKey make key of the namespace.
func MakeKey(namespace, id string) string {
	return fmt.Sprintf("%s%s%s", namespace, KeySeparator, id)
}

// MakePreheatKey make reservation key of the preheat identifier.
func MakePreheatKey(id string) string {
	return MakeKey(PreheatNamespace, id)
}

type redisLogger struct{}

func (l *redisLogger) Printf(ctx context.Context, format string, v ...any) {
	logger.Debugf(format, v...)
}
