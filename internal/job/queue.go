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

import (
	"errors"
	"fmt"
)

type Queue string

const (
	GlobalQueue     Queue = "global"
	SchedulersQueue Queue = "schedulers"
)

// GetSchedulerQueue returns the queue consumed by a single scheduler.
func GetSchedulerQueue(clusterID uint, hostname string) (Queue, error) {
	if clusterID == 0 {
		return Queue(""), errors.New("empty cluster id config is not specified")
	}

	if hostname == "" {
		return Queue(""), errors.New("empty hostname config is not specified")
	}

	return Queue(fmt.Sprintf("scheduler_%d_%s", clusterID, hostname)), nil
}

func (q Queue) String() string {
	return string(q)
}
