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

// PreheatRequest defines the arguments of a preheat job consumed by schedulers.
type PreheatRequest struct {
	Type                string            `json:"type"`
	URL                 string            `json:"url"`
	Digest              string            `json:"digest,omitempty"`
	FilteredQueryParams string            `json:"filtered_query_params,omitempty"`
	Identifier          string            `json:"identifier"`
	Headers             map[string]string `json:"headers,omitempty"`
}
