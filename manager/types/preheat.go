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

package types

import (
	"time"

	pkgstrings "d7y.io/preheat/pkg/strings"
)

type PreheatParams struct {
	ID string `uri:"id" binding:"required"`
}

// CreatePreheatRequest carries the fields submitted by the client as is,
// semantic checks are left to the preheat validator.
type CreatePreheatRequest struct {
	// Type is the kind of preheat, like file or image.
	Type string `json:"type"`

	// URL is the absolute locator of the content.
	URL string `json:"url"`

	// Filter is the comma separated query parameter names ignored by the cache key.
	Filter string `json:"filter"`

	// Identifier is the optional idempotency key.
	Identifier string `json:"identifier"`

	// Headers are forwarded to the origin fetch, in submission order.
	Headers Headers `json:"headers"`
}

func (r *CreatePreheatRequest) HasFilter() bool {
	return !pkgstrings.IsBlank(r.Filter)
}

func (r *CreatePreheatRequest) HasIdentifier() bool {
	return !pkgstrings.IsBlank(r.Identifier)
}

func (r *CreatePreheatRequest) HasHeaders() bool {
	return len(r.Headers) > 0
}

type CreatePreheatResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Link      string    `json:"link"`
}

type GetPreheatResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
