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

package preheat

import (
	"d7y.io/preheat/manager/types"
	"d7y.io/preheat/pkg/digest"
	neturl "d7y.io/preheat/pkg/net/url"
)

// Normalize returns the canonical form of v, so that requests differing only in
// header name case or filter token order and case collapse to one representation.
// Normalize(Normalize(v)) equals Normalize(v).
func Normalize(v *ValidatedRequest) *ValidatedRequest {
	filter := v.Filter.Canonical()

	identifier := v.Identifier
	if identifier == "" {
		identifier = DeriveIdentifier(v.Type, v.URL, filter)
	}

	return &ValidatedRequest{
		Type:       v.Type,
		URL:        v.URL,
		Filter:     filter,
		Identifier: identifier,
		Headers:    v.Headers.clone(),
	}
}

// DeriveIdentifier returns the idempotency key of a preheat. The filtered query
// parameters are removed from the url first, so urls differing only in them
// share the key.
func DeriveIdentifier(typ Type, rawURL string, filter Filter) string {
	filter = filter.Canonical()

	u, err := neturl.FilterQuery(rawURL, filter.Tokens())
	if err != nil {
		u = rawURL
	}

	return digest.Sha256(typ.String(), u, filter.String())
}

// Canonicalize validates req and normalizes the result.
func Canonicalize(req *types.CreatePreheatRequest) (*ValidatedRequest, error) {
	v, err := Validate(req)
	if err != nil {
		return nil, err
	}

	return Normalize(v), nil
}
