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
	"net/http"
	"sort"
	"strings"

	nethttp "d7y.io/preheat/pkg/net/http"
	pkgstrings "d7y.io/preheat/pkg/strings"
)

// Type is the kind of preheat.
type Type string

const (
	// TypeFile preheats a single file.
	TypeFile Type = "file"

	// TypeImage preheats every layer of an image manifest.
	TypeImage Type = "image"
)

// Types is the closed set of supported preheat kinds.
var Types = []Type{TypeFile, TypeImage}

// ParseType returns the preheat type named by s, matching case-insensitively.
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types {
		if string(t) == s {
			return t, true
		}
	}

	return "", false
}

func (t Type) String() string {
	return string(t)
}

// FilterSeparator joins canonical filter tokens.
const FilterSeparator = ","

// Filter is an ordered set of query parameter names ignored by the cache key.
type Filter struct {
	tokens []string
}

// Tokens returns a copy of the filter tokens.
func (f Filter) Tokens() []string {
	if len(f.tokens) == 0 {
		return nil
	}

	tokens := make([]string, len(f.tokens))
	copy(tokens, f.tokens)
	return tokens
}

func (f Filter) Len() int {
	return len(f.tokens)
}

func (f Filter) String() string {
	return strings.Join(f.tokens, FilterSeparator)
}

// Canonical returns the lower-cased, de-duplicated and sorted filter.
func (f Filter) Canonical() Filter {
	if len(f.tokens) == 0 {
		return Filter{}
	}

	tokens := make([]string, 0, len(f.tokens))
	for _, token := range f.tokens {
		tokens = append(tokens, strings.ToLower(strings.TrimSpace(token)))
	}

	return Filter{tokens: pkgstrings.SortedUnique(tokens)}
}

// Headers maps lower-cased header names to values, names are unique by construction.
type Headers struct {
	values map[string]string
}

// Set stores value under the lower-cased name, replacing any previous value.
func (h *Headers) Set(name, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}

	h.values[strings.ToLower(name)] = value
}

// Get returns the value of name, matching case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	v, ok := h.values[strings.ToLower(name)]
	return v, ok
}

func (h Headers) Len() int {
	return len(h.values)
}

// Names returns the sorted header names.
func (h Headers) Names() []string {
	names := make([]string, 0, len(h.values))
	for name := range h.values {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Map returns a copy of the headers.
func (h Headers) Map() map[string]string {
	m := make(map[string]string, len(h.values))
	for k, v := range h.values {
		m[k] = v
	}

	return m
}

// HTTPHeader converts headers for the origin fetch.
func (h Headers) HTTPHeader() http.Header {
	return nethttp.MapToHeader(h.values)
}

// clone copies h, an empty result carries no map.
func (h Headers) clone() Headers {
	if len(h.values) == 0 {
		return Headers{}
	}

	var c Headers
	for k, v := range h.values {
		c.Set(k, v)
	}

	return c
}

// ValidatedRequest is a preheat request whose every field is well-formed.
type ValidatedRequest struct {
	Type       Type
	URL        string
	Filter     Filter
	Identifier string
	Headers    Headers
}
