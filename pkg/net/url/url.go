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

package url

import (
	"net/url"
	"strings"
)

// FilterQuery excludes query string in url with filters,
// query names are matched case-insensitively. The remaining query pairs keep
// their order and encoding, so the result never depends on whether a filter is set.
func FilterQuery(rawURL string, filters []string) (string, error) {
	if len(filters) == 0 {
		return rawURL, nil
	}

	if _, err := url.Parse(rawURL); err != nil {
		return "", err
	}

	base, fragment := rawURL, ""
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base, fragment = base[:i], base[i:]
	}

	i := strings.IndexByte(base, '?')
	if i < 0 {
		return rawURL, nil
	}

	var pairs []string
	for _, pair := range strings.Split(base[i+1:], "&") {
		if pair == "" {
			continue
		}

		if !isFiltered(queryName(pair), filters) {
			pairs = append(pairs, pair)
		}
	}

	if len(pairs) == 0 {
		return base[:i] + fragment, nil
	}

	return base[:i] + "?" + strings.Join(pairs, "&") + fragment, nil
}

// queryName returns the unescaped name of the query pair.
func queryName(pair string) string {
	name, _, _ := strings.Cut(pair, "=")
	if unescaped, err := url.QueryUnescape(name); err == nil {
		return unescaped
	}

	return name
}

func isFiltered(name string, filters []string) bool {
	for _, filter := range filters {
		if strings.EqualFold(name, filter) {
			return true
		}
	}

	return false
}

// IsValid returns whether the string url is a valid URL.
func IsValid(str string) bool {
	u, err := url.Parse(str)
	return err == nil && u.Scheme != "" && u.Host != ""
}
