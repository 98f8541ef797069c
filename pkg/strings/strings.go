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

package strings

import (
	"sort"
	"strings"
)

// IsBlank determines whether the string is empty.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Contains reports whether the string contains the element.
func Contains(slice []string, ele string) bool {
	for _, one := range slice {
		if one == ele {
			return true
		}
	}

	return false
}

// Unique removes the duplicate elements in the string slice, keeping first occurrences.
func Unique(slice []string) []string {
	keys := make(map[string]bool)
	result := []string{}
	for _, entry := range slice {
		if _, ok := keys[entry]; !ok {
			keys[entry] = true
			result = append(result, entry)
		}
	}

	return result
}

// SortedUnique returns a sorted copy of slice without duplicates.
func SortedUnique(slice []string) []string {
	result := Unique(slice)
	sort.Strings(result)
	return result
}
