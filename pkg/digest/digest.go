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

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// fieldSeparator is written between values so that ("ab", "c")
// and ("a", "bc") produce different digests.
const fieldSeparator = 0x00

// Sha256 returns the hex encoded sha256 of the values,
// empty values are still significant.
func Sha256(values ...string) string {
	if len(values) == 0 {
		return ""
	}

	h := sha256.New()
	for i, content := range values {
		if i > 0 {
			h.Write([]byte{fieldSeparator})
		}

		if _, err := h.Write([]byte(content)); err != nil {
			return ""
		}
	}

	return ToHashString(h)
}

// ToHashString returns the hex encoded sum of h.
func ToHashString(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
