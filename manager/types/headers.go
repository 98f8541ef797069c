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

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Header is a single submitted header.
type Header struct {
	Name  string
	Value string
}

// Headers keeps submitted headers in document order, duplicated names included.
type Headers []Header

// HeaderDecodeError is returned when the headers field is not an object of strings.
type HeaderDecodeError struct {
	Name    string
	Message string
}

func (e *HeaderDecodeError) Error() string {
	if e.Name == "" {
		return e.Message
	}

	return fmt.Sprintf("header %q %s", e.Name, e.Message)
}

func (h *Headers) UnmarshalJSON(data []byte) error {
	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		*h = nil
		return nil
	}

	if !result.IsObject() {
		return &HeaderDecodeError{Message: "headers must be an object"}
	}

	headers := Headers{}
	var decodeErr error
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			decodeErr = &HeaderDecodeError{Name: key.String(), Message: "value must be a string"}
			return false
		}

		headers = append(headers, Header{Name: key.String(), Value: value.String()})
		return true
	})
	if decodeErr != nil {
		return decodeErr
	}

	*h = headers
	return nil
}

func (h Headers) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, header := range h {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(header.Name)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(header.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
