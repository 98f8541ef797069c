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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePreheatRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect func(t *testing.T, req CreatePreheatRequest, err error)
	}{
		{
			name: "headers keep submission order and duplicates",
			body: `{"type":"file","url":"http://a.com/x","filter":"b,a","headers":{"X-Foo":"1","x-foo":"2","Range":"bytes=0-1"}}`,
			expect: func(t *testing.T, req CreatePreheatRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("file", req.Type)
				assert.Equal("http://a.com/x", req.URL)
				assert.Equal("b,a", req.Filter)
				assert.Equal(Headers{
					{Name: "X-Foo", Value: "1"},
					{Name: "x-foo", Value: "2"},
					{Name: "Range", Value: "bytes=0-1"},
				}, req.Headers)
				assert.True(req.HasFilter())
				assert.True(req.HasHeaders())
				assert.False(req.HasIdentifier())
			},
		},
		{
			name: "headers are absent",
			body: `{"type":"file","url":"http://a.com/x"}`,
			expect: func(t *testing.T, req CreatePreheatRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Nil(req.Headers)
				assert.False(req.HasHeaders())
				assert.False(req.HasFilter())
			},
		},
		{
			name: "headers are null",
			body: `{"headers":null}`,
			expect: func(t *testing.T, req CreatePreheatRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Nil(req.Headers)
			},
		},
		{
			name: "headers are not an object",
			body: `{"headers":["a"]}`,
			expect: func(t *testing.T, req CreatePreheatRequest, err error) {
				assert := assert.New(t)
				var decodeErr *HeaderDecodeError
				assert.True(errors.As(err, &decodeErr))
				assert.EqualError(err, "headers must be an object")
			},
		},
		{
			name: "header value is not a string",
			body: `{"headers":{"x-foo":1}}`,
			expect: func(t *testing.T, req CreatePreheatRequest, err error) {
				assert := assert.New(t)
				var decodeErr *HeaderDecodeError
				assert.True(errors.As(err, &decodeErr))
				assert.Equal("x-foo", decodeErr.Name)
				assert.EqualError(err, `header "x-foo" value must be a string`)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req CreatePreheatRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			tc.expect(t, req, err)
		})
	}
}

func TestHeaders_MarshalJSON(t *testing.T) {
	assert := assert.New(t)

	b, err := json.Marshal(Headers{{Name: "b", Value: "1"}, {Name: "a", Value: "\"2\""}})
	assert.NoError(err)
	assert.Equal(`{"b":"1","a":"\"2\""}`, string(b))

	b, err = json.Marshal(Headers(nil))
	assert.NoError(err)
	assert.Equal("null", string(b))
}
