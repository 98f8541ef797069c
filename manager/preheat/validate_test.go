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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/preheat/manager/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    *types.CreatePreheatRequest
		expect func(t *testing.T, v *ValidatedRequest, err error)
	}{
		{
			name: "file request",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http://a.com/x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(TypeFile, v.Type)
				assert.Equal("http://a.com/x", v.URL)
				assert.Equal(0, v.Filter.Len())
				assert.Equal(0, v.Headers.Len())
				assert.Empty(v.Identifier)
			},
		},
		{
			name: "type matches case-insensitively",
			req: &types.CreatePreheatRequest{
				Type: " FILE ",
				URL:  "HTTPS://a.com/x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(TypeFile, v.Type)
			},
		},
		{
			name: "image request",
			req: &types.CreatePreheatRequest{
				Type: "image",
				URL:  "https://registry.example.com/v2/library/alpine/manifests/3.16",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(TypeImage, v.Type)
			},
		},
		{
			name: "type is missing",
			req: &types.CreatePreheatRequest{
				URL: "http://a.com/x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldType, KindMissingField)
			},
		},
		{
			name: "type is not supported",
			req: &types.CreatePreheatRequest{
				Type: "directory",
				URL:  "http://a.com/x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldType, KindUnsupportedType)
			},
		},
		{
			name: "url is missing",
			req: &types.CreatePreheatRequest{
				Type:   "file",
				Filter: "a",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMissingField)
			},
		},
		{
			name: "url is missing and filter is malformed",
			req: &types.CreatePreheatRequest{
				Type:   "file",
				URL:    "  ",
				Filter: "a,,b!",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMissingField)
			},
		},
		{
			name: "url is not absolute",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "not-a-url",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "url can not be parsed",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http://a.com/%zz",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "url contains space",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http://a.com/x y",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "url contains control character",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http://a.com/x\ty",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "url contains escaped space",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http://a.com/x%20y",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("http://a.com/x%20y", v.URL)
			},
		},
		{
			name: "url scheme is not allowed",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "ftp://a.com/x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "url has no host",
			req: &types.CreatePreheatRequest{
				Type: "file",
				URL:  "http:///x",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "image url is not a manifest url",
			req: &types.CreatePreheatRequest{
				Type: "image",
				URL:  "https://registry.example.com/library/alpine",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldURL, KindMalformedURL)
			},
		},
		{
			name: "filter has an empty token",
			req: &types.CreatePreheatRequest{
				Type:   "file",
				URL:    "http://a.com/x",
				Filter: "a,,b",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldFilter, KindMalformedFilter)
			},
		},
		{
			name: "filter has an invalid token",
			req: &types.CreatePreheatRequest{
				Type:   "file",
				URL:    "http://a.com/x",
				Filter: "a,b=c",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldFilter, KindMalformedFilter)
			},
		},
		{
			name: "header name is invalid",
			req: &types.CreatePreheatRequest{
				Type:    "file",
				URL:     "http://a.com/x",
				Headers: types.Headers{{Name: "X:Foo", Value: "1"}},
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldHeaders, KindMalformedHeader)
			},
		},
		{
			name: "header name is empty",
			req: &types.CreatePreheatRequest{
				Type:    "file",
				URL:     "http://a.com/x",
				Headers: types.Headers{{Name: "", Value: "1"}},
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldHeaders, KindMalformedHeader)
			},
		},
		{
			name: "header value is empty",
			req: &types.CreatePreheatRequest{
				Type:    "file",
				URL:     "http://a.com/x",
				Headers: types.Headers{{Name: "X-Foo", Value: ""}},
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldHeaders, KindMalformedHeader)
			},
		},
		{
			name: "header value has control characters",
			req: &types.CreatePreheatRequest{
				Type:    "file",
				URL:     "http://a.com/x",
				Headers: types.Headers{{Name: "X-Foo", Value: "a\nb"}},
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldHeaders, KindMalformedHeader)
			},
		},
		{
			name: "filter is checked before headers",
			req: &types.CreatePreheatRequest{
				Type:    "file",
				URL:     "http://a.com/x",
				Filter:  "a,",
				Headers: types.Headers{{Name: "X:Foo", Value: "1"}},
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldFilter, KindMalformedFilter)
			},
		},
		{
			name: "identifier is too long",
			req: &types.CreatePreheatRequest{
				Type:       "file",
				URL:        "http://a.com/x",
				Identifier: strings.Repeat("a", MaxIdentifierLength+1),
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldIdentifier, KindMalformedIdentifier)
			},
		},
		{
			name: "identifier is invalid",
			req: &types.CreatePreheatRequest{
				Type:       "file",
				URL:        "http://a.com/x",
				Identifier: "foo bar",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assertValidationError(t, err, FieldIdentifier, KindMalformedIdentifier)
			},
		},
		{
			name: "identifier is kept",
			req: &types.CreatePreheatRequest{
				Type:       "file",
				URL:        "http://a.com/x",
				Identifier: "release-1.0:alpine",
			},
			expect: func(t *testing.T, v *ValidatedRequest, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("release-1.0:alpine", v.Identifier)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Validate(tc.req)
			tc.expect(t, v, err)
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect func(t *testing.T, f Filter, err error)
	}{
		{
			name: "blank filter",
			raw:  "  ",
			expect: func(t *testing.T, f Filter, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(0, f.Len())
				assert.Nil(f.Tokens())
			},
		},
		{
			name: "tokens keep submission order",
			raw:  "b, a ,C",
			expect: func(t *testing.T, f Filter, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"b", "a", "C"}, f.Tokens())
			},
		},
		{
			name: "legacy separator",
			raw:  "Expires&Signature,x-id",
			expect: func(t *testing.T, f Filter, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{"Expires", "Signature", "x-id"}, f.Tokens())
			},
		},
		{
			name: "trailing separator",
			raw:  "a,",
			expect: func(t *testing.T, f Filter, err error) {
				assertValidationError(t, err, FieldFilter, KindMalformedFilter)
			},
		},
		{
			name: "token has dots",
			raw:  "a.b",
			expect: func(t *testing.T, f Filter, err error) {
				assertValidationError(t, err, FieldFilter, KindMalformedFilter)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseFilter(tc.raw)
			tc.expect(t, f, err)
		})
	}
}

func TestParseImageURL(t *testing.T) {
	assert := assert.New(t)

	image, err := ParseImageURL("https://registry.example.com/v2/library/alpine/manifests/3.16")
	assert.NoError(err)
	assert.Equal(&ImageReference{
		Protocol:  "https",
		Domain:    "registry.example.com",
		Name:      "library/alpine",
		Reference: "3.16",
	}, image)
	assert.Equal("https://registry.example.com/v2/library/alpine/blobs/sha256:abc", image.LayerURL("sha256:abc"))

	_, err = ParseImageURL("https://registry.example.com/v2/library/alpine/manifests/")
	assert.Error(err)

	_, err = ParseImageURL("https://registry.example.com/library/alpine")
	assert.Error(err)
}

func assertValidationError(t *testing.T, err error, field string, kind ErrorKind) {
	t.Helper()

	validationErr, ok := AsValidationError(err)
	if assert.True(t, ok, "expected validation error, got %v", err) {
		assert.Equal(t, field, validationErr.Field)
		assert.Equal(t, kind, validationErr.Kind)
		assert.NotEmpty(t, validationErr.Message)
	}
}
