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
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"d7y.io/preheat/manager/types"
	nethttp "d7y.io/preheat/pkg/net/http"
	pkgstrings "d7y.io/preheat/pkg/strings"
)

// AllowedSchemes are the url schemes accepted for preheat.
var AllowedSchemes = []string{"http", "https"}

// legacyFilterSeparator is accepted in submitted filters besides FilterSeparator.
const legacyFilterSeparator = "&"

// MaxIdentifierLength is the maximum length of a supplied identifier.
const MaxIdentifierLength = 128

var (
	filterTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	identifierPattern  = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)
)

// Validate checks the request field by field in the order type, url, filter,
// headers and identifier, and returns the first violation.
func Validate(req *types.CreatePreheatRequest) (*ValidatedRequest, error) {
	typ, err := validateType(req.Type)
	if err != nil {
		return nil, err
	}

	rawURL, err := validateURL(typ, req.URL)
	if err != nil {
		return nil, err
	}

	filter, err := ParseFilter(req.Filter)
	if err != nil {
		return nil, err
	}

	headers, err := validateHeaders(req.Headers)
	if err != nil {
		return nil, err
	}

	identifier, err := validateIdentifier(req.Identifier)
	if err != nil {
		return nil, err
	}

	return &ValidatedRequest{
		Type:       typ,
		URL:        rawURL,
		Filter:     filter,
		Identifier: identifier,
		Headers:    headers,
	}, nil
}

func validateType(raw string) (Type, error) {
	if pkgstrings.IsBlank(raw) {
		return "", newValidationError(FieldType, KindMissingField, "type is required")
	}

	typ, ok := ParseType(raw)
	if !ok {
		return "", newValidationError(FieldType, KindUnsupportedType, "type %q is not supported", raw)
	}

	return typ, nil
}

func validateURL(typ Type, raw string) (string, error) {
	if pkgstrings.IsBlank(raw) {
		return "", newValidationError(FieldURL, KindMissingField, "url is required")
	}

	raw = strings.TrimSpace(raw)
	if strings.IndexFunc(raw, isInvalidURLRune) >= 0 {
		return "", newValidationError(FieldURL, KindMalformedURL, "url %q contains invalid characters", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", newValidationError(FieldURL, KindMalformedURL, "url %q can not be parsed", raw)
	}

	if !u.IsAbs() {
		return "", newValidationError(FieldURL, KindMalformedURL, "url %q is not absolute", raw)
	}

	if !pkgstrings.Contains(AllowedSchemes, strings.ToLower(u.Scheme)) {
		return "", newValidationError(FieldURL, KindMalformedURL, "url scheme %q is not supported", u.Scheme)
	}

	if u.Host == "" {
		return "", newValidationError(FieldURL, KindMalformedURL, "url %q has no host", raw)
	}

	if typ == TypeImage {
		if _, err := ParseImageURL(raw); err != nil {
			return "", newValidationError(FieldURL, KindMalformedURL, "url %q is not an image manifest url", raw)
		}
	}

	return raw, nil
}

// isInvalidURLRune reports runes that must be percent-encoded in an absolute uri.
func isInvalidURLRune(r rune) bool {
	return r > unicode.MaxASCII || unicode.IsSpace(r) || unicode.IsControl(r)
}

// ParseFilter splits the submitted filter into tokens, keeping submission order.
// A blank filter is empty.
func ParseFilter(raw string) (Filter, error) {
	if pkgstrings.IsBlank(raw) {
		return Filter{}, nil
	}

	fields := strings.Split(strings.ReplaceAll(raw, legacyFilterSeparator, FilterSeparator), FilterSeparator)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.TrimSpace(field)
		if token == "" {
			return Filter{}, newValidationError(FieldFilter, KindMalformedFilter, "filter %q has an empty token", raw)
		}

		if !filterTokenPattern.MatchString(token) {
			return Filter{}, newValidationError(FieldFilter, KindMalformedFilter, "filter token %q is invalid", token)
		}

		tokens = append(tokens, token)
	}

	return Filter{tokens: tokens}, nil
}

func validateHeaders(raw types.Headers) (Headers, error) {
	var headers Headers
	for _, header := range raw {
		if header.Name == "" {
			return Headers{}, newValidationError(FieldHeaders, KindMalformedHeader, "header name is empty")
		}

		if !nethttp.IsValidHeaderName(header.Name) {
			return Headers{}, newValidationError(FieldHeaders, KindMalformedHeader, "header name %q is invalid", header.Name)
		}

		if header.Value == "" {
			return Headers{}, newValidationError(FieldHeaders, KindMalformedHeader, "header %q value is empty", header.Name)
		}

		if !nethttp.IsValidHeaderValue(header.Value) {
			return Headers{}, newValidationError(FieldHeaders, KindMalformedHeader, "header %q value is invalid", header.Name)
		}

		headers.Set(header.Name, header.Value)
	}

	return headers, nil
}

func validateIdentifier(raw string) (string, error) {
	if pkgstrings.IsBlank(raw) {
		return "", nil
	}

	if len(raw) > MaxIdentifierLength {
		return "", newValidationError(FieldIdentifier, KindMalformedIdentifier, "identifier is longer than %d characters", MaxIdentifierLength)
	}

	if !identifierPattern.MatchString(raw) {
		return "", newValidationError(FieldIdentifier, KindMalformedIdentifier, "identifier %q is invalid", raw)
	}

	return raw, nil
}
