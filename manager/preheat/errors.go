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
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned when no task is known under the identifier.
var ErrTaskNotFound = errors.New("preheat task not found")

// ErrorKind classifies preheat failures.
type ErrorKind string

const (
	// KindMissingField is reported when a required field is blank.
	KindMissingField ErrorKind = "MissingField"

	// KindUnsupportedType is reported when type is not a known preheat kind.
	KindUnsupportedType ErrorKind = "UnsupportedType"

	// KindMalformedURL is reported when url is not an absolute http(s) locator.
	KindMalformedURL ErrorKind = "MalformedURL"

	// KindMalformedFilter is reported when a filter token breaks the token grammar.
	KindMalformedFilter ErrorKind = "MalformedFilter"

	// KindMalformedHeader is reported when a header name or value is invalid.
	KindMalformedHeader ErrorKind = "MalformedHeader"

	// KindMalformedIdentifier is reported when a supplied identifier breaks the identifier grammar.
	KindMalformedIdentifier ErrorKind = "MalformedIdentifier"

	// KindDispatchUnavailable is reported when the task service can not accept the preheat.
	KindDispatchUnavailable ErrorKind = "DispatchUnavailable"
)

// Request field names reported by ValidationError.
const (
	FieldType       = "type"
	FieldURL        = "url"
	FieldFilter     = "filter"
	FieldHeaders    = "headers"
	FieldIdentifier = "identifier"
)

// ValidationError is a single-cause rejection of a preheat request,
// it is surfaced to the client verbatim and never retried.
type ValidationError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newValidationError(field string, kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewMalformedHeaderError returns a MalformedHeader rejection, it is used when
// headers can not even be decoded.
func NewMalformedHeaderError(message string) *ValidationError {
	return newValidationError(FieldHeaders, KindMalformedHeader, "%s", message)
}

// DispatchError wraps a failure of the external task service.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %v", KindDispatchUnavailable, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// NewDispatchError wraps err as DispatchUnavailable, a nil err stays nil.
func NewDispatchError(err error) error {
	if err == nil {
		return nil
	}

	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		return err
	}

	return &DispatchError{Err: err}
}

// AsValidationError returns the ValidationError in err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}

// IsDispatchUnavailable reports whether err comes from the task service.
func IsDispatchUnavailable(err error) bool {
	var dispatchErr *DispatchError
	return errors.As(err, &dispatchErr)
}
