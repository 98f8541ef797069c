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

package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"d7y.io/preheat/manager/preheat"
)

func mockErrorRouter(err error) *gin.Engine {
	r := gin.New()
	r.Use(Logger(), Error())
	r.GET("/", func(c *gin.Context) {
		if err != nil {
			c.Error(err)
			return
		}

		c.Status(http.StatusOK)
	})

	return r
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "no error",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "validation error",
			err: &preheat.ValidationError{
				Field:   preheat.FieldURL,
				Kind:    preheat.KindMissingField,
				Message: "url is required",
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.JSONEq(`{"field":"url","kind":"MissingField","message":"url is required"}`, w.Body.String())
			},
		},
		{
			name: "wrapped validation error",
			err: pkgerrors.Wrap(&preheat.ValidationError{
				Field:   preheat.FieldFilter,
				Kind:    preheat.KindMalformedFilter,
				Message: "foo",
			}, "create preheat"),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
				assert.JSONEq(`{"field":"filter","kind":"MalformedFilter","message":"foo"}`, w.Body.String())
			},
		},
		{
			name: "dispatch error",
			err:  preheat.NewDispatchError(errors.New("foo")),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, w.Code)
				assert.JSONEq(`{"kind":"DispatchUnavailable","message":"Service Unavailable"}`, w.Body.String())
			},
		},
		{
			name: "task not found",
			err:  preheat.ErrTaskNotFound,
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
		{
			name: "unknown error",
			err:  context.Canceled,
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
				assert.JSONEq(`{"message":"Internal Server Error"}`, w.Body.String())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mockErrorRouter(tc.err).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			tc.expect(t, w)
		})
	}
}
