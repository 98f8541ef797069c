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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	logger "d7y.io/preheat/internal/dflog"
	"d7y.io/preheat/manager/preheat"
)

// KindMalformedBody is reported when the request body can not be decoded.
const KindMalformedBody = "MalformedBody"

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// DispatchErrorResponse is the body of a request the task service could not accept.
type DispatchErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		cause := errors.Cause(err.Err)

		// Validation error handler
		if validationErr, ok := preheat.AsValidationError(cause); ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Field:   validationErr.Field,
				Kind:    string(validationErr.Kind),
				Message: validationErr.Message,
			})
			return
		}

		// Dispatch error handler
		if preheat.IsDispatchUnavailable(cause) {
			logger.GinLogger.Errorf("dispatch preheat failed: %v", cause)
			c.JSON(http.StatusServiceUnavailable, DispatchErrorResponse{
				Kind:    string(preheat.KindDispatchUnavailable),
				Message: http.StatusText(http.StatusServiceUnavailable),
			})
			return
		}

		// Not found handler
		if errors.Is(cause, preheat.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Unknown error
		logger.GinLogger.Errorf("unknown error: %v", cause)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": http.StatusText(http.StatusInternalServerError),
		})
	}
}
