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

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"d7y.io/preheat/manager/middlewares"
	"d7y.io/preheat/manager/preheat"
	"d7y.io/preheat/manager/types"
)

// @Summary Create Preheat
// @Description create by json config
// @Tags Preheat
// @Accept json
// @Produce json
// @Param Preheat body types.CreatePreheatRequest true "Preheat"
// @Success 200 {object} types.CreatePreheatResponse
// @Failure 400 {object} middlewares.ErrorResponse
// @Failure 422 {object} middlewares.ErrorResponse
// @Failure 500
// @Failure 503 {object} middlewares.DispatchErrorResponse
// @Router /preheats [post]
func (h *Handlers) CreatePreheat(ctx *gin.Context) {
	var json types.CreatePreheatRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		var headerErr *types.HeaderDecodeError
		if errors.As(err, &headerErr) {
			ctx.Error(preheat.NewMalformedHeaderError(headerErr.Error())) // nolint: errcheck
			return
		}

		ctx.JSON(http.StatusUnprocessableEntity, middlewares.ErrorResponse{
			Kind:    middlewares.KindMalformedBody,
			Message: err.Error(),
		})
		return
	}

	resp, err := h.service.CreatePreheat(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// @Summary Get Preheat
// @Description Get Preheat by id
// @Tags Preheat
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} types.GetPreheatResponse
// @Failure 404
// @Failure 500
// @Failure 503 {object} middlewares.DispatchErrorResponse
// @Router /preheats/{id} [get]
func (h *Handlers) GetPreheat(ctx *gin.Context) {
	var params types.PreheatParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, middlewares.ErrorResponse{
			Kind:    middlewares.KindMalformedBody,
			Message: err.Error(),
		})
		return
	}

	resp, err := h.service.GetPreheat(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
