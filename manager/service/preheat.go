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

package service

import (
	"context"
	"fmt"

	logger "d7y.io/preheat/internal/dflog"
	"d7y.io/preheat/manager/metrics"
	"d7y.io/preheat/manager/preheat"
	"d7y.io/preheat/manager/types"
)

// PreheatsPath is the path of preheat status queries.
const PreheatsPath = "/api/v1/preheats"

// submitResult is the acknowledgment of the task service.
type submitResult struct {
	handle *preheat.TaskHandle
	err    error
}

func (s *service) CreatePreheat(ctx context.Context, json types.CreatePreheatRequest) (*types.CreatePreheatResponse, error) {
	req, err := preheat.Canonicalize(&json)
	if err != nil {
		if validationErr, ok := preheat.AsValidationError(err); ok {
			metrics.PreheatFailureCount.WithLabelValues(string(validationErr.Kind)).Inc()
		}

		return nil, err
	}
	metrics.PreheatCount.WithLabelValues(req.Type.String()).Inc()

	handle, err := s.submit(ctx, req)
	if err != nil {
		if preheat.IsDispatchUnavailable(err) {
			metrics.PreheatFailureCount.WithLabelValues(string(preheat.KindDispatchUnavailable)).Inc()
		}

		return nil, err
	}

	if !handle.Created {
		metrics.PreheatDuplicateCount.WithLabelValues(req.Type.String()).Inc()
	}

	return &types.CreatePreheatResponse{
		ID:        handle.ID,
		Status:    handle.Status,
		CreatedAt: handle.CreatedAt,
		Link:      preheatLink(handle.ID),
	}, nil
}

func (s *service) GetPreheat(ctx context.Context, id string) (*types.GetPreheatResponse, error) {
	handle, err := s.dispatcher.Status(ctx, id)
	if err != nil {
		return nil, err
	}

	return &types.GetPreheatResponse{
		ID:        handle.ID,
		Status:    handle.Status,
		CreatedAt: handle.CreatedAt,
	}, nil
}

// submit hands the request to the task service. When ctx is done before the
// acknowledgment, a task created by this submission is canceled once it is acknowledged.
func (s *service) submit(ctx context.Context, req *preheat.ValidatedRequest) (*preheat.TaskHandle, error) {
	done := make(chan submitResult, 1)
	go func() {
		handle, err := s.dispatcher.Submit(ctx, req)
		done <- submitResult{handle: handle, err: err}
	}()

	select {
	case result := <-done:
		return result.handle, result.err
	case <-ctx.Done():
		logger.WithPreheat(req.Identifier, req.URL).Warnf("preheat is abandoned before acknowledgment: %v", ctx.Err())
		go s.cancelAbandoned(req, done)
		return nil, ctx.Err()
	}
}

// cancelAbandoned waits for the acknowledgment of an abandoned submission,
// only the submission that created the task cancels it.
func (s *service) cancelAbandoned(req *preheat.ValidatedRequest, done <-chan submitResult) {
	log := logger.WithPreheat(req.Identifier, req.URL)

	result := <-done
	if result.err != nil || result.handle == nil || !result.handle.Created {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cancelTimeout)
	defer cancel()

	metrics.PreheatCancelCount.Inc()
	if err := s.dispatcher.Cancel(ctx, result.handle.ID); err != nil {
		metrics.PreheatCancelFailureCount.Inc()
		log.Errorf("cancel abandoned preheat failed: %v", err)
		return
	}

	log.Info("abandoned preheat is canceled")
}

func preheatLink(id string) string {
	return fmt.Sprintf("%s/%s", PreheatsPath, id)
}
