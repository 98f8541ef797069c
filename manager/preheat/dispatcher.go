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

//go:generate mockgen -destination mocks/dispatcher_mock.go -source dispatcher.go -package mocks

package preheat

import (
	"context"
	"time"
)

// Task states reported by TaskHandle.
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// TaskHandle references a preheat task created by the task service.
type TaskHandle struct {
	// ID is the identifier of the preheat, it is also the status query key.
	ID string

	// Status is the aggregated state of the task.
	Status string

	// CreatedAt is the creation time of the task.
	CreatedAt time.Time

	// Created is false when the submission collapsed onto an existing task.
	Created bool
}

// Dispatcher is the contract of the external task service. Only canonical
// requests cross it.
type Dispatcher interface {
	// Submit creates the preheat task, or returns the existing task with the same identifier.
	Submit(context.Context, *ValidatedRequest) (*TaskHandle, error)

	// Cancel requests a best-effort cancellation of the task.
	Cancel(context.Context, string) error

	// Status returns the task referenced by the identifier.
	Status(context.Context, string) (*TaskHandle, error)
}
