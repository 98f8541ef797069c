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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"time"

	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/manager/preheat"
	"d7y.io/preheat/manager/types"
)

type Service interface {
	CreatePreheat(context.Context, types.CreatePreheatRequest) (*types.CreatePreheatResponse, error)
	GetPreheat(context.Context, string) (*types.GetPreheatResponse, error)
}

type service struct {
	dispatcher    preheat.Dispatcher
	cancelTimeout time.Duration
}

// Option is a functional option for service.
type Option func(s *service)

// WithCancelTimeout set the timeout of canceling an abandoned preheat.
func WithCancelTimeout(timeout time.Duration) Option {
	return func(s *service) {
		s.cancelTimeout = timeout
	}
}

// New returns a new Service instence.
func New(dispatcher preheat.Dispatcher, options ...Option) Service {
	s := &service{
		dispatcher:    dispatcher,
		cancelTimeout: config.DefaultJobPreheatCancelTimeout,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}
