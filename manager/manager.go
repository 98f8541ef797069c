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

package manager

import (
	"context"
	"errors"
	"net/http"

	logger "d7y.io/preheat/internal/dflog"
	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/manager/job"
	"d7y.io/preheat/manager/metrics"
	"d7y.io/preheat/manager/router"
	"d7y.io/preheat/manager/service"
)

type Server struct {
	// Server configuration
	config *config.Config

	// Job
	job *job.Job

	// REST server
	restServer *http.Server

	// Metrics server
	metricsServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize job
	j, err := job.New(cfg)
	if err != nil {
		return nil, err
	}
	s.job = j

	// Initialize REST server
	svc := service.New(j.Dispatcher, service.WithCancelTimeout(cfg.Job.Preheat.CancelTimeout))
	s.restServer = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.Init(cfg, svc),
	}

	// Initialize metrics server
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started metrics server
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if errors.Is(err, http.ErrServerClosed) {
					return
				}
				logger.Fatalf("metrics server closed unexpect: %v", err)
			}
		}()
	}

	// Started REST server
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		logger.Errorf("rest server closed unexpect: %v", err)
		return err
	}

	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	// Stop metrics server
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %v", err)
		}
		logger.Info("metrics server closed under request")
	}

	// Stop REST server
	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %v", err)
	}
	logger.Info("rest server closed under request")

	// Stop job
	if err := s.job.Stop(); err != nil {
		logger.Errorf("job failed to stop: %v", err)
	}
	logger.Info("job closed under request")
}
