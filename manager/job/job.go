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

package job

import (
	"context"
	"crypto/x509"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"

	internaljob "d7y.io/preheat/internal/job"
	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/manager/preheat"
	pkgredis "d7y.io/preheat/pkg/redis"
	"d7y.io/preheat/pkg/types"
)

// tracer is a global tracer for job.
var tracer = otel.Tracer("manager")

// Job is an implementation of job.
type Job struct {
	*internaljob.Job
	preheat.Dispatcher
	rdb redis.UniversalClient
}

// New returns a new Job.
func New(cfg *config.Config) (*Job, error) {
	j, err := internaljob.New(&internaljob.Config{
		Addrs:      cfg.Redis.Addrs,
		MasterName: cfg.Redis.MasterName,
		Username:   cfg.Redis.Username,
		Password:   cfg.Redis.Password,
		BrokerDB:   cfg.Redis.BrokerDB,
		BackendDB:  cfg.Redis.BackendDB,
	}, internaljob.GlobalQueue)
	if err != nil {
		return nil, err
	}

	queues, err := getSchedulerQueues(cfg.Job.Preheat.Schedulers)
	if err != nil {
		return nil, err
	}

	var certPool *x509.CertPool
	if cfg.Job.Preheat.TLS != nil {
		certPool, err = newCertPool(cfg.Job.Preheat.TLS.CACert)
		if err != nil {
			return nil, err
		}
	}

	rdb, err := pkgredis.NewRedis(context.Background(), &redis.UniversalOptions{
		Addrs:      cfg.Redis.Addrs,
		MasterName: cfg.Redis.MasterName,
		Username:   cfg.Redis.Username,
		Password:   cfg.Redis.Password,
		DB:         cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	return &Job{
		Job:        j,
		Dispatcher: newPreheatDispatcher(j, rdb, queues, newRegistry(cfg.Job.Preheat.RegistryTimeout, certPool), cfg.Job.Preheat.ReservationTTL),
		rdb:        rdb,
	}, nil
}

// Stop closes the reservation client.
func (j *Job) Stop() error {
	return j.rdb.Close()
}

// getSchedulerQueues gets scheduler queues, schedulers consume the shared
// queue when none is configured.
func getSchedulerQueues(schedulers []config.SchedulerConfig) ([]internaljob.Queue, error) {
	if len(schedulers) == 0 {
		return []internaljob.Queue{internaljob.SchedulersQueue}, nil
	}

	var queues []internaljob.Queue
	for _, scheduler := range schedulers {
		queue, err := internaljob.GetSchedulerQueue(scheduler.ClusterID, scheduler.Hostname)
		if err != nil {
			return nil, err
		}

		queues = append(queues, queue)
	}

	return queues, nil
}

// newCertPool creates the cert pool of the CA certificate.
func newCertPool(caCert types.PEMContent) (*x509.CertPool, error) {
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM([]byte(caCert)) {
		return nil, errors.New("invalid CA Cert")
	}

	return certPool, nil
}
