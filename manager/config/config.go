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

package config

import (
	"errors"
	"time"

	"d7y.io/preheat/cmd/dependency/base"
	"d7y.io/preheat/pkg/types"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Redis configuration.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`

	// Job configuration.
	Job JobConfig `yaml:"job" mapstructure:"job"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Server listen address, like: :8080, 127.0.0.1:8080.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// ShutdownTimeout is the timeout of graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

type RedisConfig struct {
	// Redis addresses.
	Addrs []string `yaml:"addrs" mapstructure:"addrs"`

	// Redis sentinel master name.
	MasterName string `yaml:"masterName" mapstructure:"masterName"`

	// Redis username.
	Username string `yaml:"username" mapstructure:"username"`

	// Redis password.
	Password string `yaml:"password" mapstructure:"password"`

	// Redis DB of preheat reservations.
	DB int `yaml:"db" mapstructure:"db"`

	// Redis DB of job broker.
	BrokerDB int `yaml:"brokerDB" mapstructure:"brokerDB"`

	// Redis DB of job backend.
	BackendDB int `yaml:"backendDB" mapstructure:"backendDB"`
}

type JobConfig struct {
	// Preheat configuration.
	Preheat PreheatConfig `yaml:"preheat" mapstructure:"preheat"`
}

type PreheatConfig struct {
	// RegistryTimeout is the timeout for requesting registry to get token and manifest.
	RegistryTimeout time.Duration `yaml:"registryTimeout" mapstructure:"registryTimeout"`

	// ReservationTTL is how long an identifier collapses duplicate submissions.
	ReservationTTL time.Duration `yaml:"reservationTTL" mapstructure:"reservationTTL"`

	// CancelTimeout bounds the cancellation issued when a submission is abandoned.
	CancelTimeout time.Duration `yaml:"cancelTimeout" mapstructure:"cancelTimeout"`

	// TLS client configuration for requesting registry.
	TLS *PreheatTLSClientConfig `yaml:"tls" mapstructure:"tls"`

	// Schedulers consuming preheat jobs, the global schedulers queue is used when empty.
	Schedulers []SchedulerConfig `yaml:"schedulers" mapstructure:"schedulers"`
}

type PreheatTLSClientConfig struct {
	// CACert is the CA certificate for preheat tls handshake, it can be path or PEM format string.
	CACert types.PEMContent `yaml:"caCert" mapstructure:"caCert"`
}

type SchedulerConfig struct {
	// ClusterID is the id of scheduler cluster.
	ClusterID uint `yaml:"clusterID" mapstructure:"clusterID"`

	// Hostname is the hostname of scheduler.
	Hostname string `yaml:"hostname" mapstructure:"hostname"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options: base.Options{
			Telemetry: base.TelemetryOption{
				ServiceName: DefaultTelemetryServiceName,
			},
		},
		Server: ServerConfig{
			Addr:            DefaultServerAddr,
			LogMaxSize:      DefaultLogRotateMaxSize,
			LogMaxAge:       DefaultLogRotateMaxAge,
			LogMaxBackups:   DefaultLogRotateMaxBackups,
			ShutdownTimeout: DefaultServerShutdownTimeout,
		},
		Redis: RedisConfig{
			DB:        DefaultRedisDB,
			BrokerDB:  DefaultRedisBrokerDB,
			BackendDB: DefaultRedisBackendDB,
		},
		Job: JobConfig{
			Preheat: PreheatConfig{
				RegistryTimeout: DefaultJobPreheatRegistryTimeout,
				ReservationTTL:  DefaultJobPreheatReservationTTL,
				CancelTimeout:   DefaultJobPreheatCancelTimeout,
			},
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Telemetry.Jaeger != "" && cfg.Telemetry.ServiceName == "" {
		return errors.New("telemetry requires parameter serviceName")
	}

	if cfg.Server.Addr == "" {
		return errors.New("server requires parameter addr")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server requires parameter shutdownTimeout")
	}

	if len(cfg.Redis.Addrs) == 0 {
		return errors.New("redis requires parameter addrs")
	}

	if cfg.Redis.DB < 0 {
		return errors.New("redis requires parameter db")
	}

	if cfg.Redis.BrokerDB < 0 {
		return errors.New("redis requires parameter brokerDB")
	}

	if cfg.Redis.BackendDB < 0 {
		return errors.New("redis requires parameter backendDB")
	}

	if cfg.Job.Preheat.RegistryTimeout <= 0 {
		return errors.New("preheat requires parameter registryTimeout")
	}

	if cfg.Job.Preheat.ReservationTTL <= 0 {
		return errors.New("preheat requires parameter reservationTTL")
	}

	if cfg.Job.Preheat.CancelTimeout <= 0 {
		return errors.New("preheat requires parameter cancelTimeout")
	}

	if cfg.Job.Preheat.TLS != nil {
		if cfg.Job.Preheat.TLS.CACert == "" {
			return errors.New("preheat requires parameter caCert")
		}
	}

	for _, scheduler := range cfg.Job.Preheat.Schedulers {
		if scheduler.ClusterID == 0 {
			return errors.New("scheduler requires parameter clusterID")
		}

		if scheduler.Hostname == "" {
			return errors.New("scheduler requires parameter hostname")
		}
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}
