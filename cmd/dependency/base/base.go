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

package base

// Options are the options shared by every command.
type Options struct {
	// Console prints logs to the console instead of files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Telemetry configuration.
	Telemetry TelemetryOption `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryOption is the option for telemetry.
type TelemetryOption struct {
	// Jaeger is the collector endpoint of jaeger, tracing is disabled when it is empty.
	Jaeger string `yaml:"jaeger" mapstructure:"jaeger"`

	// ServiceName is the name of the traced service.
	ServiceName string `yaml:"serviceName" mapstructure:"serviceName"`
}
