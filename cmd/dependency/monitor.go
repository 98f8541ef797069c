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

package dependency

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"d7y.io/preheat/cmd/dependency/base"
	logger "d7y.io/preheat/internal/dflog"
)

// tracerShutdownTimeout bounds the flush of spans on exit.
const tracerShutdownTimeout = 5 * time.Second

// InitMonitor initializes tracing and returns the function releasing it.
func InitMonitor(telemetry base.TelemetryOption) func() {
	if telemetry.Jaeger == "" {
		return func() {}
	}

	tp, err := initJaegerTracer(telemetry.Jaeger, telemetry.ServiceName)
	if err != nil {
		logger.Warnf("init jaeger tracer error: %v", err)
		return func() {}
	}

	logger.Infof("started jaeger tracer at %s", telemetry.Jaeger)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()

		if err := tp.Shutdown(ctx); err != nil {
			logger.Errorf("jaeger tracer failed to stop: %v", err)
		}
	}
}

// initJaegerTracer creates a new trace provider instance and registers it as global trace provider.
func initJaegerTracer(addr, serviceName string) (*sdktrace.TracerProvider, error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(addr)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp, nil
}
