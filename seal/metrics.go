// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package seal

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/AleutianSeal/model"
)

// Package-level tracer and meter for harden operations.
var (
	tracer = otel.Tracer("aleutian.seal")
	meter  = otel.Meter("aleutian.seal")
)

// Metrics for harden operations.
var (
	hardenLatency metric.Float64Histogram
	hardenTotal   metric.Int64Counter
	nodesHardened metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		hardenLatency, err = meter.Float64Histogram(
			"seal_harden_duration_seconds",
			metric.WithDescription("Duration of harden passes"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		hardenTotal, err = meter.Int64Counter(
			"seal_harden_total",
			metric.WithDescription("Total number of harden passes"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesHardened, err = meter.Int64Histogram(
			"seal_nodes_hardened",
			metric.WithDescription("Number of nodes hardened per pass"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordHardenMetrics records metrics for one harden pass.
func recordHardenMetrics(ctx context.Context, duration time.Duration, nodeCount int, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.Bool("success", success))

	hardenLatency.Record(ctx, duration.Seconds(), attrs)
	hardenTotal.Add(ctx, 1, attrs)

	if success {
		nodesHardened.Record(ctx, int64(nodeCount))
	}
}

// startHardenSpan creates a span for a harden pass.
func startHardenSpan(ctx context.Context, invocationID string, root model.Value) (context.Context, trace.Span) {
	rootKind := "nil"
	if root != nil {
		rootKind = root.Kind().String()
	}
	return tracer.Start(ctx, "Hardener.Harden",
		trace.WithAttributes(
			attribute.String("seal.invocation_id", invocationID),
			attribute.String("seal.root_kind", rootKind),
		),
	)
}

// setHardenSpanResult sets the result attributes on a harden span.
func setHardenSpanResult(span trace.Span, nodeCount int) {
	span.SetAttributes(
		attribute.Int("seal.nodes_hardened", nodeCount),
	)
}
