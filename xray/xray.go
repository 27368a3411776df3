// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package xray exposes probes over AWS X-Ray traces and service graphs.
package xray

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	xrayv2 "github.com/aws/aws-sdk-go-v2/service/xray"
)

// API lists the X-Ray operations this package invokes.
type API interface {
	GetTraceSummaries(ctx context.Context, params *xrayv2.GetTraceSummariesInput,
		optFns ...func(*xrayv2.Options)) (*xrayv2.GetTraceSummariesOutput, error)
	BatchGetTraces(ctx context.Context, params *xrayv2.BatchGetTracesInput,
		optFns ...func(*xrayv2.Options)) (*xrayv2.BatchGetTracesOutput, error)
	GetServiceGraph(ctx context.Context, params *xrayv2.GetServiceGraphInput,
		optFns ...func(*xrayv2.Options)) (*xrayv2.GetServiceGraphOutput, error)
}

// New constructs an X-Ray client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*xrayv2.Options)) *xrayv2.Client {
	return xrayv2.NewFromConfig(cfg, optFns...)
}

// timeNow is replaced by tests to pin time windows.
var timeNow = time.Now

// parseTime turns a moment expression into an absolute time. Accepted
// forms are "now", a Unix timestamp, and a relative period such as
// "3 minutes" counted back from the offset.
func parseTime(expr string, offset time.Time) (time.Time, error) {
	if expr == "" || expr == "now" {
		return timeNow().UTC(), nil
	}
	if ts, err := strconv.ParseFloat(expr, 64); err == nil {
		sec := int64(ts)
		nsec := int64((ts - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), nil
	}

	quantity, unit, found := strings.Cut(expr, " ")
	if !found {
		return time.Time{}, fmt.Errorf("invalid moment %q", expr)
	}
	n, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid moment %q", expr)
	}

	var scale time.Duration
	switch unit {
	case "second", "seconds":
		scale = time.Second
	case "minute", "minutes":
		scale = time.Minute
	case "hour", "hours":
		scale = time.Hour
	case "day", "days":
		scale = 24 * time.Hour
	default:
		return time.Time{}, fmt.Errorf("invalid moment unit %q", unit)
	}

	if offset.IsZero() {
		offset = timeNow().UTC()
	}
	return offset.Add(-time.Duration(n * float64(scale))), nil
}
