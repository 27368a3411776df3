// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package fis exposes chaos actions and probes for the AWS Fault
// Injection Simulator service.
package fis

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	fisv2 "github.com/aws/aws-sdk-go-v2/service/fis"
)

// API lists the FIS operations this package invokes.
type API interface {
	StartExperiment(ctx context.Context, params *fisv2.StartExperimentInput,
		optFns ...func(*fisv2.Options)) (*fisv2.StartExperimentOutput, error)
	GetExperiment(ctx context.Context, params *fisv2.GetExperimentInput,
		optFns ...func(*fisv2.Options)) (*fisv2.GetExperimentOutput, error)
}

// New constructs a FIS client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*fisv2.Options)) *fisv2.Client {
	return fisv2.NewFromConfig(cfg, optFns...)
}
