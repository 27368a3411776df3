// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package awslambda exposes chaos actions and probes for AWS Lambda
// function concurrency.
package awslambda

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"
)

// API lists the Lambda operations this package invokes.
type API interface {
	PutFunctionConcurrency(ctx context.Context, params *lambdav2.PutFunctionConcurrencyInput,
		optFns ...func(*lambdav2.Options)) (*lambdav2.PutFunctionConcurrencyOutput, error)
	DeleteFunctionConcurrency(ctx context.Context, params *lambdav2.DeleteFunctionConcurrencyInput,
		optFns ...func(*lambdav2.Options)) (*lambdav2.DeleteFunctionConcurrencyOutput, error)
	GetFunction(ctx context.Context, params *lambdav2.GetFunctionInput,
		optFns ...func(*lambdav2.Options)) (*lambdav2.GetFunctionOutput, error)
}

// New constructs a Lambda client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*lambdav2.Options)) *lambdav2.Client {
	return lambdav2.NewFromConfig(cfg, optFns...)
}
