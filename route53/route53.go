// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package route53 exposes chaos actions and probes for Route 53 hosted
// zones and health checks.
package route53

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	r53v2 "github.com/aws/aws-sdk-go-v2/service/route53"
)

// API lists the Route 53 operations this package invokes.
type API interface {
	AssociateVPCWithHostedZone(ctx context.Context, params *r53v2.AssociateVPCWithHostedZoneInput,
		optFns ...func(*r53v2.Options)) (*r53v2.AssociateVPCWithHostedZoneOutput, error)
	DisassociateVPCFromHostedZone(ctx context.Context, params *r53v2.DisassociateVPCFromHostedZoneInput,
		optFns ...func(*r53v2.Options)) (*r53v2.DisassociateVPCFromHostedZoneOutput, error)
	GetHostedZone(ctx context.Context, params *r53v2.GetHostedZoneInput,
		optFns ...func(*r53v2.Options)) (*r53v2.GetHostedZoneOutput, error)
	GetHealthCheckStatus(ctx context.Context, params *r53v2.GetHealthCheckStatusInput,
		optFns ...func(*r53v2.Options)) (*r53v2.GetHealthCheckStatusOutput, error)
	TestDNSAnswer(ctx context.Context, params *r53v2.TestDNSAnswerInput,
		optFns ...func(*r53v2.Options)) (*r53v2.TestDNSAnswerOutput, error)
}

// New constructs a Route 53 client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*r53v2.Options)) *r53v2.Client {
	return r53v2.NewFromConfig(cfg, optFns...)
}
