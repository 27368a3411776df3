// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package iam exposes chaos actions and probes for IAM policies and
// role attachments.
package iam

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
)

// API lists the IAM operations this package invokes.
type API interface {
	CreatePolicy(ctx context.Context, params *iamv2.CreatePolicyInput,
		optFns ...func(*iamv2.Options)) (*iamv2.CreatePolicyOutput, error)
	AttachRolePolicy(ctx context.Context, params *iamv2.AttachRolePolicyInput,
		optFns ...func(*iamv2.Options)) (*iamv2.AttachRolePolicyOutput, error)
	DetachRolePolicy(ctx context.Context, params *iamv2.DetachRolePolicyInput,
		optFns ...func(*iamv2.Options)) (*iamv2.DetachRolePolicyOutput, error)
	GetPolicy(ctx context.Context, params *iamv2.GetPolicyInput,
		optFns ...func(*iamv2.Options)) (*iamv2.GetPolicyOutput, error)
}

// New constructs an IAM client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*iamv2.Options)) *iamv2.Client {
	return iamv2.NewFromConfig(cfg, optFns...)
}
