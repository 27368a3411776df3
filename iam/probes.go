// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
)

// GetPolicy returns a policy by its ARN.
func GetPolicy(ctx context.Context, api API, policyARN string) (*iamv2.GetPolicyOutput, error) {
	return api.GetPolicy(ctx, &iamv2.GetPolicyInput{
		PolicyArn: awsv2.String(policyARN),
	})
}
