// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ec2os

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DescribeInstance returns the full description of a single instance.
func DescribeInstance(ctx context.Context, api InstanceAPI, instanceID string) (*types.Instance, error) {
	return describeInstance(ctx, api, instanceID)
}
