// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"

	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// DescribeInstances describes the instances matching the given filters.
// All pages are merged into a single response.
func DescribeInstances(ctx context.Context, api API,
	filters []types.Filter) (*ec2v2.DescribeInstancesOutput, error) {
	input := &ec2v2.DescribeInstancesInput{}
	if len(filters) > 0 {
		input.Filters = filters
	}

	merged := &ec2v2.DescribeInstancesOutput{}
	paginator := ec2v2.NewDescribeInstancesPaginator(api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		merged.Reservations = append(merged.Reservations, page.Reservations...)
	}
	return merged, nil
}

// CountInstances returns the number of instances matching the given
// filters.
func CountInstances(ctx context.Context, api API, filters []types.Filter) (int, error) {
	ids, err := listInstanceIDs(ctx, api, filters)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
