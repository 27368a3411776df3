// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package ec2 exposes chaos actions and probes for Amazon EC2 instances.
package ec2

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// API lists the EC2 operations this package invokes.
type API interface {
	DescribeInstances(ctx context.Context, params *ec2v2.DescribeInstancesInput,
		optFns ...func(*ec2v2.Options)) (*ec2v2.DescribeInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2v2.StopInstancesInput,
		optFns ...func(*ec2v2.Options)) (*ec2v2.StopInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2v2.TerminateInstancesInput,
		optFns ...func(*ec2v2.Options)) (*ec2v2.TerminateInstancesOutput, error)
}

// New constructs an EC2 client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*ec2v2.Options)) *ec2v2.Client {
	return ec2v2.NewFromConfig(cfg, optFns...)
}

// listInstanceIDs returns the ids of all instances matching the filters,
// exhausting every page so callers never select from a partial set.
func listInstanceIDs(ctx context.Context, api API, filters []types.Filter) ([]string, error) {
	input := &ec2v2.DescribeInstancesInput{}
	if len(filters) > 0 {
		input.Filters = filters
	}

	var ids []string
	paginator := ec2v2.NewDescribeInstancesPaginator(api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				ids = append(ids, awsv2.ToString(instance.InstanceId))
			}
		}
	}
	return ids, nil
}

func azFilter(az string) []types.Filter {
	return []types.Filter{{
		Name:   awsv2.String("availability-zone"),
		Values: []string{az},
	}}
}

func errNoInstances(what string) error {
	return fmt.Errorf("no instances found %s", what)
}
