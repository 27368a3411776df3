// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package eks exposes chaos actions and probes for Amazon EKS clusters
// and their worker nodes.
package eks

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	eksv2 "github.com/aws/aws-sdk-go-v2/service/eks"
)

// API lists the EKS operations this package invokes.
type API interface {
	CreateCluster(ctx context.Context, params *eksv2.CreateClusterInput,
		optFns ...func(*eksv2.Options)) (*eksv2.CreateClusterOutput, error)
	DeleteCluster(ctx context.Context, params *eksv2.DeleteClusterInput,
		optFns ...func(*eksv2.Options)) (*eksv2.DeleteClusterOutput, error)
	DescribeCluster(ctx context.Context, params *eksv2.DescribeClusterInput,
		optFns ...func(*eksv2.Options)) (*eksv2.DescribeClusterOutput, error)
	ListClusters(ctx context.Context, params *eksv2.ListClustersInput,
		optFns ...func(*eksv2.Options)) (*eksv2.ListClustersOutput, error)
}

// New constructs an EKS client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*eksv2.Options)) *eksv2.Client {
	return eksv2.NewFromConfig(cfg, optFns...)
}
