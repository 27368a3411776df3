// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package rds exposes chaos actions and probes for Amazon RDS instances
// and clusters.
package rds

import (
	"context"
	"errors"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rdsv2 "github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// API lists the RDS operations this package invokes.
type API interface {
	FailoverDBCluster(ctx context.Context, params *rdsv2.FailoverDBClusterInput,
		optFns ...func(*rdsv2.Options)) (*rdsv2.FailoverDBClusterOutput, error)
	RebootDBInstance(ctx context.Context, params *rdsv2.RebootDBInstanceInput,
		optFns ...func(*rdsv2.Options)) (*rdsv2.RebootDBInstanceOutput, error)
	DescribeDBInstances(ctx context.Context, params *rdsv2.DescribeDBInstancesInput,
		optFns ...func(*rdsv2.Options)) (*rdsv2.DescribeDBInstancesOutput, error)
	DescribeDBClusters(ctx context.Context, params *rdsv2.DescribeDBClustersInput,
		optFns ...func(*rdsv2.Options)) (*rdsv2.DescribeDBClustersOutput, error)
}

// New constructs an RDS client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*rdsv2.Options)) *rdsv2.Client {
	return rdsv2.NewFromConfig(cfg, optFns...)
}

// Filter mirrors the RDS describe filters without exposing SDK types to
// callers.
type Filter struct {
	Name   string
	Values []string
}

func toFilters(filters []Filter) []types.Filter {
	if len(filters) == 0 {
		return nil
	}
	out := make([]types.Filter, 0, len(filters))
	for _, f := range filters {
		out = append(out, types.Filter{
			Name:   awsv2.String(f.Name),
			Values: f.Values,
		})
	}
	return out
}

var errSelectorRequired = errors.New("an identifier or filters are required, but not both")

func describeInstances(ctx context.Context, api API, instanceID string,
	filters []Filter) ([]types.DBInstance, error) {
	in := &rdsv2.DescribeDBInstancesInput{Filters: toFilters(filters)}
	if instanceID != "" {
		in.DBInstanceIdentifier = awsv2.String(instanceID)
	}
	var instances []types.DBInstance
	paginator := rdsv2.NewDescribeDBInstancesPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		instances = append(instances, page.DBInstances...)
	}
	return instances, nil
}

func describeClusters(ctx context.Context, api API, clusterID string,
	filters []Filter) ([]types.DBCluster, error) {
	in := &rdsv2.DescribeDBClustersInput{Filters: toFilters(filters)}
	if clusterID != "" {
		in.DBClusterIdentifier = awsv2.String(clusterID)
	}
	var clusters []types.DBCluster
	paginator := rdsv2.NewDescribeDBClustersPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, page.DBClusters...)
	}
	return clusters, nil
}

// uniqueStatuses collapses the statuses into a single value when they
// all agree, otherwise the distinct set.
func uniqueStatuses(statuses []string) []string {
	seen := map[string]bool{}
	var unique []string
	for _, s := range statuses {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	return unique
}
