// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package elasticache exposes chaos actions and probes for Amazon
// ElastiCache clusters and replication groups.
package elasticache

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecachev2 "github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"
)

// API lists the ElastiCache operations this package invokes.
type API interface {
	DescribeCacheClusters(ctx context.Context, params *ecachev2.DescribeCacheClustersInput,
		optFns ...func(*ecachev2.Options)) (*ecachev2.DescribeCacheClustersOutput, error)
	RebootCacheCluster(ctx context.Context, params *ecachev2.RebootCacheClusterInput,
		optFns ...func(*ecachev2.Options)) (*ecachev2.RebootCacheClusterOutput, error)
	DeleteCacheCluster(ctx context.Context, params *ecachev2.DeleteCacheClusterInput,
		optFns ...func(*ecachev2.Options)) (*ecachev2.DeleteCacheClusterOutput, error)
	DescribeReplicationGroups(ctx context.Context, params *ecachev2.DescribeReplicationGroupsInput,
		optFns ...func(*ecachev2.Options)) (*ecachev2.DescribeReplicationGroupsOutput, error)
	DeleteReplicationGroup(ctx context.Context, params *ecachev2.DeleteReplicationGroupInput,
		optFns ...func(*ecachev2.Options)) (*ecachev2.DeleteReplicationGroupOutput, error)
}

// New constructs an ElastiCache client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*ecachev2.Options)) *ecachev2.Client {
	return ecachev2.NewFromConfig(cfg, optFns...)
}

func describeCacheClusters(ctx context.Context, api API,
	clusterIDs []string) ([]types.CacheCluster, error) {
	var clusters []types.CacheCluster
	for _, id := range clusterIDs {
		out, err := api.DescribeCacheClusters(ctx, &ecachev2.DescribeCacheClustersInput{
			CacheClusterId:    awsv2.String(id),
			ShowCacheNodeInfo: awsv2.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		if len(out.CacheClusters) == 0 {
			return nil, fmt.Errorf("cache cluster %s not found", id)
		}
		clusters = append(clusters, out.CacheClusters...)
	}
	return clusters, nil
}

func describeReplicationGroups(ctx context.Context, api API,
	groupIDs []string) ([]types.ReplicationGroup, error) {
	var groups []types.ReplicationGroup
	for _, id := range groupIDs {
		out, err := api.DescribeReplicationGroups(ctx, &ecachev2.DescribeReplicationGroupsInput{
			ReplicationGroupId: awsv2.String(id),
		})
		if err != nil {
			return nil, err
		}
		if len(out.ReplicationGroups) == 0 {
			return nil, fmt.Errorf("replication group %s not found", id)
		}
		groups = append(groups, out.ReplicationGroups...)
	}
	return groups, nil
}

// validateClusterNodes returns the node ids to reboot. Without explicit
// ids every node of the cluster is selected; with explicit ids each one
// must exist in the cluster.
func validateClusterNodes(cluster types.CacheCluster, nodeIDs []string) ([]string, error) {
	actual := make(map[string]bool, len(cluster.CacheNodes))
	var all []string
	for _, n := range cluster.CacheNodes {
		id := awsv2.ToString(n.CacheNodeId)
		actual[id] = true
		all = append(all, id)
	}
	if len(nodeIDs) == 0 {
		return all, nil
	}
	var missing []string
	for _, id := range nodeIDs {
		if !actual[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("cache cluster %s has no node(s) matching: %v",
			awsv2.ToString(cluster.CacheClusterId), missing)
	}
	return nodeIDs, nil
}
