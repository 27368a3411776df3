// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecachev2 "github.com/aws/aws-sdk-go-v2/service/elasticache"
)

// DescribeCacheCluster returns the cache cluster data for the given
// cluster, optionally with per-node details.
func DescribeCacheCluster(ctx context.Context, api API, clusterID string,
	showNodeInfo bool) (*ecachev2.DescribeCacheClustersOutput, error) {
	out, err := api.DescribeCacheClusters(ctx, &ecachev2.DescribeCacheClustersInput{
		CacheClusterId:    awsv2.String(clusterID),
		ShowCacheNodeInfo: awsv2.Bool(showNodeInfo),
	})
	if err != nil {
		return nil, fmt.Errorf("describe cache cluster failed: %w", err)
	}
	if len(out.CacheClusters) == 0 {
		return nil, fmt.Errorf("unable to find cache cluster with id: %s", clusterID)
	}
	return out, nil
}

// GetCacheNodeCount returns the number of cache nodes in the cluster.
func GetCacheNodeCount(ctx context.Context, api API, clusterID string) (int32, error) {
	out, err := DescribeCacheCluster(ctx, api, clusterID, false)
	if err != nil {
		return 0, err
	}
	return awsv2.ToInt32(out.CacheClusters[0].NumCacheNodes), nil
}

// GetCacheNodeStatus returns the status of the given cache cluster.
func GetCacheNodeStatus(ctx context.Context, api API, clusterID string) (string, error) {
	out, err := DescribeCacheCluster(ctx, api, clusterID, false)
	if err != nil {
		return "", err
	}
	return awsv2.ToString(out.CacheClusters[0].CacheClusterStatus), nil
}
