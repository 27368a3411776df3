// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package elasticache

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecachev2 "github.com/aws/aws-sdk-go-v2/service/elasticache"
	"github.com/aws/aws-sdk-go-v2/service/elasticache/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// RebootCacheClusters reboots nodes in one or more cache clusters. With
// no node ids every node in each cluster is rebooted.
func RebootCacheClusters(ctx context.Context, api API, clusterIDs,
	nodeIDs []string) ([]types.CacheCluster, error) {
	clusters, err := describeCacheClusters(ctx, api, clusterIDs)
	if err != nil {
		return nil, err
	}

	var results []types.CacheCluster
	for _, c := range clusters {
		ids, err := validateClusterNodes(c, nodeIDs)
		if err != nil {
			return nil, err
		}
		out, err := api.RebootCacheCluster(ctx, &ecachev2.RebootCacheClusterInput{
			CacheClusterId:       c.CacheClusterId,
			CacheNodeIdsToReboot: ids,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, *out.CacheCluster)
	}
	return results, nil
}

// DeleteCacheClusters deletes one or more cache clusters, optionally
// writing a final snapshot first.
func DeleteCacheClusters(ctx context.Context, api API, clusterIDs []string,
	finalSnapshotID string) ([]types.CacheCluster, error) {
	clusters, err := describeCacheClusters(ctx, api, clusterIDs)
	if err != nil {
		return nil, err
	}

	var results []types.CacheCluster
	for _, c := range clusters {
		log.Debugf("deleting cache cluster %s", awsv2.ToString(c.CacheClusterId))
		in := &ecachev2.DeleteCacheClusterInput{CacheClusterId: c.CacheClusterId}
		if finalSnapshotID != "" {
			in.FinalSnapshotIdentifier = awsv2.String(finalSnapshotID)
		}
		out, err := api.DeleteCacheCluster(ctx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *out.CacheCluster)
	}
	return results, nil
}

// DeleteReplicationGroups deletes one or more replication groups,
// optionally writing a final snapshot first. With retainPrimaryCluster
// only the read replicas are removed.
func DeleteReplicationGroups(ctx context.Context, api API, groupIDs []string,
	finalSnapshotID string, retainPrimaryCluster bool) ([]types.ReplicationGroup, error) {
	groups, err := describeReplicationGroups(ctx, api, groupIDs)
	if err != nil {
		return nil, err
	}

	var results []types.ReplicationGroup
	for _, g := range groups {
		log.Debugf("deleting replication group %s", awsv2.ToString(g.ReplicationGroupId))
		in := &ecachev2.DeleteReplicationGroupInput{
			ReplicationGroupId:   g.ReplicationGroupId,
			RetainPrimaryCluster: awsv2.Bool(retainPrimaryCluster),
		}
		if finalSnapshotID != "" {
			in.FinalSnapshotIdentifier = awsv2.String(finalSnapshotID)
		}
		out, err := api.DeleteReplicationGroup(ctx, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *out.ReplicationGroup)
	}
	return results, nil
}
