// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package emr

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	emrv2 "github.com/aws/aws-sdk-go-v2/service/emr"
	"github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// DescribeCluster describes a single EMR cluster.
func DescribeCluster(ctx context.Context, api API, clusterID string) (*emrv2.DescribeClusterOutput, error) {
	return api.DescribeCluster(ctx, &emrv2.DescribeClusterInput{
		ClusterId: awsv2.String(clusterID),
	})
}

// DescribeInstanceFleet describes a single EMR instance fleet.
func DescribeInstanceFleet(ctx context.Context, api API, clusterID,
	fleetID string) (*types.InstanceFleet, error) {
	return instanceFleet(ctx, api, clusterID, fleetID)
}

// DescribeInstanceGroup describes a single EMR instance group.
func DescribeInstanceGroup(ctx context.Context, api API, clusterID,
	groupID string) (*types.InstanceGroup, error) {
	return instanceGroup(ctx, api, clusterID, groupID)
}

// ListClusters lists the clusters visible to the caller, optionally
// narrowed by cluster states.
func ListClusters(ctx context.Context, api API, states []types.ClusterState) ([]types.ClusterSummary, error) {
	in := &emrv2.ListClustersInput{ClusterStates: states}

	var clusters []types.ClusterSummary
	paginator := emrv2.NewListClustersPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, page.Clusters...)
	}
	return clusters, nil
}

// ListClusterFleetInstances lists the instances of an instance fleet,
// optionally narrowed by fleet type and instance states.
func ListClusterFleetInstances(ctx context.Context, api API, clusterID, fleetID string,
	fleetType types.InstanceFleetType, states []types.InstanceState) ([]types.Instance, error) {
	in := &emrv2.ListInstancesInput{
		ClusterId:       awsv2.String(clusterID),
		InstanceStates:  states,
		InstanceFleetId: awsv2.String(fleetID),
	}
	if fleetType != "" {
		in.InstanceFleetType = fleetType
	}
	return listInstances(ctx, api, in)
}

// ListClusterGroupInstances lists the instances of an instance group,
// optionally narrowed by group type and instance states.
func ListClusterGroupInstances(ctx context.Context, api API, clusterID, groupID string,
	groupTypes []types.InstanceGroupType, states []types.InstanceState) ([]types.Instance, error) {
	return listInstances(ctx, api, &emrv2.ListInstancesInput{
		ClusterId:          awsv2.String(clusterID),
		InstanceGroupId:    awsv2.String(groupID),
		InstanceGroupTypes: groupTypes,
		InstanceStates:     states,
	})
}

func listInstances(ctx context.Context, api API, in *emrv2.ListInstancesInput) ([]types.Instance, error) {
	var instances []types.Instance
	paginator := emrv2.NewListInstancesPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		instances = append(instances, page.Instances...)
	}
	return instances, nil
}
