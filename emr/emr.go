// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package emr exposes chaos actions and probes for Amazon EMR clusters,
// instance fleets and instance groups.
package emr

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	emrv2 "github.com/aws/aws-sdk-go-v2/service/emr"
	"github.com/aws/aws-sdk-go-v2/service/emr/types"
)

// API lists the EMR operations this package invokes.
type API interface {
	ModifyCluster(ctx context.Context, params *emrv2.ModifyClusterInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ModifyClusterOutput, error)
	ModifyInstanceFleet(ctx context.Context, params *emrv2.ModifyInstanceFleetInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ModifyInstanceFleetOutput, error)
	ModifyInstanceGroups(ctx context.Context, params *emrv2.ModifyInstanceGroupsInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ModifyInstanceGroupsOutput, error)
	DescribeCluster(ctx context.Context, params *emrv2.DescribeClusterInput,
		optFns ...func(*emrv2.Options)) (*emrv2.DescribeClusterOutput, error)
	ListInstances(ctx context.Context, params *emrv2.ListInstancesInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ListInstancesOutput, error)
	ListInstanceFleets(ctx context.Context, params *emrv2.ListInstanceFleetsInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ListInstanceFleetsOutput, error)
	ListInstanceGroups(ctx context.Context, params *emrv2.ListInstanceGroupsInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ListInstanceGroupsOutput, error)
	ListClusters(ctx context.Context, params *emrv2.ListClustersInput,
		optFns ...func(*emrv2.Options)) (*emrv2.ListClustersOutput, error)
}

// New constructs an EMR client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*emrv2.Options)) *emrv2.Client {
	return emrv2.NewFromConfig(cfg, optFns...)
}

// instanceFleet walks the fleet listing until the requested id shows up.
func instanceFleet(ctx context.Context, api API, clusterID, fleetID string) (*types.InstanceFleet, error) {
	paginator := emrv2.NewListInstanceFleetsPaginator(api, &emrv2.ListInstanceFleetsInput{
		ClusterId: awsv2.String(clusterID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range page.InstanceFleets {
			if awsv2.ToString(f.Id) == fleetID {
				return &f, nil
			}
		}
	}
	return nil, fmt.Errorf("no instance fleet %s found in cluster %s", fleetID, clusterID)
}

// instanceGroup walks the group listing until the requested id shows up.
func instanceGroup(ctx context.Context, api API, clusterID, groupID string) (*types.InstanceGroup, error) {
	paginator := emrv2.NewListInstanceGroupsPaginator(api, &emrv2.ListInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, g := range page.InstanceGroups {
			if awsv2.ToString(g.Id) == groupID {
				return &g, nil
			}
		}
	}
	return nil, fmt.Errorf("no instance group %s found in cluster %s", groupID, clusterID)
}
