// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package emr

import (
	"context"
	"errors"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	emrv2 "github.com/aws/aws-sdk-go-v2/service/emr"
	"github.com/aws/aws-sdk-go-v2/service/emr/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// ModifyCluster sets the step concurrency level on the given cluster.
// Valid levels run from 1 to 256.
func ModifyCluster(ctx context.Context, api API, clusterID string,
	concurrency int32) (*emrv2.ModifyClusterOutput, error) {
	log.Debugf("setting step concurrency of cluster %s to %d", clusterID, concurrency)
	return api.ModifyCluster(ctx, &emrv2.ModifyClusterInput{
		ClusterId:            awsv2.String(clusterID),
		StepConcurrencyLevel: awsv2.Int32(concurrency),
	})
}

// ModifyInstanceFleet retargets the on-demand and spot capacities of an
// instance fleet and returns the fleet as EMR now sees it. At least one
// capacity must be given; zero means leave unchanged.
func ModifyInstanceFleet(ctx context.Context, api API, clusterID, fleetID string,
	onDemandCapacity, spotCapacity int32) (*types.InstanceFleet, error) {
	if onDemandCapacity == 0 && spotCapacity == 0 {
		return nil, errors.New("must provide at least one of on-demand or spot capacity")
	}

	fleet := &types.InstanceFleetModifyConfig{InstanceFleetId: awsv2.String(fleetID)}
	if onDemandCapacity > 0 {
		fleet.TargetOnDemandCapacity = awsv2.Int32(onDemandCapacity)
	}
	if spotCapacity > 0 {
		fleet.TargetSpotCapacity = awsv2.Int32(spotCapacity)
	}

	if _, err := api.ModifyInstanceFleet(ctx, &emrv2.ModifyInstanceFleetInput{
		ClusterId:     awsv2.String(clusterID),
		InstanceFleet: fleet,
	}); err != nil {
		return nil, err
	}
	return instanceFleet(ctx, api, clusterID, fleetID)
}

// ModifyInstanceGroupsInstanceCount resizes an instance group and
// returns the group as EMR now sees it.
func ModifyInstanceGroupsInstanceCount(ctx context.Context, api API, clusterID,
	groupID string, instanceCount int32) (*types.InstanceGroup, error) {
	if _, err := api.ModifyInstanceGroups(ctx, &emrv2.ModifyInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
		InstanceGroups: []types.InstanceGroupModifyConfig{{
			InstanceGroupId: awsv2.String(groupID),
			InstanceCount:   awsv2.Int32(instanceCount),
		}},
	}); err != nil {
		return nil, err
	}
	return instanceGroup(ctx, api, clusterID, groupID)
}

// ShrinkPolicy carries the optional shrink settings for
// ModifyInstanceGroupsShrinkPolicy. Zero values are omitted from the
// request.
type ShrinkPolicy struct {
	DecommissionTimeout time.Duration
	TerminateInstances  []string
	ProtectInstances    []string
	TerminationTimeout  time.Duration
}

// ModifyInstanceGroupsShrinkPolicy reconfigures how an instance group
// shrinks and returns the group as EMR now sees it. At least one of the
// policy fields must be set, and a termination timeout requires
// instances to terminate.
func ModifyInstanceGroupsShrinkPolicy(ctx context.Context, api API, clusterID,
	groupID string, policy ShrinkPolicy) (*types.InstanceGroup, error) {
	if policy.DecommissionTimeout == 0 && len(policy.TerminateInstances) == 0 &&
		len(policy.ProtectInstances) == 0 {
		return nil, errors.New(
			"must provide at least one of a decommission timeout, instances to terminate or instances to protect")
	}
	if policy.TerminationTimeout != 0 && len(policy.TerminateInstances) == 0 {
		return nil, errors.New(
			"must provide instances to terminate when specifying a termination timeout")
	}

	shrink := &types.ShrinkPolicy{}
	if policy.DecommissionTimeout != 0 {
		shrink.DecommissionTimeout = awsv2.Int32(int32(policy.DecommissionTimeout / time.Second))
	}
	resize := &types.InstanceResizePolicy{}
	populated := false
	if len(policy.TerminateInstances) > 0 {
		resize.InstancesToTerminate = policy.TerminateInstances
		populated = true
	}
	if len(policy.ProtectInstances) > 0 {
		resize.InstancesToProtect = policy.ProtectInstances
		populated = true
	}
	if policy.TerminationTimeout != 0 {
		resize.InstanceTerminationTimeout = awsv2.Int32(int32(policy.TerminationTimeout / time.Second))
		populated = true
	}
	if populated {
		shrink.InstanceResizePolicy = resize
	}

	if _, err := api.ModifyInstanceGroups(ctx, &emrv2.ModifyInstanceGroupsInput{
		ClusterId: awsv2.String(clusterID),
		InstanceGroups: []types.InstanceGroupModifyConfig{{
			InstanceGroupId: awsv2.String(groupID),
			ShrinkPolicy:    shrink,
		}},
	}); err != nil {
		return nil, err
	}
	return instanceGroup(ctx, api, clusterID, groupID)
}
