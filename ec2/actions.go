// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ec2

import (
	"context"
	"math/rand/v2"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/chaosaws/chaosaws/internal/log"
)

// StopInstance stops a given EC2 instance.
func StopInstance(ctx context.Context, api API, instanceID string,
	force, dryRun bool) (*ec2v2.StopInstancesOutput, error) {
	return StopInstances(ctx, api, []string{instanceID}, force, dryRun)
}

// StopInstances stops several given EC2 instances.
func StopInstances(ctx context.Context, api API, instanceIDs []string,
	force, dryRun bool) (*ec2v2.StopInstancesOutput, error) {
	log.Debugf("stopping instances %v (force=%t dryrun=%t)", instanceIDs, force, dryRun)
	return api.StopInstances(ctx, &ec2v2.StopInstancesInput{
		InstanceIds: instanceIDs,
		Force:       awsv2.Bool(force),
		DryRun:      awsv2.Bool(dryRun),
	})
}

// StopRandomInstance stops an EC2 instance picked uniformly at random
// across the whole account/region.
func StopRandomInstance(ctx context.Context, api API,
	force, dryRun bool) (*ec2v2.StopInstancesOutput, error) {
	ids, err := listInstanceIDs(ctx, api, nil)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errNoInstances("in this region")
	}
	return StopInstance(ctx, api, ids[rand.IntN(len(ids))], force, dryRun)
}

// StopRandomInstanceAZ stops an EC2 instance picked uniformly at random
// in a given availability zone.
func StopRandomInstanceAZ(ctx context.Context, api API, az string,
	force, dryRun bool) (*ec2v2.StopInstancesOutput, error) {
	ids, err := listInstanceIDs(ctx, api, azFilter(az))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errNoInstances("in availability zone: " + az)
	}
	return StopInstance(ctx, api, ids[rand.IntN(len(ids))], force, dryRun)
}

// StopEntireAZ stops every EC2 instance in a given availability zone.
func StopEntireAZ(ctx context.Context, api API, az string,
	force, dryRun bool) (*ec2v2.StopInstancesOutput, error) {
	ids, err := listInstanceIDs(ctx, api, azFilter(az))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errNoInstances("in availability zone: " + az)
	}
	return StopInstances(ctx, api, ids, force, dryRun)
}

// TerminateInstance terminates a given EC2 instance.
func TerminateInstance(ctx context.Context, api API,
	instanceID string) (*ec2v2.TerminateInstancesOutput, error) {
	log.Debugf("terminating instance %s", instanceID)
	return api.TerminateInstances(ctx, &ec2v2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
}
