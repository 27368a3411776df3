// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/chaosaws/chaosaws/internal/log"
)

// InstanceStatus returns the status of the DB instances selected by an
// identifier or by filters (exactly one of the two). When every selected
// instance reports the same status it is collapsed to a single value.
func InstanceStatus(ctx context.Context, api API, instanceID string,
	filters []Filter) ([]string, error) {
	if (instanceID == "") == (len(filters) == 0) {
		return nil, errSelectorRequired
	}
	instances, err := describeInstances(ctx, api, instanceID, filters)
	if err != nil {
		return nil, err
	}
	log.Infof("found %d instances", len(instances))
	if len(instances) == 0 {
		if instanceID != "" {
			return nil, fmt.Errorf("no instance found matching %s", instanceID)
		}
		return nil, fmt.Errorf("no instance(s) found matching %v", filters)
	}
	statuses := make([]string, 0, len(instances))
	for _, inst := range instances {
		statuses = append(statuses, awsv2.ToString(inst.DBInstanceStatus))
	}
	return uniqueStatuses(statuses), nil
}

// ClusterStatus returns the status of the DB clusters selected by an
// identifier or by filters (exactly one of the two). When every selected
// cluster reports the same status it is collapsed to a single value.
func ClusterStatus(ctx context.Context, api API, clusterID string,
	filters []Filter) ([]string, error) {
	if (clusterID == "") == (len(filters) == 0) {
		return nil, errSelectorRequired
	}
	clusters, err := describeClusters(ctx, api, clusterID, filters)
	if err != nil {
		return nil, err
	}
	log.Infof("found %d clusters", len(clusters))
	if len(clusters) == 0 {
		if clusterID != "" {
			return nil, fmt.Errorf("no cluster found matching %s", clusterID)
		}
		return nil, fmt.Errorf("no cluster(s) found matching %v", filters)
	}
	statuses := make([]string, 0, len(clusters))
	for _, c := range clusters {
		statuses = append(statuses, awsv2.ToString(c.Status))
	}
	return uniqueStatuses(statuses), nil
}

// ClusterMembershipCount returns the number of members of a DB cluster.
func ClusterMembershipCount(ctx context.Context, api API, clusterID string) (int, error) {
	clusters, err := describeClusters(ctx, api, clusterID, nil)
	if err != nil {
		return 0, err
	}
	if len(clusters) == 0 {
		return 0, fmt.Errorf("no cluster found matching %s", clusterID)
	}
	return len(clusters[0].DBClusterMembers), nil
}
