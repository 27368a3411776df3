// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rdsv2 "github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/chaosaws/chaosaws/internal/log"
)

// FailoverDBCluster forces a failover for a DB cluster. The target
// instance identifier may be empty to let RDS pick the replica.
func FailoverDBCluster(ctx context.Context, api API, clusterID,
	targetInstanceID string) (*rdsv2.FailoverDBClusterOutput, error) {
	if clusterID == "" {
		return nil, errors.New("you must specify the db cluster identifier")
	}
	log.Debugf("failing over DB cluster %s", clusterID)
	in := &rdsv2.FailoverDBClusterInput{
		DBClusterIdentifier: awsv2.String(clusterID),
	}
	if targetInstanceID != "" {
		in.TargetDBInstanceIdentifier = awsv2.String(targetInstanceID)
	}
	out, err := api.FailoverDBCluster(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed issuing a failover for DB cluster %q: %w", clusterID, err)
	}
	return out, nil
}

// RebootDBInstance forces a reboot of a DB instance, optionally through
// a multi-AZ failover.
func RebootDBInstance(ctx context.Context, api API, instanceID string,
	forceFailover bool) (*rdsv2.RebootDBInstanceOutput, error) {
	if instanceID == "" {
		return nil, errors.New("you must specify the db instance identifier")
	}
	log.Debugf("rebooting DB instance %s", instanceID)
	out, err := api.RebootDBInstance(ctx, &rdsv2.RebootDBInstanceInput{
		DBInstanceIdentifier: awsv2.String(instanceID),
		ForceFailover:        awsv2.Bool(forceFailover),
	})
	if err != nil {
		return nil, fmt.Errorf("failed issuing a reboot of db instance %q: %w", instanceID, err)
	}
	return out, nil
}
