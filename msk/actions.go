// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	kafkav2 "github.com/aws/aws-sdk-go-v2/service/kafka"

	"github.com/chaosaws/chaosaws/internal/log"
)

// RebootBroker reboots the given brokers in an MSK cluster.
func RebootBroker(ctx context.Context, api API, clusterARN string,
	brokerIDs []string) (*kafkav2.RebootBrokerOutput, error) {
	log.Debugf("rebooting MSK brokers %v in cluster %s", brokerIDs, clusterARN)
	out, err := api.RebootBroker(ctx, &kafkav2.RebootBrokerInput{
		ClusterArn: awsv2.String(clusterARN),
		BrokerIds:  brokerIDs,
	})
	if err != nil {
		return nil, clusterNotFound(err)
	}
	return out, nil
}

// DeleteCluster deletes the given MSK cluster.
func DeleteCluster(ctx context.Context, api API, clusterARN string) (*kafkav2.DeleteClusterOutput, error) {
	log.Debugf("deleting MSK cluster %s", clusterARN)
	out, err := api.DeleteCluster(ctx, &kafkav2.DeleteClusterInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, clusterNotFound(err)
	}
	return out, nil
}
