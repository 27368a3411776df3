// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	kafkav2 "github.com/aws/aws-sdk-go-v2/service/kafka"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DescribeCluster describes the given MSK cluster.
func DescribeCluster(ctx context.Context, api API, clusterARN string) (*kafkav2.DescribeClusterOutput, error) {
	log.Debugf("describing MSK cluster %s", clusterARN)
	out, err := api.DescribeCluster(ctx, &kafkav2.DescribeClusterInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, clusterNotFound(err)
	}
	return out, nil
}

// GetBootstrapServers returns the plaintext bootstrap broker addresses
// of the given MSK cluster.
func GetBootstrapServers(ctx context.Context, api API, clusterARN string) ([]string, error) {
	log.Debugf("getting bootstrap servers for MSK cluster %s", clusterARN)
	out, err := api.GetBootstrapBrokers(ctx, &kafkav2.GetBootstrapBrokersInput{
		ClusterArn: awsv2.String(clusterARN),
	})
	if err != nil {
		return nil, clusterNotFound(err)
	}
	brokers := awsv2.ToString(out.BootstrapBrokerString)
	if brokers == "" {
		return nil, nil
	}
	return strings.Split(brokers, ","), nil
}
