// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package msk exposes chaos actions and probes for Amazon MSK clusters.
package msk

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	kafkav2 "github.com/aws/aws-sdk-go-v2/service/kafka"
	"github.com/aws/aws-sdk-go-v2/service/kafka/types"
)

// API lists the MSK operations this package invokes.
type API interface {
	RebootBroker(ctx context.Context, params *kafkav2.RebootBrokerInput,
		optFns ...func(*kafkav2.Options)) (*kafkav2.RebootBrokerOutput, error)
	DeleteCluster(ctx context.Context, params *kafkav2.DeleteClusterInput,
		optFns ...func(*kafkav2.Options)) (*kafkav2.DeleteClusterOutput, error)
	DescribeCluster(ctx context.Context, params *kafkav2.DescribeClusterInput,
		optFns ...func(*kafkav2.Options)) (*kafkav2.DescribeClusterOutput, error)
	GetBootstrapBrokers(ctx context.Context, params *kafkav2.GetBootstrapBrokersInput,
		optFns ...func(*kafkav2.Options)) (*kafkav2.GetBootstrapBrokersOutput, error)
}

// New constructs an MSK client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*kafkav2.Options)) *kafkav2.Client {
	return kafkav2.NewFromConfig(cfg, optFns...)
}

// clusterNotFound rewrites the service NotFound error into a stable
// message shared by every activity in this package.
func clusterNotFound(err error) error {
	var nfe *types.NotFoundException
	if errors.As(err, &nfe) {
		return fmt.Errorf("the specified cluster was not found")
	}
	return err
}
